// Copyright 2024 TideSQL, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/expression"
	"github.com/tidesql/tide/sql/types"
)

func TestAllowImplicitJoinCast(t *testing.T) {
	require := require.New(t)

	require.True(allowImplicitJoinCast(sql.TagInt32, sql.TagInt64))
	require.True(allowImplicitJoinCast(sql.TagInt32, sql.TagFloat64))
	require.True(allowImplicitJoinCast(sql.TagDecimal, sql.TagDecimal))
	require.True(allowImplicitJoinCast(sql.TagDate, sql.TagTimestamp))
	require.True(allowImplicitJoinCast(sql.TagVarChar, sql.TagVarBinary))

	// decimal and non-decimal numbers never cross silently
	require.False(allowImplicitJoinCast(sql.TagInt32, sql.TagDecimal))
	require.False(allowImplicitJoinCast(sql.TagDecimal, sql.TagFloat64))

	require.False(allowImplicitJoinCast(sql.TagVarChar, sql.TagInt32))
	require.False(allowImplicitJoinCast(sql.TagDate, sql.TagVarChar))
}

func keySchema(name string, keyType sql.Type) sql.Schema {
	return sql.Schema{{Name: "k", Source: name, Type: keyType}}
}

func keyExpr(keyType sql.Type, table string) sql.Expression {
	return expression.NewGetFieldWithTable(0, keyType, table, "k", false)
}

func TestAddLeastRestrictiveCastsWidensNarrowerSide(t *testing.T) {
	require := require.New(t)

	leftExprs := []sql.Expression{keyExpr(types.Int32, "l")}
	rightExprs := []sql.Expression{keyExpr(types.Int64, "r")}
	right := rightExprs[0]

	err := AddLeastRestrictiveCasts(
		leftExprs, keySchema("l", types.Int32),
		rightExprs, keySchema("r", types.Int64),
		DefaultBinder,
	)
	require.NoError(err)

	// the narrower left side gets the cast, the right side is untouched
	cast, ok := leftExprs[0].(*expression.Convert)
	require.True(ok)
	require.True(cast.Type().Equals(types.Int64))
	require.Equal(right, rightExprs[0])
}

func TestAddLeastRestrictiveCastsEqualTypesUntouched(t *testing.T) {
	require := require.New(t)

	leftExprs := []sql.Expression{keyExpr(types.Int32, "l")}
	rightExprs := []sql.Expression{keyExpr(types.Int32, "r")}
	left, right := leftExprs[0], rightExprs[0]

	err := AddLeastRestrictiveCasts(
		leftExprs, keySchema("l", types.Int32),
		rightExprs, keySchema("r", types.Int32),
		DefaultBinder,
	)
	require.NoError(err)
	require.Equal(left, leftExprs[0])
	require.Equal(right, rightExprs[0])
}

func TestAddLeastRestrictiveCastsDecimalPrecision(t *testing.T) {
	require := require.New(t)

	narrow := types.MustCreateDecimalType(10, 2)
	wide := types.MustCreateDecimalType(12, 4)

	leftExprs := []sql.Expression{keyExpr(narrow, "l")}
	rightExprs := []sql.Expression{keyExpr(wide, "r")}

	err := AddLeastRestrictiveCasts(
		leftExprs, keySchema("l", narrow),
		rightExprs, keySchema("r", wide),
		DefaultBinder,
	)
	require.NoError(err)

	cast, ok := leftExprs[0].(*expression.Convert)
	require.True(ok)
	require.True(cast.Type().Equals(wide))
}

func TestAddLeastRestrictiveCastsIncompatibleTypes(t *testing.T) {
	require := require.New(t)

	leftExprs := []sql.Expression{keyExpr(types.VarChar, "l")}
	rightExprs := []sql.Expression{keyExpr(types.Int32, "r")}

	err := AddLeastRestrictiveCasts(
		leftExprs, keySchema("l", types.VarChar),
		rightExprs, keySchema("r", types.Int32),
		DefaultBinder,
	)
	require.Error(err)
	require.True(sql.ErrIncompatibleJoinTypes.Is(err))
}

func TestAddLeastRestrictiveCastsUnionSkipped(t *testing.T) {
	require := require.New(t)

	leftExprs := []sql.Expression{keyExpr(types.Union, "l")}
	rightExprs := []sql.Expression{keyExpr(types.Int32, "r")}
	left, right := leftExprs[0], rightExprs[0]

	err := AddLeastRestrictiveCasts(
		leftExprs, keySchema("l", types.Union),
		rightExprs, keySchema("r", types.Int32),
		DefaultBinder,
	)
	require.NoError(err)
	require.Equal(left, leftExprs[0])
	require.Equal(right, rightExprs[0])
}

func TestAddLeastRestrictiveCastsMismatchedKeyCount(t *testing.T) {
	require := require.New(t)

	err := AddLeastRestrictiveCasts(
		[]sql.Expression{keyExpr(types.Int32, "l"), keyExpr(types.Int32, "l")}, keySchema("l", types.Int32),
		[]sql.Expression{keyExpr(types.Int32, "r")}, keySchema("r", types.Int32),
		DefaultBinder,
	)
	require.Error(err)
	require.True(ErrMismatchedKeyCount.Is(err))
}

func TestAddLeastRestrictiveCastsBinderError(t *testing.T) {
	require := require.New(t)

	failing := BinderFunc(func(e sql.Expression, schema sql.Schema, collector *sql.ErrorCollector) (sql.Expression, error) {
		return nil, fmt.Errorf("bind failed")
	})

	leftExprs := []sql.Expression{keyExpr(types.Int32, "l")}
	rightExprs := []sql.Expression{keyExpr(types.Int64, "r")}

	err := AddLeastRestrictiveCasts(
		leftExprs, keySchema("l", types.Int32),
		rightExprs, keySchema("r", types.Int64),
		failing,
	)
	require.Error(err)
	require.Contains(err.Error(), "bind failed")
}
