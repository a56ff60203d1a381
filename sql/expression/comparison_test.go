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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/types"
)

func TestEquals(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	eq := NewEquals(
		NewGetField(0, types.Int64, "a", true),
		NewGetField(1, types.Int64, "b", true),
	)

	result, err := eq.Eval(ctx, sql.NewRow(int64(1), int64(1)))
	require.NoError(err)
	require.Equal(true, result)

	result, err = eq.Eval(ctx, sql.NewRow(int64(1), int64(2)))
	require.NoError(err)
	require.Equal(false, result)

	// a NULL on either side yields NULL, not false
	result, err = eq.Eval(ctx, sql.NewRow(nil, int64(2)))
	require.NoError(err)
	require.Nil(result)
}

func TestNullSafeEquals(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	eq := NewNullSafeEquals(
		NewGetField(0, types.Int64, "a", true),
		NewGetField(1, types.Int64, "b", true),
	)
	require.False(eq.IsNullable())

	result, err := eq.Eval(ctx, sql.NewRow(int64(1), int64(1)))
	require.NoError(err)
	require.Equal(true, result)

	result, err = eq.Eval(ctx, sql.NewRow(nil, nil))
	require.NoError(err)
	require.Equal(true, result)

	result, err = eq.Eval(ctx, sql.NewRow(nil, int64(1)))
	require.NoError(err)
	require.Equal(false, result)
}

func TestGreaterThanLessThan(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	left := NewGetField(0, types.Int64, "a", true)
	right := NewGetField(1, types.Int64, "b", true)

	result, err := NewGreaterThan(left, right).Eval(ctx, sql.NewRow(int64(5), int64(3)))
	require.NoError(err)
	require.Equal(true, result)

	result, err = NewLessThan(left, right).Eval(ctx, sql.NewRow(int64(5), int64(3)))
	require.NoError(err)
	require.Equal(false, result)
}
