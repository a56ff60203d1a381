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

func boolLit(v bool) sql.Expression {
	return NewLiteral(v, types.Boolean)
}

func TestJoinAnd(t *testing.T) {
	require := require.New(t)

	require.Nil(JoinAnd())
	require.Nil(JoinAnd(nil, nil))

	single := boolLit(true)
	require.Equal(single, JoinAnd(nil, single, nil))

	joined := JoinAnd(boolLit(true), boolLit(false), boolLit(true))
	require.Len(SplitConjunction(joined), 3)
}

func TestSplitConjunction(t *testing.T) {
	require := require.New(t)

	require.Nil(SplitConjunction(nil))

	a, b, c := boolLit(true), boolLit(false), boolLit(true)

	conjuncts := SplitConjunction(NewAnd(NewAnd(a, b), c))
	require.Equal([]sql.Expression{a, b, c}, conjuncts)

	// ORs are opaque to conjunction splitting
	or := NewOr(a, b)
	require.Equal([]sql.Expression{or}, SplitConjunction(or))
}

func TestIsAlwaysTrue(t *testing.T) {
	require := require.New(t)

	require.True(IsAlwaysTrue(nil))
	require.True(IsAlwaysTrue(NewTrueLiteral()))
	require.False(IsAlwaysTrue(boolLit(false)))
	require.False(IsAlwaysTrue(NewLiteral(int64(1), types.Int64)))
	require.False(IsAlwaysTrue(NewGetField(0, types.Boolean, "b", false)))
}
