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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/expression"
)

func TestGetJoinCategory(t *testing.T) {
	var leftKeys, rightKeys []int
	var filterNulls []bool

	classify := func(cond sql.Expression) JoinCategory {
		return GetJoinCategory(
			ordersTable(), customersTable(), cond,
			&leftKeys, &rightKeys, &filterNulls,
		)
	}

	t.Run("trivially true condition is cartesian", func(t *testing.T) {
		require.Equal(t, JoinCategoryCartesian, classify(nil))
		require.Equal(t, JoinCategoryCartesian, classify(expression.NewTrueLiteral()))
	})

	t.Run("single equi-comparison is equality", func(t *testing.T) {
		require.Equal(t, JoinCategoryEquality, classify(ordersCustomersEquiCond()))
	})

	t.Run("strict inequality comparison is inequality", func(t *testing.T) {
		require.Equal(t, JoinCategoryInequality, classify(ordersCustomersResidualCond()))
	})

	t.Run("equi-keys with residual is inequality", func(t *testing.T) {
		cond := expression.NewAnd(ordersCustomersEquiCond(), ordersCustomersResidualCond())
		require.Equal(t, JoinCategoryInequality, classify(cond))
	})
}
