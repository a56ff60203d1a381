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
	"github.com/tidesql/tide/sql/plan"
	"github.com/tidesql/tide/sql/types"
)

func containsCartesian(n sql.Node) bool {
	var leftKeys, rightKeys []int
	var filterNulls []bool
	return ContainsCartesianJoin(n, &leftKeys, &rightKeys, &filterNulls)
}

func TestContainsCartesianJoin(t *testing.T) {
	equiResidual := expression.NewAnd(ordersCustomersEquiCond(), ordersCustomersResidualCond())

	testCases := []struct {
		name     string
		node     sql.Node
		expected bool
	}{
		{
			"no join in the tree",
			plan.NewFilter(ordersCustomersResidualCond(), ordersTable()),
			false,
		},
		{
			"cross join",
			plan.NewCrossJoin(ordersTable(), customersTable()),
			true,
		},
		{
			"inner join with trivially true condition",
			plan.NewInnerJoin(ordersTable(), customersTable(), expression.NewTrueLiteral()),
			true,
		},
		{
			"inner equi-join",
			plan.NewInnerJoin(ordersTable(), customersTable(), ordersCustomersEquiCond()),
			false,
		},
		{
			"inner equi-join with residual",
			plan.NewInnerJoin(ordersTable(), customersTable(), equiResidual),
			false,
		},
		{
			"inner join with only a non-equi condition",
			plan.NewInnerJoin(ordersTable(), customersTable(), ordersCustomersResidualCond()),
			true,
		},
		{
			"left outer equi-join",
			plan.NewLeftOuterJoin(ordersTable(), customersTable(), ordersCustomersEquiCond()),
			false,
		},
		{
			"left outer join with residual",
			plan.NewLeftOuterJoin(ordersTable(), customersTable(), equiResidual),
			true,
		},
		{
			"right outer equi-join",
			plan.NewRightOuterJoin(ordersTable(), customersTable(), ordersCustomersEquiCond()),
			false,
		},
		{
			"right outer join with residual",
			plan.NewRightOuterJoin(ordersTable(), customersTable(), equiResidual),
			true,
		},
		{
			"full outer join with residual",
			plan.NewFullOuterJoin(ordersTable(), customersTable(), equiResidual),
			true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, containsCartesian(tt.node))
		})
	}
}

func TestContainsCartesianJoinNested(t *testing.T) {
	require := require.New(t)

	inner := plan.NewInnerJoin(ordersTable(), customersTable(), ordersCustomersEquiCond())
	require.False(containsCartesian(plan.NewFilter(ordersCustomersResidualCond(), inner)))

	// a clean join above a cross join deeper in the tree still qualifies
	cross := plan.NewCrossJoin(ordersTable(), customersTable())
	outer := plan.NewInnerJoin(cross, customersTable(), expression.NewEquals(
		expression.NewGetField(1, types.Int32, "customer_id", false),
		expression.NewGetField(5, types.Int32, "id", false),
	))
	require.True(containsCartesian(outer))
}

func TestContainsCartesianJoinAlternativesGroup(t *testing.T) {
	require := require.New(t)

	equi := plan.NewInnerJoin(ordersTable(), customersTable(), ordersCustomersEquiCond())
	cross := plan.NewCrossJoin(ordersTable(), customersTable())

	// an unresolved group contributes nothing to the walk
	group := plan.NewAlternativesGroup(equi, cross)
	require.False(containsCartesian(group))

	// only the chosen alternative is inspected
	require.True(group.UpdateBest(cross, 10))
	require.True(containsCartesian(group))

	require.True(group.UpdateBest(equi, 2))
	require.False(containsCartesian(group))
}
