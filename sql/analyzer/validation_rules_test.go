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
)

func TestValidateNoCartesianJoin(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	a := NewDefault()

	equi := plan.NewInnerJoin(ordersTable(), customersTable(), ordersCustomersEquiCond())
	require.NoError(validateNoCartesianJoin(ctx, a, equi))

	cross := plan.NewCrossJoin(ordersTable(), customersTable())
	err := validateNoCartesianJoin(ctx, a, cross)
	require.Error(err)
	require.True(ErrCartesianJoinNotSupported.Is(err))
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	a := NewDefault()

	good := plan.NewFilter(
		ordersCustomersResidualCond(),
		plan.NewInnerJoin(ordersTable(), customersTable(), ordersCustomersEquiCond()),
	)
	require.NoError(a.Validate(ctx, good))

	bad := plan.NewInnerJoin(ordersTable(), customersTable(), expression.NewTrueLiteral())
	err := a.Validate(ctx, bad)
	require.Error(err)
	require.True(ErrCartesianJoinNotSupported.Is(err))
}
