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
	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/expression"
	"github.com/tidesql/tide/sql/plan"
	"github.com/tidesql/tide/sql/types"
)

var ordersSchema = sql.Schema{
	{Name: "id", Source: "orders", Type: types.Int32},
	{Name: "customer_id", Source: "orders", Type: types.Int32},
	{Name: "total", Source: "orders", Type: types.Float64},
}

var customersSchema = sql.Schema{
	{Name: "id", Source: "customers", Type: types.Int32},
	{Name: "name", Source: "customers", Type: types.VarChar},
}

func ordersTable() *plan.ResolvedTable {
	return plan.NewResolvedTable("orders", ordersSchema)
}

func customersTable() *plan.ResolvedTable {
	return plan.NewResolvedTable("customers", customersSchema)
}

// orders.customer_id = customers.id, field indexes relative to the joined
// row (orders columns first).
func ordersCustomersEquiCond() sql.Expression {
	return expression.NewEquals(
		expression.NewGetFieldWithTable(1, types.Int32, "orders", "customer_id", false),
		expression.NewGetFieldWithTable(3, types.Int32, "customers", "id", false),
	)
}

// orders.total > customers.id, a non-equi conjunct over the joined row.
func ordersCustomersResidualCond() sql.Expression {
	return expression.NewGreaterThan(
		expression.NewGetFieldWithTable(2, types.Float64, "orders", "total", false),
		expression.NewGetFieldWithTable(3, types.Int32, "customers", "id", false),
	)
}
