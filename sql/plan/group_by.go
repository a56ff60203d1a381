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

package plan

import (
	"fmt"
	"strings"

	"github.com/tidesql/tide/sql"
)

// GroupBy groups the rows of its child by the grouping expressions and
// computes the selected expressions per group. An empty grouping set
// aggregates the whole input into a single row, which is what makes a
// subtree provably scalar.
type GroupBy struct {
	UnaryNode
	SelectedExprs []sql.Expression
	GroupByExprs  []sql.Expression
}

var _ sql.Node = (*GroupBy)(nil)

// NewGroupBy creates a new GroupBy node. Like `SELECT selectedExprs FROM
// child GROUP BY groupByExprs`.
func NewGroupBy(selectedExprs, groupByExprs []sql.Expression, child sql.Node) *GroupBy {
	return &GroupBy{
		UnaryNode:     UnaryNode{Child: child},
		SelectedExprs: selectedExprs,
		GroupByExprs:  groupByExprs,
	}
}

// Resolved implements the Resolvable interface.
func (g *GroupBy) Resolved() bool {
	return g.UnaryNode.Child.Resolved() &&
		sql.ExpressionsResolved(g.SelectedExprs...) &&
		sql.ExpressionsResolved(g.GroupByExprs...)
}

// Schema implements the Node interface.
func (g *GroupBy) Schema() sql.Schema {
	var s = make(sql.Schema, len(g.SelectedExprs))
	for i, e := range g.SelectedExprs {
		s[i] = expressionToColumn(e)
	}
	return s
}

// WithChildren implements the Node interface.
func (g *GroupBy) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(g, len(children), 1)
	}
	return NewGroupBy(g.SelectedExprs, g.GroupByExprs, children[0]), nil
}

func (g *GroupBy) String() string {
	selected := make([]string, len(g.SelectedExprs))
	for i, e := range g.SelectedExprs {
		selected[i] = e.String()
	}
	grouping := make([]string, len(g.GroupByExprs))
	for i, e := range g.GroupByExprs {
		grouping[i] = e.String()
	}
	return fmt.Sprintf("GroupBy(%s)(%s)(%s)",
		strings.Join(selected, ", "), strings.Join(grouping, ", "), g.Child)
}
