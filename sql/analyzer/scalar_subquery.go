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
	"github.com/tidesql/tide/sql/plan"
)

// IsScalarSubquery reports whether the subtree rooted at root is provably
// scalar: it produces at most one row. Currently only an aggregation with
// an empty grouping set qualifies. The walk follows the single-input chain
// below root (Project, Filter, Sort, ...) until it reaches an aggregation;
// an optimizer alternatives group on the way is resolved to its best
// alternative without consuming a chain step. A node with zero or several
// inputs that is not an aggregation ends the walk.
func IsScalarSubquery(root sql.Node) bool {
	current := root
	for current != nil {
		switch n := current.(type) {
		case *plan.GroupBy:
			return len(n.GroupByExprs) == 0
		case *plan.AlternativesGroup:
			best, ok := n.Best()
			if !ok {
				return false
			}
			current = best
		default:
			children := current.Children()
			if len(children) != 1 {
				return false
			}
			current = children[0]
		}
	}
	return false
}

// HasScalarSubqueryInput reports whether either input of a join is provably
// scalar. Joins with a scalar input are candidates for rewriting into a
// scalar-subquery or semi-join pattern.
func HasScalarSubqueryInput(left, right sql.Node) bool {
	return IsScalarSubquery(left) || IsScalarSubquery(right)
}
