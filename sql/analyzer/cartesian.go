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
)

// ContainsCartesianJoin reports whether any join in the tree under n is a
// cartesian join. The walk is pre-order, depth first, and stops at the
// first join that qualifies.
//
// Inner joins qualify only when either key list comes back empty: a
// leftover non-equi predicate can still be evaluated as a filter after the
// keyed match, so it doesn't force a cross product. Outer joins are
// stricter: unmatched rows must be null-extended, so every predicate has
// to participate in the equi-join test; any residual, or an empty key list,
// qualifies.
//
// The key slices are scratch buffers shared across the whole walk. After
// the call returns they reflect the last join visited, which is not
// necessarily the one that triggered a true result; callers must only use
// the boolean.
func ContainsCartesianJoin(
	n sql.Node,
	leftKeys, rightKeys *[]int,
	filterNulls *[]bool,
) bool {
	switch n := n.(type) {
	case *plan.JoinNode:
		residual := SplitJoinCondition(n.Left(), n.Right(), n.JoinCond(), leftKeys, rightKeys, filterNulls)
		if n.Op.IsInner() {
			if len(*leftKeys) == 0 || len(*rightKeys) == 0 {
				return true
			}
		} else {
			if !expression.IsAlwaysTrue(residual) || len(*leftKeys) == 0 || len(*rightKeys) == 0 {
				return true
			}
		}
	case *plan.AlternativesGroup:
		best, ok := n.Best()
		if !ok {
			return false
		}
		return ContainsCartesianJoin(best, leftKeys, rightKeys, filterNulls)
	}

	for _, child := range n.Children() {
		if ContainsCartesianJoin(child, leftKeys, rightKeys, filterNulls) {
			return true
		}
	}
	return false
}
