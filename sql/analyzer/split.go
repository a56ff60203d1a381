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
)

// SplitJoinCondition decomposes a join condition into equi-join key columns
// and a residual predicate. Every top-level conjunct that is an equality (or
// null-safe equality) between a column of the left input and a column of the
// right input contributes one entry to each key list: the column's position
// within its own side's schema. filterNulls records, per entry, whether the
// key pair excludes NULL matches (plain equality does, null-safe equality
// does not). Conjuncts that don't decompose are combined into the returned
// residual, which is nil when every conjunct was absorbed.
//
// The caller's key slices are scratch buffers: they are cleared before use
// and reused across calls, so after a sequence of calls they reflect only
// the last condition split.
func SplitJoinCondition(
	left, right sql.Node,
	cond sql.Expression,
	leftKeys, rightKeys *[]int,
	filterNulls *[]bool,
) sql.Expression {
	*leftKeys = (*leftKeys)[:0]
	*rightKeys = (*rightKeys)[:0]
	*filterNulls = (*filterNulls)[:0]

	if expression.IsAlwaysTrue(cond) {
		return nil
	}

	leftCols := len(left.Schema())
	var residual []sql.Expression
	for _, conjunct := range expression.SplitConjunction(cond) {
		if expression.IsAlwaysTrue(conjunct) {
			continue
		}
		lIdx, rIdx, nullFiltering, ok := splitEquiConjunct(conjunct, leftCols)
		if !ok {
			residual = append(residual, conjunct)
			continue
		}
		*leftKeys = append(*leftKeys, lIdx)
		*rightKeys = append(*rightKeys, rIdx)
		*filterNulls = append(*filterNulls, nullFiltering)
	}

	return expression.JoinAnd(residual...)
}

// splitEquiConjunct recognizes a single equi-join conjunct: an equality
// between a field of the left input and a field of the right input, in
// either operand order. Field indexes are positions into the joined row, so
// a field belongs to the right input iff its index is past the left input's
// column count.
func splitEquiConjunct(conjunct sql.Expression, leftCols int) (leftKey, rightKey int, filterNulls, ok bool) {
	var a, b sql.Expression
	switch cmp := conjunct.(type) {
	case *expression.Equals:
		a, b = cmp.Left, cmp.Right
		filterNulls = true
	case *expression.NullSafeEquals:
		a, b = cmp.Left, cmp.Right
		filterNulls = false
	default:
		return 0, 0, false, false
	}

	af, aok := a.(*expression.GetField)
	bf, bok := b.(*expression.GetField)
	if !aok || !bok {
		return 0, 0, false, false
	}

	switch {
	case af.Index() < leftCols && bf.Index() >= leftCols:
		return af.Index(), bf.Index() - leftCols, filterNulls, true
	case bf.Index() < leftCols && af.Index() >= leftCols:
		return bf.Index(), af.Index() - leftCols, filterNulls, true
	default:
		// both fields on the same side, not an equi-join conjunct
		return 0, 0, false, false
	}
}
