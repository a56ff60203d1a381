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

// JoinCategory classifies a join by the execution strategy its condition
// admits.
type JoinCategory byte

const (
	// JoinCategoryEquality is a pure equality join, executable by a keyed
	// join algorithm.
	JoinCategoryEquality JoinCategory = iota
	// JoinCategoryInequality is a join whose condition cannot be fully
	// expressed as equi-keys (<>, <, >, or any leftover predicate), so it
	// needs a general comparison strategy.
	JoinCategoryInequality
	// JoinCategoryCartesian is a join with no condition at all.
	JoinCategoryCartesian
)

func (c JoinCategory) String() string {
	switch c {
	case JoinCategoryEquality:
		return "EQUALITY"
	case JoinCategoryInequality:
		return "INEQUALITY"
	default:
		return "CARTESIAN"
	}
}

// GetJoinCategory classifies the join condition between the given inputs. A
// trivially true condition is cartesian no matter what it splits into. A
// condition that splits into equi-keys with no residual is an equality join.
// Everything else (a non-trivial residual, or no recoverable equi-keys) is
// treated as inequality for execution-strategy purposes, even when it is
// logically closer to a cartesian product.
//
// The key slices are caller-owned scratch buffers, cleared before use.
func GetJoinCategory(
	left, right sql.Node,
	cond sql.Expression,
	leftKeys, rightKeys *[]int,
	filterNulls *[]bool,
) JoinCategory {
	if expression.IsAlwaysTrue(cond) {
		return JoinCategoryCartesian
	}

	residual := SplitJoinCondition(left, right, cond, leftKeys, rightKeys, filterNulls)
	if !expression.IsAlwaysTrue(residual) || len(*leftKeys) == 0 || len(*rightKeys) == 0 {
		return JoinCategoryInequality
	}
	return JoinCategoryEquality
}
