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

	"github.com/tidesql/tide/sql"
)

// JoinType is the kind of a join node.
type JoinType uint16

const (
	JoinTypeUnknown    JoinType = iota // UnknownJoin
	JoinTypeCross                      // CrossJoin
	JoinTypeInner                      // InnerJoin
	JoinTypeLeftOuter                  // LeftOuterJoin
	JoinTypeRightOuter                 // RightOuterJoin
	JoinTypeFullOuter                  // FullOuterJoin
	JoinTypeSemi                       // SemiJoin
	JoinTypeAnti                       // AntiJoin
)

var joinTypeNames = map[JoinType]string{
	JoinTypeUnknown:    "UnknownJoin",
	JoinTypeCross:      "CrossJoin",
	JoinTypeInner:      "InnerJoin",
	JoinTypeLeftOuter:  "LeftOuterJoin",
	JoinTypeRightOuter: "RightOuterJoin",
	JoinTypeFullOuter:  "FullOuterJoin",
	JoinTypeSemi:       "SemiJoin",
	JoinTypeAnti:       "AntiJoin",
}

func (i JoinType) String() string {
	if s, ok := joinTypeNames[i]; ok {
		return s
	}
	return fmt.Sprintf("JoinType(%d)", uint16(i))
}

// IsInner returns whether the join is an inner join. Inner joins may defer
// non-equality predicates to a filter applied after matching; outer joins
// may not.
func (i JoinType) IsInner() bool {
	return i == JoinTypeInner || i == JoinTypeCross
}

// IsLeftOuter returns whether the join is a left outer join.
func (i JoinType) IsLeftOuter() bool {
	return i == JoinTypeLeftOuter
}

// IsRightOuter returns whether the join is a right outer join.
func (i JoinType) IsRightOuter() bool {
	return i == JoinTypeRightOuter
}

// IsFullOuter returns whether the join is a full outer join.
func (i JoinType) IsFullOuter() bool {
	return i == JoinTypeFullOuter
}

// IsSemi returns whether the join is a semi or anti join.
func (i JoinType) IsSemi() bool {
	return i == JoinTypeSemi || i == JoinTypeAnti
}

// IsDegenerate returns whether the join has no condition by construction.
func (i JoinType) IsDegenerate() bool {
	return i == JoinTypeCross
}

// JoinNode contains all the common data fields and implements the common
// sql.Node getters for all join types.
type JoinNode struct {
	BinaryNode
	Filter sql.Expression
	Op     JoinType
}

var _ sql.Node = (*JoinNode)(nil)

// NewJoin creates a join node with the given kind and condition. A nil
// condition is a cross product.
func NewJoin(left, right sql.Node, op JoinType, cond sql.Expression) *JoinNode {
	return &JoinNode{
		Op:         op,
		BinaryNode: BinaryNode{left: left, right: right},
		Filter:     cond,
	}
}

// NewInnerJoin creates a new inner join node from two tables.
func NewInnerJoin(left, right sql.Node, cond sql.Expression) *JoinNode {
	return NewJoin(left, right, JoinTypeInner, cond)
}

// NewLeftOuterJoin creates a new left outer join node from two tables.
func NewLeftOuterJoin(left, right sql.Node, cond sql.Expression) *JoinNode {
	return NewJoin(left, right, JoinTypeLeftOuter, cond)
}

// NewRightOuterJoin creates a new right outer join node from two tables.
func NewRightOuterJoin(left, right sql.Node, cond sql.Expression) *JoinNode {
	return NewJoin(left, right, JoinTypeRightOuter, cond)
}

// NewFullOuterJoin creates a new full outer join node from two tables.
func NewFullOuterJoin(left, right sql.Node, cond sql.Expression) *JoinNode {
	return NewJoin(left, right, JoinTypeFullOuter, cond)
}

// NewCrossJoin creates a new cross join node from two tables.
func NewCrossJoin(left, right sql.Node) *JoinNode {
	return NewJoin(left, right, JoinTypeCross, nil)
}

// JoinCond returns the join condition.
func (j *JoinNode) JoinCond() sql.Expression {
	return j.Filter
}

// Schema implements the Node interface.
func (j *JoinNode) Schema() sql.Schema {
	switch {
	case j.Op.IsSemi():
		return j.left.Schema()
	case j.Op.IsLeftOuter():
		return append(j.left.Schema(), makeNullable(j.right.Schema())...)
	case j.Op.IsRightOuter():
		return append(makeNullable(j.left.Schema()), j.right.Schema()...)
	case j.Op.IsFullOuter():
		return append(makeNullable(j.left.Schema()), makeNullable(j.right.Schema())...)
	default:
		return append(j.left.Schema(), j.right.Schema()...)
	}
}

// Resolved implements the Resolvable interface.
func (j *JoinNode) Resolved() bool {
	if !j.BinaryNode.Resolved() {
		return false
	}
	return j.Filter == nil || j.Filter.Resolved()
}

// WithChildren implements the Node interface.
func (j *JoinNode) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(j, len(children), 2)
	}
	return NewJoin(children[0], children[1], j.Op, j.Filter), nil
}

func (j *JoinNode) String() string {
	if j.Filter == nil {
		return fmt.Sprintf("%s(%s, %s)", j.Op, j.left, j.right)
	}
	return fmt.Sprintf("%s(%s, %s, %s)", j.Op, j.left, j.right, j.Filter)
}

func makeNullable(schema sql.Schema) sql.Schema {
	result := make(sql.Schema, len(schema))
	for i, col := range schema {
		c := *col
		c.Nullable = true
		result[i] = &c
	}
	return result
}

// JoinCondition is the join condition record of a directly submitted
// physical plan: a declared comparator name plus the two key expressions it
// relates. Such plans bypass normal plan validation, so the comparator name
// has to be validated again at join setup.
type JoinCondition struct {
	// Comparator is the declared comparator name, case-insensitive.
	Comparator string
	// Left is the key expression over the left input.
	Left sql.Expression
	// Right is the key expression over the right input.
	Right sql.Expression
}
