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

package expression

import (
	"fmt"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/types"
)

// comparison is the base for all comparison expressions.
type comparison struct {
	BinaryExpression
}

func newComparison(left, right sql.Expression) comparison {
	return comparison{BinaryExpression{Left: left, Right: right}}
}

// Compare the two given values using the types of the expressions in the
// comparison. Since both types should be equal after analysis, the left type
// is used.
func (c *comparison) Compare(ctx *sql.Context, row sql.Row) (int, bool, error) {
	left, err := c.Left.Eval(ctx, row)
	if err != nil {
		return 0, false, err
	}
	right, err := c.Right.Eval(ctx, row)
	if err != nil {
		return 0, false, err
	}

	if left == nil || right == nil {
		return 0, true, nil
	}

	cmp, err := c.Left.Type().Compare(left, right)
	if err != nil {
		return 0, false, err
	}
	return cmp, false, nil
}

// Type implements the Expression interface.
func (*comparison) Type() sql.Type {
	return types.Boolean
}

// Equals is a comparison that checks an expression is equal to another.
type Equals struct {
	comparison
}

var _ sql.Expression = (*Equals)(nil)

// NewEquals returns a new Equals expression.
func NewEquals(left, right sql.Expression) *Equals {
	return &Equals{newComparison(left, right)}
}

// Eval implements the Expression interface.
func (e *Equals) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	cmp, hasNull, err := e.Compare(ctx, row)
	if err != nil {
		return nil, err
	}
	if hasNull {
		return nil, nil
	}
	return cmp == 0, nil
}

// WithChildren implements the Expression interface.
func (e *Equals) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 2)
	}
	return NewEquals(children[0], children[1]), nil
}

func (e *Equals) String() string {
	return fmt.Sprintf("%s = %s", e.Left, e.Right)
}

// NullSafeEquals is a comparison that checks an expression is equal to
// another, where NULLs compare equal to each other instead of matching
// nothing (the <=> operator, IS NOT DISTINCT FROM).
type NullSafeEquals struct {
	comparison
}

var _ sql.Expression = (*NullSafeEquals)(nil)

// NewNullSafeEquals returns a new NullSafeEquals expression.
func NewNullSafeEquals(left, right sql.Expression) *NullSafeEquals {
	return &NullSafeEquals{newComparison(left, right)}
}

// IsNullable implements the Expression interface.
func (e *NullSafeEquals) IsNullable() bool {
	return false
}

// Eval implements the Expression interface.
func (e *NullSafeEquals) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	left, err := e.Left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	right, err := e.Right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	if left == nil && right == nil {
		return true, nil
	}
	if left == nil || right == nil {
		return false, nil
	}

	cmp, err := e.Left.Type().Compare(left, right)
	if err != nil {
		return nil, err
	}
	return cmp == 0, nil
}

// WithChildren implements the Expression interface.
func (e *NullSafeEquals) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 2)
	}
	return NewNullSafeEquals(children[0], children[1]), nil
}

func (e *NullSafeEquals) String() string {
	return fmt.Sprintf("%s <=> %s", e.Left, e.Right)
}

// GreaterThan is a comparison that checks an expression is greater than
// another.
type GreaterThan struct {
	comparison
}

var _ sql.Expression = (*GreaterThan)(nil)

// NewGreaterThan creates a new GreaterThan expression.
func NewGreaterThan(left, right sql.Expression) *GreaterThan {
	return &GreaterThan{newComparison(left, right)}
}

// Eval implements the Expression interface.
func (gt *GreaterThan) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	cmp, hasNull, err := gt.Compare(ctx, row)
	if err != nil {
		return nil, err
	}
	if hasNull {
		return nil, nil
	}
	return cmp == 1, nil
}

// WithChildren implements the Expression interface.
func (gt *GreaterThan) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(gt, len(children), 2)
	}
	return NewGreaterThan(children[0], children[1]), nil
}

func (gt *GreaterThan) String() string {
	return fmt.Sprintf("%s > %s", gt.Left, gt.Right)
}

// LessThan is a comparison that checks an expression is less than another.
type LessThan struct {
	comparison
}

var _ sql.Expression = (*LessThan)(nil)

// NewLessThan creates a new LessThan expression.
func NewLessThan(left, right sql.Expression) *LessThan {
	return &LessThan{newComparison(left, right)}
}

// Eval implements the Expression interface.
func (lt *LessThan) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	cmp, hasNull, err := lt.Compare(ctx, row)
	if err != nil {
		return nil, err
	}
	if hasNull {
		return nil, nil
	}
	return cmp == -1, nil
}

// WithChildren implements the Expression interface.
func (lt *LessThan) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(lt, len(children), 2)
	}
	return NewLessThan(children[0], children[1]), nil
}

func (lt *LessThan) String() string {
	return fmt.Sprintf("%s < %s", lt.Left, lt.Right)
}
