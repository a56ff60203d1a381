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

// And checks whether two expressions are true.
type And struct {
	BinaryExpression
}

var _ sql.Expression = (*And)(nil)

// NewAnd creates a new And expression.
func NewAnd(left, right sql.Expression) sql.Expression {
	return &And{BinaryExpression{Left: left, Right: right}}
}

// JoinAnd joins several expressions with ANDs. Nil expressions are skipped;
// joining no expressions returns nil.
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	var result sql.Expression
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if result == nil {
			result = e
			continue
		}
		result = NewAnd(result, e)
	}
	return result
}

// SplitConjunction breaks an expression into its conjuncts: the operands of
// the top-level chain of ANDs, left to right.
func SplitConjunction(e sql.Expression) []sql.Expression {
	if e == nil {
		return nil
	}
	a, ok := e.(*And)
	if !ok {
		return []sql.Expression{e}
	}
	return append(
		SplitConjunction(a.Left),
		SplitConjunction(a.Right)...,
	)
}

// Type implements the Expression interface.
func (*And) Type() sql.Type {
	return types.Boolean
}

// Eval implements the Expression interface.
func (a *And) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := a.Left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lval == false {
		return false, nil
	}

	rval, err := a.Right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if rval == false {
		return false, nil
	}

	if lval == nil || rval == nil {
		return nil, nil
	}
	return true, nil
}

// WithChildren implements the Expression interface.
func (a *And) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewAnd(children[0], children[1]), nil
}

func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

// Or checks whether one of the two given expressions is true.
type Or struct {
	BinaryExpression
}

var _ sql.Expression = (*Or)(nil)

// NewOr creates a new Or expression.
func NewOr(left, right sql.Expression) sql.Expression {
	return &Or{BinaryExpression{Left: left, Right: right}}
}

// Type implements the Expression interface.
func (*Or) Type() sql.Type {
	return types.Boolean
}

// Eval implements the Expression interface.
func (o *Or) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := o.Left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lval == true {
		return true, nil
	}

	rval, err := o.Right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if rval == true {
		return true, nil
	}

	if lval == nil || rval == nil {
		return nil, nil
	}
	return false, nil
}

// WithChildren implements the Expression interface.
func (o *Or) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(o, len(children), 2)
	}
	return NewOr(children[0], children[1]), nil
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left, o.Right)
}
