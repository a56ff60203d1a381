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

	"gopkg.in/src-d/go-errors.v1"

	"github.com/tidesql/tide/sql"
)

// ErrConvertExpression is returned when a conversion is not possible.
var ErrConvertExpression = errors.NewKind("expression '%v': couldn't convert to %v")

// Convert represents a cast of an expression to a target type descriptor.
// Casts are inserted by the analyzer to reconcile mismatched column types
// across a join's keys; the target carries the full descriptor, precision
// and scale included.
type Convert struct {
	UnaryExpression
	castToType sql.Type
}

var _ sql.Expression = (*Convert)(nil)

// NewConvert creates a new Convert expression casting the child to the
// given type.
func NewConvert(expr sql.Expression, castToType sql.Type) *Convert {
	return &Convert{
		UnaryExpression: UnaryExpression{Child: expr},
		castToType:      castToType,
	}
}

// IsNullable implements the Expression interface.
func (c *Convert) IsNullable() bool {
	switch c.castToType.Tag() {
	case sql.TagDate, sql.TagTimestamp, sql.TagDatetime:
		return true
	default:
		return c.Child.IsNullable()
	}
}

// Type implements the Expression interface.
func (c *Convert) Type() sql.Type {
	return c.castToType
}

// Eval implements the Expression interface.
func (c *Convert) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	val, err := c.Child.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}

	converted, err := c.castToType.Convert(val)
	if err != nil {
		return nil, ErrConvertExpression.Wrap(err, c.Child, c.castToType)
	}
	return converted, nil
}

// WithChildren implements the Expression interface.
func (c *Convert) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), 1)
	}
	return NewConvert(children[0], c.castToType), nil
}

func (c *Convert) String() string {
	return fmt.Sprintf("CONVERT(%s, %s)", c.Child, c.castToType)
}
