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

package sql

import "fmt"

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Resolvable is something that can be resolved or not.
type Resolvable interface {
	// Resolved returns whether the node is resolved.
	Resolved() bool
}

// Node is a node in the plan tree. Analysis never mutates tree topology;
// transforms produce new trees via WithChildren.
type Node interface {
	Resolvable
	fmt.Stringer

	// Schema of the node.
	Schema() Schema

	// Children nodes, in order.
	Children() []Node

	// WithChildren returns a copy of the node with children replaced.
	// It must return an error if the number of children is invalid.
	WithChildren(children ...Node) (Node, error)
}

// Expression is a typed expression tree node.
type Expression interface {
	Resolvable
	fmt.Stringer

	// Type returns the expression type.
	Type() Type

	// IsNullable returns whether the expression can be null.
	IsNullable() bool

	// Eval evaluates the given row and returns a result.
	Eval(ctx *Context, row Row) (interface{}, error)

	// Children returns the children expressions of this expression.
	Children() []Expression

	// WithChildren returns a copy of the expression with children replaced.
	// It must return an error if the number of children is invalid.
	WithChildren(children ...Expression) (Expression, error)
}

// Row is a tuple of values.
type Row []interface{}

// NewRow creates a row from the given values.
func NewRow(values ...interface{}) Row {
	row := make([]interface{}, len(values))
	copy(row, values)
	return row
}

// ExpressionsResolved returns whether all the given expressions are resolved.
func ExpressionsResolved(exprs ...Expression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}
