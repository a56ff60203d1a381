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
	"github.com/tidesql/tide/sql/expression"
)

// Project is a projection of certain expression from the children node.
type Project struct {
	UnaryNode
	// Projections are the expressions evaluated for each row.
	Projections []sql.Expression
}

var _ sql.Node = (*Project)(nil)

// NewProject creates a projection of certain expression from the children
// node.
func NewProject(projections []sql.Expression, child sql.Node) *Project {
	return &Project{
		UnaryNode:   UnaryNode{child},
		Projections: projections,
	}
}

// Schema implements the Node interface.
func (p *Project) Schema() sql.Schema {
	var s = make(sql.Schema, len(p.Projections))
	for i, e := range p.Projections {
		s[i] = expressionToColumn(e)
	}
	return s
}

// Resolved implements the Resolvable interface.
func (p *Project) Resolved() bool {
	return p.UnaryNode.Child.Resolved() &&
		sql.ExpressionsResolved(p.Projections...)
}

// WithChildren implements the Node interface.
func (p *Project) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 1)
	}
	return NewProject(p.Projections, children[0]), nil
}

func (p *Project) String() string {
	var exprs = make([]string, len(p.Projections))
	for i, e := range p.Projections {
		exprs[i] = e.String()
	}
	return fmt.Sprintf("Project(%s)(%s)", strings.Join(exprs, ", "), p.Child)
}

func expressionToColumn(e sql.Expression) *sql.Column {
	name := e.String()
	var source string
	if n, ok := e.(sql.Nameable); ok {
		name = n.Name()
	}
	if gf, ok := e.(*expression.GetField); ok {
		source = gf.Table()
	}
	return &sql.Column{
		Name:     name,
		Type:     e.Type(),
		Source:   source,
		Nullable: e.IsNullable(),
	}
}
