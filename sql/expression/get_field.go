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
)

// GetField is an expression to get the field of a relation by position.
type GetField struct {
	table      string
	fieldIndex int
	name       string
	fieldType  sql.Type
	nullable   bool
}

var _ sql.Expression = (*GetField)(nil)

// NewGetField creates a GetField expression.
func NewGetField(index int, fieldType sql.Type, fieldName string, nullable bool) *GetField {
	return NewGetFieldWithTable(index, fieldType, "", fieldName, nullable)
}

// NewGetFieldWithTable creates a GetField expression with table name. The
// table name may be an alias.
func NewGetFieldWithTable(index int, fieldType sql.Type, table, fieldName string, nullable bool) *GetField {
	return &GetField{
		table:      table,
		fieldIndex: index,
		fieldType:  fieldType,
		name:       fieldName,
		nullable:   nullable,
	}
}

// Index returns the index where the GetField will look for the value from a
// sql.Row.
func (p *GetField) Index() int { return p.fieldIndex }

// Table returns the name of the field table.
func (p *GetField) Table() string { return p.table }

// Name returns the name of the field.
func (p *GetField) Name() string { return p.name }

// Resolved implements the Expression interface.
func (p *GetField) Resolved() bool {
	return true
}

// IsNullable implements the Expression interface.
func (p *GetField) IsNullable() bool {
	return p.nullable
}

// Type implements the Expression interface.
func (p *GetField) Type() sql.Type {
	return p.fieldType
}

// Eval implements the Expression interface.
func (p *GetField) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if p.fieldIndex < 0 || p.fieldIndex >= len(row) {
		return nil, ErrIndexOutOfBounds.New(p.fieldIndex, len(row))
	}
	return row[p.fieldIndex], nil
}

// Children implements the Expression interface.
func (*GetField) Children() []sql.Expression {
	return nil
}

// WithChildren implements the Expression interface.
func (p *GetField) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 0)
	}
	return p, nil
}

// WithIndex returns a copy of this expression with the field index given.
func (p *GetField) WithIndex(index int) *GetField {
	p2 := *p
	p2.fieldIndex = index
	return &p2
}

// WithType returns a copy of this expression with the field type given.
func (p *GetField) WithType(fieldType sql.Type) *GetField {
	p2 := *p
	p2.fieldType = fieldType
	return &p2
}

func (p *GetField) String() string {
	if p.table == "" {
		return p.name
	}
	return fmt.Sprintf("%s.%s", p.table, p.name)
}
