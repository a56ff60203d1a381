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

// ResolvedTable is a leaf scan over a named relation with a known schema.
type ResolvedTable struct {
	name   string
	schema sql.Schema
}

var _ sql.Node = (*ResolvedTable)(nil)
var _ sql.Nameable = (*ResolvedTable)(nil)

// NewResolvedTable creates a new leaf scan node for the given relation.
func NewResolvedTable(name string, schema sql.Schema) *ResolvedTable {
	return &ResolvedTable{name: name, schema: schema}
}

// Name implements the Nameable interface.
func (t *ResolvedTable) Name() string {
	return t.name
}

// Schema implements the Node interface.
func (t *ResolvedTable) Schema() sql.Schema {
	return t.schema
}

// Resolved implements the Resolvable interface.
func (t *ResolvedTable) Resolved() bool {
	return true
}

// Children implements the Node interface.
func (*ResolvedTable) Children() []sql.Node {
	return nil
}

// WithChildren implements the Node interface.
func (t *ResolvedTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	return NillaryWithChildren(t, children...)
}

func (t *ResolvedTable) String() string {
	return fmt.Sprintf("Table(%s)", t.name)
}
