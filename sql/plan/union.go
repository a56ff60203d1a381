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

// Union is a node that returns everything in Left and then everything in
// Right.
type Union struct {
	BinaryNode
}

var _ sql.Node = (*Union)(nil)

// NewUnion creates a new Union node with the given children.
func NewUnion(left, right sql.Node) *Union {
	return &Union{BinaryNode{left: left, right: right}}
}

// Schema implements the Node interface.
func (u *Union) Schema() sql.Schema {
	return u.left.Schema()
}

// WithChildren implements the Node interface.
func (u *Union) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(u, len(children), 2)
	}
	return NewUnion(children[0], children[1]), nil
}

func (u *Union) String() string {
	return fmt.Sprintf("Union(%s, %s)", u.left, u.right)
}
