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
	"github.com/tidesql/tide/sql"
)

// Materialize binds an expression against the schema of its input: every
// field reference is re-typed from the column it points at, so a newly
// constructed expression (for example a cast inserted during join setup)
// picks up concrete input types. Problems are reported into the supplied
// collector; the first collected error is also returned so callers can
// fail fast.
func Materialize(e sql.Expression, schema sql.Schema, collector *sql.ErrorCollector) (sql.Expression, error) {
	bound := materialize(e, schema, collector)
	return bound, collector.ErrorOrNil()
}

func materialize(e sql.Expression, schema sql.Schema, collector *sql.ErrorCollector) sql.Expression {
	if gf, ok := e.(*GetField); ok {
		if gf.Index() < 0 || gf.Index() >= len(schema) {
			collector.Add(ErrIndexOutOfBounds.New(gf.Index(), len(schema)))
			return e
		}
		return gf.WithType(schema[gf.Index()].Type)
	}

	children := e.Children()
	if len(children) == 0 {
		return e
	}

	newChildren := make([]sql.Expression, len(children))
	for i, child := range children {
		newChildren[i] = materialize(child, schema, collector)
	}

	bound, err := e.WithChildren(newChildren...)
	if err != nil {
		collector.Add(err)
		return e
	}
	return bound
}
