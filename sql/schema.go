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

// Column is the definition of a relation column.
type Column struct {
	// Name of the column.
	Name string
	// Type of the column.
	Type Type
	// Source is the name of the relation the column comes from.
	Source string
	// Nullable is true if the column can contain NULL values.
	Nullable bool
}

// Check ensures the value is correct for this column.
func (c *Column) Check(v interface{}) bool {
	if v == nil {
		return c.Nullable
	}
	_, err := c.Type.Convert(v)
	return err == nil
}

// Equals checks whether two columns have the same name, source and type.
func (c *Column) Equals(c2 *Column) bool {
	return c.Name == c2.Name &&
		c.Source == c2.Source &&
		c.Nullable == c2.Nullable &&
		c.Type.Equals(c2.Type)
}

// Schema is the definition of a relation's output, an ordered set of columns.
type Schema []*Column

// IndexOf returns the index of the given column in the schema, or -1 if it
// is not present.
func (s Schema) IndexOf(column, source string) int {
	for i, col := range s {
		if col.Name == column && col.Source == source {
			return i
		}
	}
	return -1
}

// Contains returns whether the schema contains a column with the given name.
func (s Schema) Contains(column, source string) bool {
	return s.IndexOf(column, source) >= 0
}

// Equals checks whether the given schema is equal to this one.
func (s Schema) Equals(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}
	for i := range s {
		if !s[i].Equals(s2[i]) {
			return false
		}
	}
	return true
}
