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

package types

import (
	"github.com/tidesql/tide/sql"
)

var (
	// Null is a type of NULL. Values of this type are always nil.
	Null sql.Type = specialTypeImpl{tag: sql.TagNull}
	// Union is a dynamically typed column. Its concrete type is resolved
	// row by row at execution time, so plan-time analysis treats it as
	// compatible with everything and reconciles nothing.
	Union sql.Type = specialTypeImpl{tag: sql.TagUnion}
)

type specialTypeImpl struct {
	tag sql.TypeTag
}

var _ sql.Type = specialTypeImpl{}

// Tag implements the Type interface.
func (t specialTypeImpl) Tag() sql.TypeTag {
	return t.tag
}

// Convert implements the Type interface.
func (t specialTypeImpl) Convert(v interface{}) (interface{}, error) {
	if t.tag == sql.TagUnion {
		return v, nil
	}
	if v != nil {
		return nil, sql.ErrInvalidType.New(t.tag)
	}
	return nil, nil
}

// Compare implements the Type interface. Two NULLs always compare equal.
func (t specialTypeImpl) Compare(a interface{}, b interface{}) (int, error) {
	return 0, nil
}

// Equals implements the Type interface.
func (t specialTypeImpl) Equals(other sql.Type) bool {
	ot, ok := other.(specialTypeImpl)
	return ok && t.tag == ot.tag
}

// Promote implements the Type interface.
func (t specialTypeImpl) Promote() sql.Type {
	return t
}

// Zero implements the Type interface.
func (t specialTypeImpl) Zero() interface{} {
	return nil
}

// String implements the Type interface.
func (t specialTypeImpl) String() string {
	return t.tag.String()
}
