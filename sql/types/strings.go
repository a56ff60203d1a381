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
	"bytes"
	"strings"

	"github.com/spf13/cast"

	"github.com/tidesql/tide/sql"
)

var (
	// VarChar is a variable-length character string type.
	VarChar sql.Type = stringTypeImpl{tag: sql.TagVarChar}
	// Text is a synonym for VarChar.
	Text = VarChar
	// VarBinary is a variable-length byte string type.
	VarBinary sql.Type = stringTypeImpl{tag: sql.TagVarBinary}
	// Blob is a synonym for VarBinary.
	Blob = VarBinary
)

type stringTypeImpl struct {
	tag sql.TypeTag
}

var _ sql.Type = stringTypeImpl{}

// Tag implements the Type interface.
func (t stringTypeImpl) Tag() sql.TypeTag {
	return t.tag
}

// Convert implements the Type interface.
func (t stringTypeImpl) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if t.tag == sql.TagVarBinary {
		switch value := v.(type) {
		case []byte:
			return value, nil
		case string:
			return []byte(value), nil
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, sql.ErrInvalidType.Wrap(err, t.tag)
		}
		return []byte(s), nil
	}
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, sql.ErrInvalidType.Wrap(err, t.tag)
	}
	return s, nil
}

// Compare implements the Type interface.
func (t stringTypeImpl) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}
	if t.tag == sql.TagVarBinary {
		return bytes.Compare(ca.([]byte), cb.([]byte)), nil
	}
	return strings.Compare(ca.(string), cb.(string)), nil
}

// Equals implements the Type interface.
func (t stringTypeImpl) Equals(other sql.Type) bool {
	ot, ok := other.(stringTypeImpl)
	return ok && t.tag == ot.tag
}

// Promote implements the Type interface.
func (t stringTypeImpl) Promote() sql.Type {
	return t
}

// Zero implements the Type interface.
func (t stringTypeImpl) Zero() interface{} {
	if t.tag == sql.TagVarBinary {
		return []byte{}
	}
	return ""
}

// String implements the Type interface.
func (t stringTypeImpl) String() string {
	return t.tag.String()
}
