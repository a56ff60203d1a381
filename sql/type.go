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

// TypeTag is the semantic tag of a Type. It is a closed set: every column
// and expression in a plan carries exactly one of these tags. Full type
// descriptors (precision, scale) live behind the Type interface; the tag is
// what analysis rules dispatch on.
type TypeTag uint16

const (
	TagNull TypeTag = iota
	TagInt8
	TagUint8
	TagInt16
	TagUint16
	TagInt24
	TagUint24
	TagInt32
	TagUint32
	TagInt64
	TagUint64
	TagFloat32
	TagFloat64
	TagDecimal
	TagDate
	TagTimestamp
	TagDatetime
	TagVarChar
	TagVarBinary
	// TagUnion marks an expression whose concrete type is only known at
	// runtime. Plan-time type reconciliation skips union-tagged columns.
	TagUnion
)

var typeTagNames = map[TypeTag]string{
	TagNull:      "NULL",
	TagInt8:      "TINYINT",
	TagUint8:     "TINYINT UNSIGNED",
	TagInt16:     "SMALLINT",
	TagUint16:    "SMALLINT UNSIGNED",
	TagInt24:     "MEDIUMINT",
	TagUint24:    "MEDIUMINT UNSIGNED",
	TagInt32:     "INT",
	TagUint32:    "INT UNSIGNED",
	TagInt64:     "BIGINT",
	TagUint64:    "BIGINT UNSIGNED",
	TagFloat32:   "FLOAT",
	TagFloat64:   "DOUBLE",
	TagDecimal:   "DECIMAL",
	TagDate:      "DATE",
	TagTimestamp: "TIMESTAMP",
	TagDatetime:  "DATETIME",
	TagVarChar:   "VARCHAR",
	TagVarBinary: "VARBINARY",
	TagUnion:     "UNION",
}

func (t TypeTag) String() string {
	if s, ok := typeTagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TypeTag(%d)", uint16(t))
}

// IsNumber returns whether the tag is a numeric tag, decimal included.
func (t TypeTag) IsNumber() bool {
	switch t {
	case TagInt8, TagUint8, TagInt16, TagUint16, TagInt24, TagUint24,
		TagInt32, TagUint32, TagInt64, TagUint64,
		TagFloat32, TagFloat64, TagDecimal:
		return true
	default:
		return false
	}
}

// IsDecimal returns whether the tag is the decimal tag.
func (t TypeTag) IsDecimal() bool {
	return t == TagDecimal
}

// IsTemporal returns whether the tag is a date or timestamp tag.
func (t TypeTag) IsTemporal() bool {
	switch t {
	case TagDate, TagTimestamp, TagDatetime:
		return true
	default:
		return false
	}
}

// IsText returns whether the tag is a varchar or varbinary tag.
func (t TypeTag) IsText() bool {
	return t == TagVarChar || t == TagVarBinary
}

// Type represents a full column type descriptor.
type Type interface {
	fmt.Stringer

	// Tag returns the semantic tag of this type.
	Tag() TypeTag

	// Convert a value of a compatible type to the runtime representation
	// of this type.
	Convert(v interface{}) (interface{}, error)

	// Compare returns an integer comparing two values. Both values must
	// be of this type's runtime representation, or convertible to it.
	Compare(a interface{}, b interface{}) (int, error)

	// Equals returns whether the given type is identical to this one,
	// descriptor parameters included.
	Equals(other Type) bool

	// Promote returns the widest type of this type's family.
	Promote() Type

	// Zero returns the zero value for this type.
	Zero() interface{}
}

// DecimalType is a Type that additionally carries precision and scale.
type DecimalType interface {
	Type

	// Precision returns the total number of digits.
	Precision() uint8

	// Scale returns the number of fractional digits.
	Scale() uint8
}
