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
	"time"

	"github.com/spf13/cast"

	"github.com/tidesql/tide/sql"
)

var (
	// Boolean is a synonym for TINYINT.
	Boolean = Int8
	// Int8 is an integer of 8 bits.
	Int8 = MustCreateNumberType(sql.TagInt8)
	// Uint8 is an unsigned integer of 8 bits.
	Uint8 = MustCreateNumberType(sql.TagUint8)
	// Int16 is an integer of 16 bits.
	Int16 = MustCreateNumberType(sql.TagInt16)
	// Uint16 is an unsigned integer of 16 bits.
	Uint16 = MustCreateNumberType(sql.TagUint16)
	// Int24 is an integer of 24 bits.
	Int24 = MustCreateNumberType(sql.TagInt24)
	// Uint24 is an unsigned integer of 24 bits.
	Uint24 = MustCreateNumberType(sql.TagUint24)
	// Int32 is an integer of 32 bits.
	Int32 = MustCreateNumberType(sql.TagInt32)
	// Uint32 is an unsigned integer of 32 bits.
	Uint32 = MustCreateNumberType(sql.TagUint32)
	// Int64 is an integer of 64 bits.
	Int64 = MustCreateNumberType(sql.TagInt64)
	// Uint64 is an unsigned integer of 64 bits.
	Uint64 = MustCreateNumberType(sql.TagUint64)
	// Float32 is a floating point number of 32 bits.
	Float32 = MustCreateNumberType(sql.TagFloat32)
	// Float64 is a floating point number of 64 bits.
	Float64 = MustCreateNumberType(sql.TagFloat64)
)

type numberTypeImpl struct {
	tag sql.TypeTag
}

var _ sql.Type = numberTypeImpl{}

// CreateNumberType creates a number type for the given tag.
func CreateNumberType(tag sql.TypeTag) (sql.Type, error) {
	switch tag {
	case sql.TagInt8, sql.TagUint8, sql.TagInt16, sql.TagUint16,
		sql.TagInt24, sql.TagUint24, sql.TagInt32, sql.TagUint32,
		sql.TagInt64, sql.TagUint64, sql.TagFloat32, sql.TagFloat64:
		return numberTypeImpl{tag: tag}, nil
	}
	return nil, sql.ErrInvalidType.New(tag)
}

// MustCreateNumberType is the same as CreateNumberType except it panics on
// errors.
func MustCreateNumberType(tag sql.TypeTag) sql.Type {
	nt, err := CreateNumberType(tag)
	if err != nil {
		panic(err)
	}
	return nt
}

// Tag implements the Type interface.
func (t numberTypeImpl) Tag() sql.TypeTag {
	return t.tag
}

// Convert implements the Type interface.
func (t numberTypeImpl) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if ti, ok := v.(time.Time); ok {
		v = float64(ti.Unix()) + (float64(ti.Nanosecond()) / float64(time.Second/time.Nanosecond))
	}

	switch t.tag {
	case sql.TagInt8:
		return cast.ToInt8E(v)
	case sql.TagUint8:
		return cast.ToUint8E(v)
	case sql.TagInt16:
		return cast.ToInt16E(v)
	case sql.TagUint16:
		return cast.ToUint16E(v)
	case sql.TagInt24:
		return cast.ToInt32E(v)
	case sql.TagUint24:
		return cast.ToUint32E(v)
	case sql.TagInt32:
		return cast.ToInt32E(v)
	case sql.TagUint32:
		return cast.ToUint32E(v)
	case sql.TagInt64:
		return cast.ToInt64E(v)
	case sql.TagUint64:
		return cast.ToUint64E(v)
	case sql.TagFloat32:
		return cast.ToFloat32E(v)
	case sql.TagFloat64:
		return cast.ToFloat64E(v)
	}
	return nil, sql.ErrInvalidType.New(t.tag)
}

// Compare implements the Type interface.
func (t numberTypeImpl) Compare(a interface{}, b interface{}) (int, error) {
	switch t.tag {
	case sql.TagUint8, sql.TagUint16, sql.TagUint24, sql.TagUint32, sql.TagUint64:
		ca, err := cast.ToUint64E(a)
		if err != nil {
			return 0, err
		}
		cb, err := cast.ToUint64E(b)
		if err != nil {
			return 0, err
		}
		return compareOrdered(ca, cb), nil
	case sql.TagFloat32, sql.TagFloat64:
		ca, err := cast.ToFloat64E(a)
		if err != nil {
			return 0, err
		}
		cb, err := cast.ToFloat64E(b)
		if err != nil {
			return 0, err
		}
		return compareOrdered(ca, cb), nil
	default:
		ca, err := cast.ToInt64E(a)
		if err != nil {
			return 0, err
		}
		cb, err := cast.ToInt64E(b)
		if err != nil {
			return 0, err
		}
		return compareOrdered(ca, cb), nil
	}
}

// Equals implements the Type interface.
func (t numberTypeImpl) Equals(other sql.Type) bool {
	ot, ok := other.(numberTypeImpl)
	return ok && t.tag == ot.tag
}

// Promote implements the Type interface. Integers promote to their widest
// signedness-preserving type, floats to Float64.
func (t numberTypeImpl) Promote() sql.Type {
	switch t.tag {
	case sql.TagInt8, sql.TagInt16, sql.TagInt24, sql.TagInt32, sql.TagInt64:
		return Int64
	case sql.TagUint8, sql.TagUint16, sql.TagUint24, sql.TagUint32, sql.TagUint64:
		return Uint64
	default:
		return Float64
	}
}

// Zero implements the Type interface.
func (t numberTypeImpl) Zero() interface{} {
	switch t.tag {
	case sql.TagInt8:
		return int8(0)
	case sql.TagUint8:
		return uint8(0)
	case sql.TagInt16:
		return int16(0)
	case sql.TagUint16:
		return uint16(0)
	case sql.TagInt24, sql.TagInt32:
		return int32(0)
	case sql.TagUint24, sql.TagUint32:
		return uint32(0)
	case sql.TagInt64:
		return int64(0)
	case sql.TagUint64:
		return uint64(0)
	case sql.TagFloat32:
		return float32(0)
	default:
		return float64(0)
	}
}

// String implements the Type interface.
func (t numberTypeImpl) String() string {
	return t.tag.String()
}

func compareOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
