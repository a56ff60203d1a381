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
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/tidesql/tide/sql"
)

const (
	// DecimalTypeMaxPrecision returns the maximum precision if the type is
	// decimal.
	DecimalTypeMaxPrecision = 65
	// DecimalTypeMaxScale returns the maximum scale if the type is decimal.
	DecimalTypeMaxScale = 30
)

// ErrConvertingToDecimal is returned when a value cannot be represented as a
// decimal of the target precision and scale.
var ErrConvertingToDecimal = errors.NewKind("value %v is not a valid Decimal")

type decimalTypeImpl struct {
	precision uint8
	scale     uint8
}

var _ sql.DecimalType = decimalTypeImpl{}

// CreateDecimalType creates a DecimalType with the given precision and scale.
func CreateDecimalType(precision uint8, scale uint8) (sql.DecimalType, error) {
	if scale > DecimalTypeMaxScale {
		return nil, fmt.Errorf("scale of %v is too large, max is %v", scale, DecimalTypeMaxScale)
	}
	if precision > DecimalTypeMaxPrecision {
		return nil, fmt.Errorf("precision of %v is too large, max is %v", precision, DecimalTypeMaxPrecision)
	}
	if scale > precision {
		return nil, fmt.Errorf("scale of %v is larger than the precision of %v", scale, precision)
	}
	if precision == 0 {
		precision = 10
	}
	return decimalTypeImpl{
		precision: precision,
		scale:     scale,
	}, nil
}

// MustCreateDecimalType is the same as CreateDecimalType except it panics on
// errors.
func MustCreateDecimalType(precision uint8, scale uint8) sql.DecimalType {
	dt, err := CreateDecimalType(precision, scale)
	if err != nil {
		panic(err)
	}
	return dt
}

// Tag implements the Type interface.
func (t decimalTypeImpl) Tag() sql.TypeTag {
	return sql.TagDecimal
}

// Convert implements the Type interface.
func (t decimalTypeImpl) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	var dec decimal.Decimal
	switch value := v.(type) {
	case decimal.Decimal:
		dec = value
	case decimal.NullDecimal:
		if !value.Valid {
			return nil, nil
		}
		dec = value.Decimal
	case int:
		dec = decimal.NewFromInt(int64(value))
	case int8:
		dec = decimal.NewFromInt(int64(value))
	case int16:
		dec = decimal.NewFromInt(int64(value))
	case int32:
		dec = decimal.NewFromInt(int64(value))
	case int64:
		dec = decimal.NewFromInt(value)
	case uint:
		dec = decimal.NewFromInt(int64(value))
	case uint8:
		dec = decimal.NewFromInt(int64(value))
	case uint16:
		dec = decimal.NewFromInt(int64(value))
	case uint32:
		dec = decimal.NewFromInt(int64(value))
	case uint64:
		dec = decimal.NewFromBigInt(new(big.Int).SetUint64(value), 0)
	case float32:
		dec = decimal.NewFromFloat32(value)
	case float64:
		dec = decimal.NewFromFloat(value)
	case string:
		var err error
		dec, err = decimal.NewFromString(value)
		if err != nil {
			return nil, ErrConvertingToDecimal.Wrap(err, v)
		}
	default:
		return nil, ErrConvertingToDecimal.New(v)
	}

	dec = dec.Round(int32(t.scale))
	if integralDigits(dec) > int(t.precision-t.scale) {
		return nil, ErrConvertingToDecimal.New(v)
	}
	return dec, nil
}

// Compare implements the Type interface.
func (t decimalTypeImpl) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}
	return ca.(decimal.Decimal).Cmp(cb.(decimal.Decimal)), nil
}

// Equals implements the Type interface.
func (t decimalTypeImpl) Equals(other sql.Type) bool {
	ot, ok := other.(decimalTypeImpl)
	return ok && t.precision == ot.precision && t.scale == ot.scale
}

// Promote implements the Type interface.
func (t decimalTypeImpl) Promote() sql.Type {
	return MustCreateDecimalType(DecimalTypeMaxPrecision, t.scale)
}

// Zero implements the Type interface.
func (t decimalTypeImpl) Zero() interface{} {
	return decimal.NewFromInt(0)
}

// String implements the Type interface.
func (t decimalTypeImpl) String() string {
	return fmt.Sprintf("DECIMAL(%d,%d)", t.precision, t.scale)
}

// integralDigits counts the digits before the decimal point. The count must
// stay an int: values can carry far more digits than any precision bound.
func integralDigits(dec decimal.Decimal) int {
	s := dec.Truncate(0).Abs().String()
	if s == "0" {
		return 0
	}
	return len(s)
}

// Precision implements the DecimalType interface.
func (t decimalTypeImpl) Precision() uint8 {
	return t.precision
}

// Scale implements the DecimalType interface.
func (t decimalTypeImpl) Scale() uint8 {
	return t.scale
}
