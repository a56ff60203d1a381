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
	// Date is a date with day granularity.
	Date sql.Type = datetimeTypeImpl{tag: sql.TagDate}
	// Timestamp is a timestamp with second granularity.
	Timestamp sql.Type = datetimeTypeImpl{tag: sql.TagTimestamp}
	// Datetime is a date and time without timezone conversion.
	Datetime sql.Type = datetimeTypeImpl{tag: sql.TagDatetime}
)

// DateLayout is the layout of the MySQL date format in the representation
// Go understands.
const DateLayout = "2006-01-02"

// TimestampLayout is the formula to describe the layout of the timestamp
// format in the representation Go understands.
const TimestampLayout = "2006-01-02 15:04:05"

type datetimeTypeImpl struct {
	tag sql.TypeTag
}

var _ sql.Type = datetimeTypeImpl{}

// Tag implements the Type interface.
func (t datetimeTypeImpl) Tag() sql.TypeTag {
	return t.tag
}

// Convert implements the Type interface.
func (t datetimeTypeImpl) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	var ti time.Time
	switch value := v.(type) {
	case time.Time:
		ti = value
	case string:
		var err error
		ti, err = time.Parse(TimestampLayout, value)
		if err != nil {
			ti, err = time.Parse(DateLayout, value)
			if err != nil {
				return nil, sql.ErrInvalidType.Wrap(err, t.tag)
			}
		}
	default:
		converted, err := cast.ToTimeE(v)
		if err != nil {
			return nil, sql.ErrInvalidType.Wrap(err, t.tag)
		}
		ti = converted
	}

	ti = ti.UTC()
	if t.tag == sql.TagDate {
		ti = ti.Truncate(24 * time.Hour)
	}
	return ti, nil
}

// Compare implements the Type interface.
func (t datetimeTypeImpl) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}

	ta, tb := ca.(time.Time), cb.(time.Time)
	switch {
	case ta.Before(tb):
		return -1, nil
	case ta.After(tb):
		return 1, nil
	default:
		return 0, nil
	}
}

// Equals implements the Type interface.
func (t datetimeTypeImpl) Equals(other sql.Type) bool {
	ot, ok := other.(datetimeTypeImpl)
	return ok && t.tag == ot.tag
}

// Promote implements the Type interface.
func (t datetimeTypeImpl) Promote() sql.Type {
	return Timestamp
}

// Zero implements the Type interface.
func (t datetimeTypeImpl) Zero() interface{} {
	return time.Time{}
}

// String implements the Type interface.
func (t datetimeTypeImpl) String() string {
	return t.tag.String()
}
