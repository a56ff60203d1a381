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

// Implicit type-promotion rules. A type may be implicitly promoted to any
// type of higher precedence within the same promotion family; the least
// restrictive type of a set is the member of highest precedence. Promotion
// follows the precedence ladder, not value-range containment: each unsigned
// tag ranks above its signed sibling and floats rank above decimal, so a
// promoted value can still be rejected or rounded at conversion time.

import (
	"github.com/tidesql/tide/sql"
)

// typePrecedence orders tags from most to least restrictive. A gap in rank
// between families is irrelevant; only relative order within a comparison
// matters. NULL ranks below everything so it promotes to any other type, and
// UNION ranks above everything since its concrete type is unknown until
// runtime.
var typePrecedence = map[sql.TypeTag]int{
	sql.TagNull:      0,
	sql.TagInt8:      10,
	sql.TagUint8:     11,
	sql.TagInt16:     12,
	sql.TagUint16:    13,
	sql.TagInt24:     14,
	sql.TagUint24:    15,
	sql.TagInt32:     16,
	sql.TagUint32:    17,
	sql.TagInt64:     18,
	sql.TagUint64:    19,
	sql.TagDecimal:   22,
	sql.TagFloat32:   24,
	sql.TagFloat64:   26,
	sql.TagDate:      40,
	sql.TagDatetime:  42,
	sql.TagTimestamp: 44,
	sql.TagVarChar:   60,
	sql.TagVarBinary: 62,
	sql.TagUnion:     100,
}

// promotionFamily buckets tags whose members can be promoted to each other.
func promotionFamily(tag sql.TypeTag) int {
	switch {
	case tag == sql.TagNull, tag == sql.TagUnion:
		return 0
	case tag.IsNumber():
		return 1
	case tag.IsTemporal():
		return 2
	case tag.IsText():
		return 3
	default:
		return -1
	}
}

// CanPromote returns whether a value of type `from` can be implicitly
// promoted to type `to`.
func CanPromote(from, to sql.TypeTag) bool {
	if from == to || from == sql.TagNull || to == sql.TagUnion {
		return true
	}
	f, t := promotionFamily(from), promotionFamily(to)
	if f < 0 || t < 0 || f != t {
		return false
	}
	return typePrecedence[to] >= typePrecedence[from]
}

// LeastRestrictiveType returns the least restrictive type of the given set:
// the member type every other member can be implicitly promoted to, widened
// where the members carry descriptor parameters (decimal precision and
// scale). It returns nil if no such type exists.
func LeastRestrictiveType(types []sql.Type) sql.Type {
	if len(types) == 0 {
		return nil
	}

	result := types[0]
	for _, t := range types[1:] {
		if t.Tag().IsDecimal() && result.Tag().IsDecimal() {
			result = leastRestrictiveDecimal(result.(sql.DecimalType), t.(sql.DecimalType))
			continue
		}
		switch {
		case CanPromote(result.Tag(), t.Tag()):
			result = t
		case CanPromote(t.Tag(), result.Tag()):
			// result stays
		default:
			return nil
		}
	}
	return result
}

// leastRestrictiveDecimal widens two decimal descriptors: enough integral
// digits for either side and the larger scale, capped at the maximum
// precision.
func leastRestrictiveDecimal(a, b sql.DecimalType) sql.DecimalType {
	integral := a.Precision() - a.Scale()
	if bi := b.Precision() - b.Scale(); bi > integral {
		integral = bi
	}
	scale := a.Scale()
	if b.Scale() > scale {
		scale = b.Scale()
	}
	precision := integral + scale
	if precision > DecimalTypeMaxPrecision {
		precision = DecimalTypeMaxPrecision
	}
	return MustCreateDecimalType(precision, scale)
}
