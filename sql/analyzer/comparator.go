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

package analyzer

import (
	"strings"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/plan"
)

// Comparator is a validated join key comparator.
type Comparator byte

const (
	ComparatorUnknown Comparator = iota
	// ComparatorEquals matches keys that compare equal; NULL matches
	// nothing.
	ComparatorEquals
	// ComparatorIsNotDistinctFrom matches keys that compare equal, with
	// NULL matching NULL.
	ComparatorIsNotDistinctFrom
)

func (c Comparator) String() string {
	switch c {
	case ComparatorEquals:
		return "EQUALS"
	case ComparatorIsNotDistinctFrom:
		return "IS_NOT_DISTINCT_FROM"
	default:
		return "UNKNOWN"
	}
}

// SupportedJoinComparator checks that the comparator declared by a join
// condition is supported. A similar check happens during plan validation,
// but it has to be repeated here because a physical plan may be submitted
// directly, bypassing validation entirely.
func SupportedJoinComparator(cond plan.JoinCondition) (Comparator, error) {
	switch strings.ToUpper(cond.Comparator) {
	case "EQUALS", "==": // older serialized plans still carry '=='
		return ComparatorEquals, nil
	case "IS_NOT_DISTINCT_FROM":
		return ComparatorIsNotDistinctFrom, nil
	}
	return ComparatorUnknown, sql.ErrUnsupportedJoinComparator.New(cond.Comparator)
}
