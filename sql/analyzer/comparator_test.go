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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/plan"
)

func TestSupportedJoinComparator(t *testing.T) {
	require := require.New(t)

	cmp, err := SupportedJoinComparator(plan.JoinCondition{Comparator: "EQUALS"})
	require.NoError(err)
	require.Equal(ComparatorEquals, cmp)

	// older serialized plans
	cmp, err = SupportedJoinComparator(plan.JoinCondition{Comparator: "=="})
	require.NoError(err)
	require.Equal(ComparatorEquals, cmp)

	// comparator names are case-insensitive
	cmp, err = SupportedJoinComparator(plan.JoinCondition{Comparator: "is_not_distinct_from"})
	require.NoError(err)
	require.Equal(ComparatorIsNotDistinctFrom, cmp)

	cmp, err = SupportedJoinComparator(plan.JoinCondition{Comparator: "foo"})
	require.Error(err)
	require.True(sql.ErrUnsupportedJoinComparator.Is(err))
	require.Contains(err.Error(), `"foo"`)
	require.Equal(ComparatorUnknown, cmp)
}
