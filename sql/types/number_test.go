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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidesql/tide/sql"
)

func TestNumberConvert(t *testing.T) {
	require := require.New(t)

	v, err := Int64.Convert(int32(7))
	require.NoError(err)
	require.Equal(int64(7), v)

	v, err = Int32.Convert("42")
	require.NoError(err)
	require.Equal(int32(42), v)

	v, err = Float64.Convert(int64(3))
	require.NoError(err)
	require.Equal(float64(3), v)

	v, err = Int64.Convert(nil)
	require.NoError(err)
	require.Nil(v)

	_, err = Int64.Convert("not a number")
	require.Error(err)
}

func TestNumberCompare(t *testing.T) {
	require := require.New(t)

	cmp, err := Int64.Compare(int64(1), int64(2))
	require.NoError(err)
	require.Equal(-1, cmp)

	cmp, err = Uint64.Compare(uint64(10), uint64(10))
	require.NoError(err)
	require.Equal(0, cmp)

	cmp, err = Float64.Compare(2.5, 1.5)
	require.NoError(err)
	require.Equal(1, cmp)

	// mixed widths compare through the receiver's class
	cmp, err = Int64.Compare(int32(3), int64(3))
	require.NoError(err)
	require.Equal(0, cmp)
}

func TestNumberPromote(t *testing.T) {
	require := require.New(t)

	require.Equal(Int64, Int8.Promote())
	require.Equal(Int64, Int32.Promote())
	require.Equal(Uint64, Uint16.Promote())
	require.Equal(Float64, Float32.Promote())
}

func TestCreateNumberTypeInvalidTag(t *testing.T) {
	require := require.New(t)

	_, err := CreateNumberType(sql.TagVarChar)
	require.Error(err)
	require.True(sql.ErrInvalidType.Is(err))
}
