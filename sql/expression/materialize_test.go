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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/types"
)

var materializeSchema = sql.Schema{
	{Name: "id", Source: "t", Type: types.Int64},
	{Name: "name", Source: "t", Type: types.VarChar},
}

func TestMaterializeRetypesFieldReferences(t *testing.T) {
	require := require.New(t)

	// the field reference starts out with a placeholder type
	e := NewConvert(NewGetField(0, types.Int32, "id", false), types.Int64)

	collector := &sql.ErrorCollector{}
	bound, err := Materialize(e, materializeSchema, collector)
	require.NoError(err)
	require.False(collector.HasErrors())

	cast, ok := bound.(*Convert)
	require.True(ok)
	gf, ok := cast.Child.(*GetField)
	require.True(ok)
	require.True(gf.Type().Equals(types.Int64))
}

func TestMaterializeOutOfBoundsField(t *testing.T) {
	require := require.New(t)

	e := NewGetField(5, types.Int64, "missing", false)

	collector := &sql.ErrorCollector{}
	_, err := Materialize(e, materializeSchema, collector)
	require.Error(err)
	require.True(ErrIndexOutOfBounds.Is(err))
	require.True(collector.HasErrors())
}

func TestMaterializeLeavesLiteralsAlone(t *testing.T) {
	require := require.New(t)

	e := NewLiteral(int64(42), types.Int64)

	collector := &sql.ErrorCollector{}
	bound, err := Materialize(e, materializeSchema, collector)
	require.NoError(err)
	require.Equal(e, bound)
}
