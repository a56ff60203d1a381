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
	"gopkg.in/src-d/go-errors.v1"

	"github.com/tidesql/tide/sql"
	"github.com/tidesql/tide/sql/expression"
	"github.com/tidesql/tide/sql/types"
)

// ErrMismatchedKeyCount is returned when a join's key expression arrays are
// not index-aligned.
var ErrMismatchedKeyCount = errors.NewKind("join has %d left key expressions but %d right key expressions")

// Binder materializes an expression against the schema of one join input,
// reporting structured problems into the supplied collector. The expression
// type-checker that backs it is external to join analysis; analysis only
// relies on this contract.
type Binder interface {
	Materialize(e sql.Expression, schema sql.Schema, collector *sql.ErrorCollector) (sql.Expression, error)
}

// BinderFunc adapts a function to the Binder interface.
type BinderFunc func(e sql.Expression, schema sql.Schema, collector *sql.ErrorCollector) (sql.Expression, error)

// Materialize implements the Binder interface.
func (f BinderFunc) Materialize(e sql.Expression, schema sql.Schema, collector *sql.ErrorCollector) (sql.Expression, error) {
	return f(e, schema, collector)
}

// DefaultBinder binds expressions with the expression package's
// materializer.
var DefaultBinder Binder = BinderFunc(expression.Materialize)

// allowImplicitJoinCast returns whether an implicit cast is allowed between
// the two types of a join key pair. Implicit casts in join conditions are
// only allowed between numeric types (where none or both are decimal, so
// precision classes never cross silently), between date/timestamp types,
// and between varchar/varbinary types.
func allowImplicitJoinCast(t1, t2 sql.TypeTag) bool {
	if t1.IsNumber() && t2.IsNumber() &&
		((!t1.IsDecimal() && !t2.IsDecimal()) || (t1.IsDecimal() && t2.IsDecimal())) {
		return true
	}

	if t1.IsTemporal() && t2.IsTemporal() {
		return true
	}

	if t1.IsText() && t2.IsText() {
		return true
	}

	return false
}

// AddLeastRestrictiveCasts reconciles the types of a join's key expression
// arrays in place. For each key pair whose sides differ in type, the side
// whose type is not the least restrictive of the two is wrapped in a cast to
// the other side's full type descriptor and re-bound against its input
// schema through the binder. Union-typed keys are left alone:
// their concrete type is resolved at runtime.
//
// Failures are fatal to join setup: an implicit cast outside the allowed
// type pairs, a pair with no common promotion target, or any error from the
// binder aborts reconciliation with no partial rewrite beyond the keys
// already processed.
func AddLeastRestrictiveCasts(
	leftExprs []sql.Expression, leftSchema sql.Schema,
	rightExprs []sql.Expression, rightSchema sql.Schema,
	binder Binder,
) error {
	if len(leftExprs) != len(rightExprs) {
		return ErrMismatchedKeyCount.New(len(leftExprs), len(rightExprs))
	}

	for i := range rightExprs {
		leftType := leftExprs[i].Type()
		rightType := rightExprs[i].Type()

		if leftType.Tag() == sql.TagUnion || rightType.Tag() == sql.TagUnion {
			continue
		}
		if leftType.Equals(rightType) {
			continue
		}

		if !allowImplicitJoinCast(leftType.Tag(), rightType.Tag()) {
			return sql.ErrIncompatibleJoinTypes.New(leftType, rightType)
		}

		result := types.LeastRestrictiveType([]sql.Type{rightType, leftType})
		if result == nil {
			return sql.ErrNoCommonJoinType.New(leftType, rightType)
		}

		collector := &sql.ErrorCollector{}
		if result.Equals(rightType) {
			// The left side is the more restrictive one: cast it up to the
			// right side's type and re-bind against the left input schema.
			cast := expression.NewConvert(leftExprs[i], rightType)
			bound, err := binder.Materialize(cast, leftSchema, collector)
			if err != nil {
				return err
			}
			leftExprs[i] = bound
		} else {
			cast := expression.NewConvert(rightExprs[i], leftType)
			bound, err := binder.Materialize(cast, rightSchema, collector)
			if err != nil {
				return err
			}
			rightExprs[i] = bound
		}
	}

	return nil
}
