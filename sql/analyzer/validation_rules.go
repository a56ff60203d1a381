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
)

const (
	validateResolvedRule    = "validate_resolved"
	validateNoCartesianRule = "validate_no_cartesian_join"
)

var (
	// ErrValidationResolved is returned when the plan can not be resolved.
	ErrValidationResolved = errors.NewKind("plan is not resolved because of node '%T'")

	// ErrCartesianJoinNotSupported is returned when a plan contains a join
	// that can only execute as a cross product.
	ErrCartesianJoinNotSupported = errors.NewKind("this query cannot be planned: it contains a cartesian join or an inequality join that requires a cross product")
)

// DefaultValidationRules to apply while validating nodes.
var DefaultValidationRules = []ValidationRule{
	{validateResolvedRule, validateIsResolved},
	{validateNoCartesianRule, validateNoCartesianJoin},
}

func validateIsResolved(ctx *sql.Context, a *Analyzer, n sql.Node) error {
	if !n.Resolved() {
		return ErrValidationResolved.New(n)
	}
	return nil
}

func validateNoCartesianJoin(ctx *sql.Context, a *Analyzer, n sql.Node) error {
	var leftKeys, rightKeys []int
	var filterNulls []bool
	if ContainsCartesianJoin(n, &leftKeys, &rightKeys, &filterNulls) {
		return ErrCartesianJoinNotSupported.New()
	}
	return nil
}
