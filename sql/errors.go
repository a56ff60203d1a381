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

package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidType is thrown when there is an unexpected type at some part
	// of the plan tree.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrColumnNotFound is returned when a column could not be found in any
	// relation in scope.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in any table in scope")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrUnsupportedJoinComparator is returned when a physical plan declares
	// a join comparator outside the supported set. Physical plans may be
	// submitted directly, bypassing plan validation, so the message surfaces
	// verbatim to the submitter.
	ErrUnsupportedJoinComparator = errors.NewKind("invalid comparator supplied to this join: %q")

	// ErrIncompatibleJoinTypes is returned when the two sides of a join key
	// have types that may not be implicitly coerced.
	ErrIncompatibleJoinTypes = errors.NewKind("join only supports implicit casts between " +
		"1. numeric data (none of the types is decimal or both of them are decimal), " +
		"2. varchar, varbinary data, 3. date, timestamp data; " +
		"left type: %s, right type: %s; add explicit casts to avoid this error")

	// ErrNoCommonJoinType is returned when an implicit cast between the two
	// sides of a join key is allowed in principle, but no type both sides can
	// be losslessly promoted to exists.
	ErrNoCommonJoinType = errors.NewKind("join conditions cannot be compared, failing left expression: %s, failing right expression: %s")
)

// ErrorCollector accumulates structured errors reported during expression
// binding. The binder reports into the collector instead of aborting on the
// first problem, so a single materialize pass can surface every failure.
type ErrorCollector struct {
	errs []error
}

// Add reports an error to the collector.
func (c *ErrorCollector) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Errorf reports a formatted error to the collector.
func (c *ErrorCollector) Errorf(format string, args ...interface{}) {
	c.Add(errors.NewKind(format).New(args...))
}

// HasErrors returns whether any error has been reported.
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errs) > 0
}

// ErrorOrNil returns the first reported error, or nil if none.
func (c *ErrorCollector) ErrorOrNil() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs[0]
}

// Errors returns every reported error, in report order.
func (c *ErrorCollector) Errors() []error {
	return c.errs
}
