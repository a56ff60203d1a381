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

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/tidesql/tide/sql"
)

// ValidationRule is a named check applied to a plan tree before it is
// handed to physical-join setup.
type ValidationRule struct {
	// Name of the rule, for debugging.
	Name string
	// Apply the rule to the given node.
	Apply ValidationRuleFunc
}

// ValidationRuleFunc is a function that checks a node tree.
type ValidationRuleFunc func(*sql.Context, *Analyzer, sql.Node) error

// Analyzer applies validation rules to plan trees.
type Analyzer struct {
	// Whether to log various debugging messages.
	Debug bool
	// ValidationRules to apply, in order.
	ValidationRules []ValidationRule

	debugCtx []string
}

// NewDefault creates a default Analyzer instance with the default
// validation rules.
func NewDefault() *Analyzer {
	return &Analyzer{ValidationRules: DefaultValidationRules}
}

// Log prints an INFO message to the log with the given message and args if
// the analyzer is in debug mode.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a != nil && a.Debug {
		if len(a.debugCtx) > 0 {
			ctx := strings.Join(a.debugCtx, "/")
			logrus.Infof("%s: "+msg, append([]interface{}{ctx}, args...)...)
		} else {
			logrus.Infof(msg, args...)
		}
	}
}

// PushDebugContext pushes the given context string onto the context stack,
// to use when logging debug messages.
func (a *Analyzer) PushDebugContext(msg string) {
	if a != nil {
		a.debugCtx = append(a.debugCtx, msg)
	}
}

// PopDebugContext pops a context message off the context stack.
func (a *Analyzer) PopDebugContext() {
	if a != nil && len(a.debugCtx) > 0 {
		a.debugCtx = a.debugCtx[:len(a.debugCtx)-1]
	}
}

// Validate applies every validation rule to the node and returns the first
// failure, if any.
func (a *Analyzer) Validate(ctx *sql.Context, n sql.Node) error {
	span, ctx := ctx.Span("validate", opentracing.Tags{
		"plan": n.String(),
	})
	defer span.Finish()

	a.Log("starting validation of node of type: %T", n)
	for _, rule := range a.ValidationRules {
		a.PushDebugContext(rule.Name)
		err := rule.Apply(ctx, a, n)
		a.PopDebugContext()
		if err != nil {
			return err
		}
	}
	return nil
}
