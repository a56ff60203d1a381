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

package plan

import (
	"fmt"

	"github.com/tidesql/tide/sql"
)

// AlternativesGroup is an optimizer indirection node: a set of equivalent
// candidate plans that return the same result set. The plan search costs
// alternatives and records the cheapest one; analysis passes must resolve
// the group to its best alternative before treating it as any other node
// variant. A group is never itself a join or an aggregate.
type AlternativesGroup struct {
	alternatives []sql.Node
	best         sql.Node
	cost         float64
}

var _ sql.Node = (*AlternativesGroup)(nil)

// NewAlternativesGroup creates a group over the given candidate plans with
// no best alternative chosen yet.
func NewAlternativesGroup(alternatives ...sql.Node) *AlternativesGroup {
	return &AlternativesGroup{alternatives: alternatives}
}

// Alternatives returns every candidate plan in the group.
func (g *AlternativesGroup) Alternatives() []sql.Node {
	return g.alternatives
}

// Best returns the currently chosen alternative, or false when costing has
// not chosen one yet.
func (g *AlternativesGroup) Best() (sql.Node, bool) {
	if g.best == nil {
		return nil, false
	}
	return g.best, true
}

// UpdateBest records the given alternative as the group's best if its cost
// is lower than the current best's. Returns whether the best plan changed.
func (g *AlternativesGroup) UpdateBest(n sql.Node, cost float64) bool {
	if g.best == nil || cost < g.cost {
		g.best = n
		g.cost = cost
		return true
	}
	return false
}

// Cost returns the cost of the best alternative. Only meaningful once a
// best alternative has been recorded.
func (g *AlternativesGroup) Cost() float64 {
	return g.cost
}

// Schema implements the Node interface. Every alternative returns the same
// result set, so the first one's schema stands for the group's.
func (g *AlternativesGroup) Schema() sql.Schema {
	if g.best != nil {
		return g.best.Schema()
	}
	if len(g.alternatives) > 0 {
		return g.alternatives[0].Schema()
	}
	return nil
}

// Resolved implements the Resolvable interface.
func (g *AlternativesGroup) Resolved() bool {
	for _, alt := range g.alternatives {
		if !alt.Resolved() {
			return false
		}
	}
	return true
}

// Children implements the Node interface. The group exposes only its best
// alternative to generic tree walks; an undecided group is opaque.
func (g *AlternativesGroup) Children() []sql.Node {
	if g.best == nil {
		return nil
	}
	return []sql.Node{g.best}
}

// WithChildren implements the Node interface.
func (g *AlternativesGroup) WithChildren(children ...sql.Node) (sql.Node, error) {
	expected := len(g.Children())
	if len(children) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(g, len(children), expected)
	}
	if expected == 0 {
		return g, nil
	}
	ng := NewAlternativesGroup(g.alternatives...)
	ng.best = children[0]
	ng.cost = g.cost
	return ng, nil
}

func (g *AlternativesGroup) String() string {
	if g.best != nil {
		return fmt.Sprintf("Alternatives(%d)[best: %s]", len(g.alternatives), g.best)
	}
	return fmt.Sprintf("Alternatives(%d)", len(g.alternatives))
}
