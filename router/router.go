// Copyright 2025 The Jersey-Go Authors
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

package router

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dtbaum/jersey/uritemplate"
)

// Route is a registered template with its associated value.
type Route struct {
	template *uritemplate.Template
	value    any
	index    int // registration order, breaks specificity ties
}

// Template returns the route's parsed template.
func (r *Route) Template() *uritemplate.Template { return r.template }

// Value returns the value the route was registered with.
func (r *Route) Value() any { return r.value }

// Pattern returns the route's template as registered.
func (r *Route) Pattern() string { return r.template.Raw() }

// Info describes a registered route for introspection.
type Info struct {
	// Pattern is the template as registered.
	Pattern string

	// Variables are the template's distinct variable names in order.
	Variables []string

	// Index is the registration order, starting at 0.
	Index int
}

// Router matches paths against registered URI templates in specificity
// order. The zero value is not usable; construct with New.
type Router struct {
	mu     sync.Mutex
	routes []*Route
	frozen atomic.Bool

	observer   Observer
	spanEvents bool
}

// New returns a Router configured by opts.
func New(opts ...Option) *Router {
	r := &Router{spanEvents: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle parses pattern and registers it with the given value. The value is
// returned by Lookup when the route matches; handlers, endpoint descriptors
// and plain identifiers are all fine. Registration order is preserved and
// breaks ties between equally specific templates.
//
// Handle fails with a *uritemplate.ParseError for a malformed pattern, with
// ErrNilRouteValue for a nil value, and with ErrRoutesFrozen once the route
// table is frozen.
func (r *Router) Handle(pattern string, value any) (*Route, error) {
	if value == nil {
		return nil, ErrNilRouteValue
	}

	tpl, err := uritemplate.Parse(pattern)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return nil, fmt.Errorf("register %q: %w", pattern, ErrRoutesFrozen)
	}

	route := &Route{template: tpl, value: value, index: len(r.routes)}
	r.routes = append(r.routes, route)

	if r.observer != nil {
		r.observer.OnRegister(pattern)
	}
	return route, nil
}

// MustHandle is Handle but panics on error. Intended for static route
// tables built at startup.
func (r *Router) MustHandle(pattern string, value any) *Route {
	route, err := r.Handle(pattern, value)
	if err != nil {
		panic(err)
	}
	return route
}

// Warmup freezes the route table and ranks it by template specificity.
// Further registration fails with ErrRoutesFrozen. Calling Warmup more than
// once is a no-op; the first Lookup warms up implicitly.
func (r *Router) Warmup() {
	if r.frozen.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return
	}

	slices.SortStableFunc(r.routes, func(a, b *Route) int {
		return uritemplate.Compare(a.template, b.template)
	})
	r.frozen.Store(true)
}

// Lookup probes the ranked route table and returns the first route whose
// template matches path, binding its variables into values. A nil values
// map is allowed when the caller does not need the bindings. No match
// returns (nil, false, nil); only an invalid argument is an error.
//
// The first Lookup freezes the route table.
func (r *Router) Lookup(ctx context.Context, path string, values map[string]string) (*Route, bool, error) {
	r.Warmup()

	scratch := values
	if scratch == nil {
		scratch = map[string]string{}
	}

	start := time.Now()
	for _, route := range r.routes {
		ok, err := route.template.Match(path, scratch)
		if err != nil {
			return nil, false, err
		}
		if ok {
			r.observe(ctx, route.Pattern(), true, time.Since(start))
			return route, true, nil
		}
	}

	r.observe(ctx, "", false, time.Since(start))
	return nil, false, nil
}

// Routes returns a snapshot of the registered routes in their current
// order: registration order before warmup, specificity order after.
func (r *Router) Routes() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]Info, len(r.routes))
	for i, route := range r.routes {
		infos[i] = Info{
			Pattern:   route.Pattern(),
			Variables: route.template.Variables(),
			Index:     route.index,
		}
	}
	return infos
}
