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

// Package router matches request paths against registered URI templates.
//
// Templates are ranked by specificity: more literal characters first, then
// more variables, then more explicit regexes. Templates of equal rank keep
// their registration order. Lookup probes the ranked list and returns the
// first route whose template matches, binding path variables into the
// caller's map.
//
// Registration is mutable until the first lookup (or an explicit Warmup
// call) freezes the route table; after that, lookups are lock-free and safe
// for unbounded concurrency.
//
//	r := router.New()
//	r.MustHandle("/users/{id}", usersHandler)
//	r.MustHandle("/users/admin", adminHandler)
//	r.Warmup()
//
//	params := map[string]string{}
//	route, ok, _ := r.Lookup(ctx, "/users/42", params)
//
// Lookups emit span events on any recording trace span in ctx, and an
// optional Observer receives registration and lookup callbacks for metrics.
package router
