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

// Option configures a Router at construction time.
type Option func(*Router)

// WithObserver sets an observer receiving registration and lookup
// callbacks. The router functions identically with or without one.
//
// Example with the metrics package:
//
//	rec, _ := metrics.New(metrics.WithPrometheus())
//	r := router.New(router.WithObserver(rec))
func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observer = o
	}
}

// WithSpanEvents controls whether lookups add a "route.lookup" event to a
// recording trace span found in the lookup context. Enabled by default;
// disabling it removes the per-lookup span check entirely.
func WithSpanEvents(enable bool) Option {
	return func(r *Router) {
		r.spanEvents = enable
	}
}
