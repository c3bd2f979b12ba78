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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Observer receives route lifecycle callbacks. Implementations typically
// record metrics; see the metrics package for an OpenTelemetry-backed one.
//
// Pattern is the registered template text, bounded in cardinality by the
// route table. On an unmatched lookup pattern is empty; implementations
// should substitute their own sentinel label.
//
// All methods must be safe for concurrent use. Callbacks run inline on the
// lookup path, so implementations should be cheap and must not block.
type Observer interface {
	// OnRegister is called once per successful Handle.
	OnRegister(pattern string)

	// OnLookup is called after every Lookup with the matched route's
	// pattern (empty if none matched) and the probe duration.
	OnLookup(ctx context.Context, pattern string, matched bool, elapsed time.Duration)
}

// ObserverFunc adapts a function to the Observer interface, receiving only
// lookup callbacks.
type ObserverFunc func(ctx context.Context, pattern string, matched bool, elapsed time.Duration)

// OnRegister implements Observer as a no-op.
func (f ObserverFunc) OnRegister(string) {}

// OnLookup implements Observer.
func (f ObserverFunc) OnLookup(ctx context.Context, pattern string, matched bool, elapsed time.Duration) {
	f(ctx, pattern, matched, elapsed)
}

// observe fans a lookup result out to the configured observer and, when the
// context carries a recording span, to a span event.
func (r *Router) observe(ctx context.Context, pattern string, matched bool, elapsed time.Duration) {
	if r.observer != nil {
		r.observer.OnLookup(ctx, pattern, matched, elapsed)
	}

	if !r.spanEvents {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("route.lookup", trace.WithAttributes(
		attribute.String("route.pattern", pattern),
		attribute.Bool("route.matched", matched),
		attribute.Int64("route.lookup_ns", elapsed.Nanoseconds()),
	))
}
