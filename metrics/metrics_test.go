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

package metrics

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/dtbaum/jersey/router"
)

// newManualRecorder returns a recorder on a manual reader so tests can
// collect deterministically.
func newManualRecorder(t *testing.T, opts ...Option) (*Recorder, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	rec, err := New(append(opts, WithMeterProvider(mp))...)
	require.NoError(t, err)
	return rec, reader
}

// collect gathers all exported metrics into a name-indexed map.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

// TestRecorder_LookupInstruments verifies counter and histogram recording
// with the pattern and matched attributes.
func TestRecorder_LookupInstruments(t *testing.T) {
	rec, reader := newManualRecorder(t)

	ctx := context.Background()
	rec.OnLookup(ctx, "/users/{id}", true, 3*time.Microsecond)
	rec.OnLookup(ctx, "/users/{id}", true, 5*time.Microsecond)
	rec.OnLookup(ctx, "", false, time.Microsecond)

	metrics := collect(t, reader)

	lookups, ok := metrics["router.lookups"]
	require.True(t, ok, "lookup counter exported")
	sum, ok := lookups.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	var matched, unmatched int64
	for _, dp := range sum.DataPoints {
		pattern, _ := dp.Attributes.Value("route.pattern")
		switch pattern.AsString() {
		case "/users/{id}":
			matched = dp.Value
		case "_unmatched":
			unmatched = dp.Value
		}
	}
	assert.Equal(t, int64(2), matched)
	assert.Equal(t, int64(1), unmatched)

	duration, ok := metrics["router.lookup.duration"]
	require.True(t, ok, "duration histogram exported")
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var samples uint64
	for _, dp := range hist.DataPoints {
		samples += dp.Count
	}
	assert.Equal(t, uint64(3), samples)
}

// TestRecorder_RouteCounter verifies registration increments the up-down
// counter.
func TestRecorder_RouteCounter(t *testing.T) {
	rec, reader := newManualRecorder(t)

	rec.OnRegister("/users/{id}")
	rec.OnRegister("/users/admin")

	metrics := collect(t, reader)
	routes, ok := metrics["router.routes"]
	require.True(t, ok)
	sum, ok := routes.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

// TestRecorder_ObservesRouter wires the recorder into a router end to end.
func TestRecorder_ObservesRouter(t *testing.T) {
	rec, reader := newManualRecorder(t)

	r := router.New(router.WithObserver(rec))
	r.MustHandle("/users/{id}", "users")

	_, ok, err := r.Lookup(context.Background(), "/users/42", nil)
	require.NoError(t, err)
	require.True(t, ok)

	metrics := collect(t, reader)
	assert.Contains(t, metrics, "router.lookups")
	assert.Contains(t, metrics, "router.routes")
}

// TestRecorder_Prometheus verifies the default provider exposes a scrape
// endpoint on a private registry.
func TestRecorder_Prometheus(t *testing.T) {
	rec, err := New(WithPrometheus(), WithServiceName("test-svc"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Shutdown(context.Background()) })

	rec.OnLookup(context.Background(), "/users/{id}", true, time.Microsecond)

	handler := rec.Handler()
	require.NotNil(t, handler)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "router_lookups")
}

// TestRecorder_CustomProviderLifecycle verifies Shutdown and ForceFlush
// leave a caller-owned provider alone.
func TestRecorder_CustomProviderLifecycle(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	rec, err := New(WithMeterProvider(mp))
	require.NoError(t, err)

	require.NoError(t, rec.Shutdown(context.Background()))
	require.NoError(t, rec.ForceFlush(context.Background()))

	// The provider still works after the recorder "shut down".
	rec.OnRegister("/a")
	var rm metricdata.ResourceMetrics
	assert.NoError(t, reader.Collect(context.Background(), &rm))
	require.NoError(t, mp.Shutdown(context.Background()))
}

// TestNew_Validation covers option validation failures.
func TestNew_Validation(t *testing.T) {
	_, err := New(WithExportInterval(-time.Second))
	assert.Error(t, err)

	_, err = New(WithDurationBuckets())
	assert.Error(t, err)

	_, err = New(WithEventHandler(nil))
	assert.Error(t, err)

	_, err = New(WithMeterProvider(nil))
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew(WithExportInterval(0)) })
}

// TestDefaultEventHandler verifies slog routing per event type and the
// nil-logger no-op.
func TestDefaultEventHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := DefaultEventHandler(logger)
	handler(Event{Type: EventInfo, Message: "provider ready", Args: []any{"provider", "stdout"}})
	handler(Event{Type: EventError, Message: "export failed"})

	out := buf.String()
	assert.Contains(t, out, "provider ready")
	assert.Contains(t, out, "provider=stdout")
	assert.Contains(t, out, "export failed")
	assert.Contains(t, out, "level=ERROR")

	assert.NotPanics(t, func() {
		DefaultEventHandler(nil)(Event{Type: EventInfo, Message: "dropped"})
	})
}

// TestRecorder_EventHandlerReceivesLifecycle verifies operational events
// flow through a custom handler.
func TestRecorder_EventHandlerReceivesLifecycle(t *testing.T) {
	var events []Event
	rec, err := New(
		WithPrometheus(),
		WithEventHandler(func(e Event) { events = append(events, e) }),
	)
	require.NoError(t, err)

	rec.OnRegister("/users/{id}")
	require.NoError(t, rec.Shutdown(context.Background()))

	var messages []string
	for _, e := range events {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "route registered")
	assert.Contains(t, messages, "shutting down metrics provider")
}
