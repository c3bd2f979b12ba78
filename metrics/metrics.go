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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/dtbaum/jersey/router"
)

// DefaultDurationBuckets are histogram boundaries for lookup duration in
// seconds. Lookups are regex probes, so the range sits well below typical
// HTTP latency buckets.
var DefaultDurationBuckets = []float64{
	0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01,
}

// unmatchedPattern labels lookups that matched no route. Raw paths are
// never used as attribute values, keeping cardinality bounded by the route
// table.
const unmatchedPattern = "_unmatched"

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g. a failed export).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event represents an internal operational event from the metrics package.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events. Implementations can
// log events, send them to monitoring systems, or act on event type.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the
// provided slog.Logger. A nil logger yields a no-op handler.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

// Provider represents the available metrics providers.
type Provider string

const (
	// PrometheusProvider uses the Prometheus exporter (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider uses the OTLP HTTP exporter.
	OTLPProvider Provider = "otlp"
	// StdoutProvider uses the stdout exporter (development/testing).
	StdoutProvider Provider = "stdout"
)

// Recorder records router lookup metrics through OpenTelemetry. It
// implements router.Observer; wire it with router.WithObserver.
//
// By default the recorder does NOT set the global OpenTelemetry meter
// provider, so multiple recorders can coexist in one process. Use
// WithGlobalMeterProvider for global registration.
//
// All methods are safe for concurrent use.
type Recorder struct {
	meter               metric.Meter
	meterProvider       metric.MeterProvider
	customMeterProvider bool
	registerGlobal      bool

	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler

	eventHandler EventHandler

	lookupCount    metric.Int64Counter
	lookupDuration metric.Float64Histogram
	routeCount     metric.Int64UpDownCounter

	provider        Provider
	otlpEndpoint    string
	exportInterval  time.Duration
	durationBuckets []float64

	serviceName        string
	serviceVersion     string
	serviceNameAttr    attribute.KeyValue
	serviceVersionAttr attribute.KeyValue

	validationErrors []error
}

// compile-time wiring check
var _ router.Observer = (*Recorder)(nil)

// New creates a Recorder configured by opts. Without a provider option it
// records through a Prometheus exporter on a private registry; serve
// Handler yourself to expose it.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		provider:        PrometheusProvider,
		exportInterval:  15 * time.Second,
		durationBuckets: DefaultDurationBuckets,
		eventHandler:    func(Event) {},
	}

	for _, opt := range opts {
		opt(r)
	}
	if len(r.validationErrors) > 0 {
		return nil, fmt.Errorf("metrics: invalid configuration: %w", errors.Join(r.validationErrors...))
	}

	r.serviceNameAttr = attribute.String("service.name", r.serviceName)
	r.serviceVersionAttr = attribute.String("service.version", r.serviceVersion)

	if err := r.initializeProvider(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is New but panics on error. Intended for static setup at startup.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// initializeInstruments creates the lookup instruments on the configured
// meter.
func (r *Recorder) initializeInstruments() error {
	var err error

	r.lookupCount, err = r.meter.Int64Counter(
		"router.lookups",
		metric.WithDescription("Total route lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return fmt.Errorf("metrics: create lookup counter: %w", err)
	}

	r.lookupDuration, err = r.meter.Float64Histogram(
		"router.lookup.duration",
		metric.WithDescription("Route lookup duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	)
	if err != nil {
		return fmt.Errorf("metrics: create lookup duration histogram: %w", err)
	}

	r.routeCount, err = r.meter.Int64UpDownCounter(
		"router.routes",
		metric.WithDescription("Registered routes"),
		metric.WithUnit("{route}"),
	)
	if err != nil {
		return fmt.Errorf("metrics: create route counter: %w", err)
	}

	return nil
}

// OnRegister implements router.Observer.
func (r *Recorder) OnRegister(pattern string) {
	r.routeCount.Add(context.Background(), 1, metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
	))
	r.emit(EventDebug, "route registered", "pattern", pattern)
}

// OnLookup implements router.Observer. The matched route's pattern is the
// cardinality-bounded label; misses are labeled with a sentinel.
func (r *Recorder) OnLookup(ctx context.Context, pattern string, matched bool, elapsed time.Duration) {
	if pattern == "" {
		pattern = unmatchedPattern
	}

	attrs := metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.String("route.pattern", pattern),
		attribute.Bool("route.matched", matched),
	)
	r.lookupCount.Add(ctx, 1, attrs)
	r.lookupDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint,
// or nil for non-Prometheus providers.
func (r *Recorder) Handler() http.Handler {
	return r.prometheusHandler
}

// MeterProvider returns the meter provider in use, custom or built-in.
func (r *Recorder) MeterProvider() metric.MeterProvider {
	return r.meterProvider
}

// ForceFlush flushes pending metrics on the built-in provider. A custom
// provider's lifecycle belongs to its owner, so it is left alone.
func (r *Recorder) ForceFlush(ctx context.Context) error {
	if r.customMeterProvider {
		return nil
	}
	if mp, ok := r.meterProvider.(*sdkmetric.MeterProvider); ok {
		return mp.ForceFlush(ctx)
	}
	return nil
}

// Shutdown stops the built-in provider, flushing remaining metrics. A
// custom provider is left alone.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.customMeterProvider {
		return nil
	}
	if mp, ok := r.meterProvider.(*sdkmetric.MeterProvider); ok {
		r.emit(EventInfo, "shutting down metrics provider", "provider", string(r.provider))
		return mp.Shutdown(ctx)
	}
	return nil
}

func (r *Recorder) emit(t EventType, msg string, args ...any) {
	r.eventHandler(Event{Type: t, Message: msg, Args: args})
}
