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
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Option defines functional options for Recorder configuration.
type Option func(*Recorder)

// WithPrometheus selects the Prometheus provider. Metrics are exported on a
// private registry; expose them by mounting [Recorder.Handler].
//
//	rec := metrics.MustNew(metrics.WithPrometheus())
//	http.Handle("/metrics", rec.Handler())
func WithPrometheus() Option {
	return func(r *Recorder) {
		r.provider = PrometheusProvider
	}
}

// WithOTLP selects the OTLP HTTP provider. An empty endpoint defers to the
// exporter's environment configuration; an "http://" endpoint disables TLS.
func WithOTLP(endpoint string) Option {
	return func(r *Recorder) {
		r.provider = OTLPProvider
		r.otlpEndpoint = endpoint
	}
}

// WithStdout selects the stdout provider, useful in development and tests.
func WithStdout() Option {
	return func(r *Recorder) {
		r.provider = StdoutProvider
	}
}

// WithMeterProvider supplies a custom OpenTelemetry [metric.MeterProvider].
// Provider options are ignored and the recorder never shuts the provider
// down; its lifecycle belongs to the caller.
//
//	mp := sdkmetric.NewMeterProvider(...)
//	rec, err := metrics.New(metrics.WithMeterProvider(mp))
//	defer mp.Shutdown(context.Background())
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(r *Recorder) {
		r.meterProvider = provider
		r.customMeterProvider = true
	}
}

// WithGlobalMeterProvider registers the built-in meter provider globally
// via otel.SetMeterProvider. Off by default so multiple recorders can
// coexist in one process.
func WithGlobalMeterProvider() Option {
	return func(r *Recorder) {
		r.registerGlobal = true
	}
}

// WithServiceName sets the service.name attribute on every metric.
func WithServiceName(name string) Option {
	return func(r *Recorder) {
		r.serviceName = name
	}
}

// WithServiceVersion sets the service.version attribute on every metric.
func WithServiceVersion(version string) Option {
	return func(r *Recorder) {
		r.serviceVersion = version
	}
}

// WithExportInterval sets the export interval for the OTLP and stdout
// providers. Must be positive.
func WithExportInterval(interval time.Duration) Option {
	return func(r *Recorder) {
		if interval <= 0 {
			r.validationErrors = append(r.validationErrors,
				fmt.Errorf("export interval must be positive, got %v", interval))
			return
		}
		r.exportInterval = interval
	}
}

// WithDurationBuckets sets histogram bucket boundaries, in seconds, for the
// lookup duration histogram. Defaults to DefaultDurationBuckets.
func WithDurationBuckets(buckets ...float64) Option {
	return func(r *Recorder) {
		if len(buckets) == 0 {
			r.validationErrors = append(r.validationErrors,
				fmt.Errorf("duration buckets must not be empty"))
			return
		}
		r.durationBuckets = buckets
	}
}

// WithEventHandler sets a custom [EventHandler] for internal operational
// events.
func WithEventHandler(handler EventHandler) Option {
	return func(r *Recorder) {
		if handler == nil {
			r.validationErrors = append(r.validationErrors,
				fmt.Errorf("event handler must not be nil"))
			return
		}
		r.eventHandler = handler
	}
}

// WithLogger logs internal operational events to the provided slog.Logger.
// Convenience wrapper around [WithEventHandler] and [DefaultEventHandler].
func WithLogger(logger *slog.Logger) Option {
	return WithEventHandler(DefaultEventHandler(logger))
}
