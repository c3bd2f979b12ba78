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
	"fmt"
	"strings"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// meterName scopes the instruments created by this package.
const meterName = "github.com/dtbaum/jersey/metrics"

// initializeProvider initializes the configured provider and the lookup
// instruments.
func (r *Recorder) initializeProvider() error {
	// A user-provided meter provider overrides the built-in ones; its
	// lifecycle stays with the caller.
	if r.customMeterProvider {
		if r.meterProvider == nil {
			return fmt.Errorf("metrics: custom meter provider is nil")
		}
		r.emit(EventDebug, "using custom meter provider")
		r.meter = r.meterProvider.Meter(meterName)
		return r.initializeInstruments()
	}

	switch r.provider {
	case PrometheusProvider:
		return r.initPrometheusProvider()
	case OTLPProvider:
		return r.initOTLPProvider()
	case StdoutProvider:
		return r.initStdoutProvider()
	default:
		return fmt.Errorf("metrics: unsupported provider: %s", r.provider)
	}
}

// initPrometheusProvider builds a Prometheus exporter on a private registry
// so recorders never collide with the global one.
func (r *Recorder) initPrometheusProvider() error {
	r.prometheusRegistry = promclient.NewRegistry()

	exporter, err := prometheus.New(
		prometheus.WithRegisterer(r.prometheusRegistry),
	)
	if err != nil {
		return fmt.Errorf("metrics: create Prometheus exporter: %w", err)
	}

	r.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	r.prometheusHandler = promhttp.HandlerFor(
		r.prometheusRegistry,
		promhttp.HandlerOpts{},
	)

	r.finishProviderSetup("prometheus")
	return r.initializeInstruments()
}

// initOTLPProvider builds an OTLP HTTP exporter with a periodic reader.
func (r *Recorder) initOTLPProvider() error {
	var opts []otlpmetrichttp.Option

	if r.otlpEndpoint != "" {
		endpoint := r.otlpEndpoint
		insecure := false
		if strings.HasPrefix(endpoint, "http://") {
			endpoint = strings.TrimPrefix(endpoint, "http://")
			insecure = true
		} else {
			endpoint = strings.TrimPrefix(endpoint, "https://")
		}
		if idx := strings.Index(endpoint, "/"); idx != -1 {
			endpoint = endpoint[:idx]
		}

		opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("metrics: create OTLP exporter: %w", err)
	}

	r.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(r.exportInterval),
		)),
	)

	r.finishProviderSetup("otlp")
	return r.initializeInstruments()
}

// initStdoutProvider builds a stdout exporter with a periodic reader.
func (r *Recorder) initStdoutProvider() error {
	exporter, err := stdoutmetric.New()
	if err != nil {
		return fmt.Errorf("metrics: create stdout exporter: %w", err)
	}

	r.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(r.exportInterval),
		)),
	)

	r.finishProviderSetup("stdout")
	return r.initializeInstruments()
}

func (r *Recorder) finishProviderSetup(name string) {
	if r.registerGlobal {
		r.emit(EventDebug, "setting global meter provider", "provider", name)
		otel.SetMeterProvider(r.meterProvider)
	}
	r.meter = r.meterProvider.Meter(meterName)
}
