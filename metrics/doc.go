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

// Package metrics records router lookup metrics through OpenTelemetry.
//
// A Recorder implements router.Observer and exports three instruments:
// a lookup counter and a lookup duration histogram labeled by matched
// route pattern, and an up-down counter of registered routes. Patterns,
// never raw paths, are used as labels, keeping cardinality bounded by the
// route table.
//
// Exporters: Prometheus on a private registry (default, serve
// [Recorder.Handler] to expose it), OTLP over HTTP, stdout, or any
// caller-supplied metric.MeterProvider.
//
//	rec := metrics.MustNew(
//	    metrics.WithPrometheus(),
//	    metrics.WithServiceName("catalog-api"),
//	)
//	defer rec.Shutdown(context.Background())
//
//	r := router.New(router.WithObserver(rec))
package metrics
