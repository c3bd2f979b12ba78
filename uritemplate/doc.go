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

// Package uritemplate parses URI path templates, matches concrete paths
// against them with variable extraction, builds URIs back out of bound
// values, and orders competing templates by specificity for route
// precedence.
//
// # Templates
//
// A template is a path pattern with embedded variables:
//
//	/users/{id}
//	/users/{id}/orders/{orderId: [0-9]+}
//
// A variable matches one or more non-slash characters unless an explicit
// regex after the ':' constrains it. A leading '?' or ';' sigil inside the
// braces marks query- and matrix-style variables, which match zero or more
// characters and expand to "?name=value" / ";name=value" forms.
//
// # Matching
//
// Matching is anchored: the template must consume the entire path.
// A failed match is a normal false return, never an error.
//
//	t := uritemplate.MustParse("/users/{id}")
//	values := map[string]string{}
//	ok, _ := t.Match("/users/42", values) // ok, values["id"] == "42"
//
// # Reverse substitution
//
// CreateURI and its positional variants substitute bound values back into
// the template. Missing bindings resolve to the empty string; values are
// not validated against explicit regexes. BuildURI assembles a full URI
// from typed components with percent-encoding appropriate to each
// component, and Normalize and Resolve implement RFC 3986 dot-segment
// removal and reference resolution.
//
// # Precedence
//
// Compare is a total order over templates, most specific first: literal
// character count, then variable count, then explicit regex count. A
// router sorts its registered templates once with SortByPrecedence and
// probes them in order on each request.
//
// # Concurrency
//
// Templates are immutable after Parse and safe for unsynchronized
// concurrent use. Matching holds no shared state; independent templates
// may be parsed concurrently.
//
// Matching runs on Go's regexp package, which guarantees time linear in
// the input; still, cap template complexity and input length if templates
// are accepted from untrusted sources.
package uritemplate
