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

// Package uriencode percent-encodes strings according to the URI component
// they are destined for, following the character classes of RFC 3986.
//
// Each URI component (scheme, user info, host, path, path segment, query,
// fragment, ...) permits a different set of unencoded characters. The
// uritemplate package delegates to this package whenever a substituted
// template value must be encoded for the component the template sits in.
//
// Two encoding modes are provided:
//
//   - Encode: every character outside the component's allowed set is
//     percent-encoded, including '%' itself.
//   - Contextual: like Encode, but existing percent-encoded triplets
//     (e.g. "%20") are preserved rather than double-encoded.
//
// The zero Type is TypeUnknown; values encoded with TypeUnknown pass
// through unchanged, which lets callers defer the encoding decision.
package uriencode
