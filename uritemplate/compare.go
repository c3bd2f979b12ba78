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

package uritemplate

import "slices"

// Compare orders templates by specificity for route precedence, most
// specific first. The keys, in order:
//
//  1. more literal (non-variable) characters
//  2. more template variables
//  3. more explicit regex declarations
//
// Templates equal on all three keys compare as 0; rank them with a stable
// sort so registration order decides, or routing becomes nondeterministic.
// A nil template sorts after everything; the Empty template sorts after
// every non-empty template but before nil.
func Compare(a, b *Template) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	aEmpty, bEmpty := a == Empty, b == Empty
	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return 1
	case bEmpty:
		return -1
	}

	// b compared against a: a template with more literal characters
	// sorts before one with fewer.
	if c := b.literalChars - a.literalChars; c != 0 {
		return c
	}
	if c := len(b.variables) - len(a.variables); c != 0 {
		return c
	}
	if c := b.explicitRegexes - a.explicitRegexes; c != 0 {
		return c
	}
	return 0
}

// SortByPrecedence sorts templates most-specific first. The sort is
// stable: templates of equal rank keep their relative (registration)
// order.
func SortByPrecedence(templates []*Template) {
	slices.SortStableFunc(templates, Compare)
}
