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

import "github.com/dtbaum/jersey/uriencode"

// Kind discriminates the two flavors of template parts.
type Kind uint8

const (
	// KindLiteral is a run of literal characters between variables.
	KindLiteral Kind = iota

	// KindVariable is a single {name} or {name:regex} occurrence.
	KindVariable
)

// Sigils that alter a variable's default matching and substitution
// behavior. A sigil is the first character inside the braces.
const (
	// SigilNone marks a plain path variable.
	SigilNone byte = 0

	// SigilQuery marks a query-style variable ({?name}): it matches zero
	// or more characters and expands to "?name=value" when non-empty.
	SigilQuery byte = '?'

	// SigilMatrix marks a matrix-style variable ({;name}): it matches zero
	// or more characters and expands to ";name=value" when non-empty.
	SigilMatrix byte = ';'
)

// Part is one element of a parsed template: either a literal fragment or a
// variable occurrence, in appearance order. Concatenating the Raw text of
// all parts reconstructs the template; concatenating with explicit regexes
// stripped reconstructs the normalized template.
//
// Part is a tagged variant; switch on Kind and handle both cases.
type Part struct {
	Kind     Kind
	Text     string // literal text, or the variable name
	Raw      string // source text as written, braces and regex included
	Pattern  string // regex source this occurrence matches (variables only)
	Sigil    byte   // SigilNone, SigilQuery or SigilMatrix
	Explicit bool   // an explicit regex was declared
	Group    int    // 1-based capture group index (variables only)
}

// IsVariable reports whether the part is a variable occurrence.
func (p Part) IsVariable() bool { return p.Kind == KindVariable }

// resolve produces the substitution text for a variable part. The value is
// percent-encoded for the URI component identified by t; uriencode.TypeUnknown
// passes the value through untouched. Query and matrix variables expand to
// their "?name=value" / ";name=value" forms and collapse to the empty string
// when the value is empty.
func (p Part) resolve(value string, t uriencode.Type, encode bool) string {
	switch p.Sigil {
	case SigilQuery:
		if value == "" {
			return ""
		}
		if t != uriencode.TypeUnknown {
			t = uriencode.TypeQueryParam
		}
		return "?" + p.Text + "=" + encodeValue(value, t, encode)
	case SigilMatrix:
		if value == "" {
			return ""
		}
		if t != uriencode.TypeUnknown {
			t = uriencode.TypeMatrix
		}
		return ";" + p.Text + "=" + encodeValue(value, t, encode)
	default:
		return encodeValue(value, t, encode)
	}
}

func encodeValue(value string, t uriencode.Type, encode bool) string {
	if t == uriencode.TypeUnknown {
		return value
	}
	if encode {
		return uriencode.Encode(value, t)
	}
	return uriencode.Contextual(value, t)
}
