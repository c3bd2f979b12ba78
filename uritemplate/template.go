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

import (
	"slices"
	"strings"

	"github.com/dtbaum/jersey/uriencode"
)

// Template is a parsed URI template: a path pattern with embedded
// {variable} placeholders, each optionally constrained by an explicit
// regex ({id: [0-9]+}).
//
// A Template is immutable after construction and safe for unsynchronized
// concurrent use; a route table can share one instance across all
// request-serving goroutines.
type Template struct {
	template        string // template as given
	normalized      string // explicit regexes stripped
	pattern         *Pattern
	parts           []Part   // literal and variable fragments, in order
	variables       []string // distinct variable names, first-occurrence order
	explicitRegexes int
	literalChars    int
	endsWithSlash   bool
}

// Empty is the degenerate template produced by parsing "" or "/". It has
// no parts, no variables and no explicit regexes, matches only the empty
// and root paths, and sorts after every other template under Compare.
var Empty = &Template{pattern: emptyPattern}

// Parse parses a URI template. The empty and root ("/") templates yield
// the shared Empty singleton. A malformed template (unterminated brace,
// empty variable name, invalid explicit regex) returns a *ParseError and
// no Template.
func Parse(template string) (*Template, error) {
	if template == "" || template == "/" {
		return Empty, nil
	}
	res, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	pattern, err := newPattern(res.pattern, res.groupIndexes, res.groupCount)
	if err != nil {
		// The parser validates each explicit regex on its own, but the
		// assembled pattern can still fail, e.g. a stray quantifier in a
		// variable regex attaching to a generated group.
		return nil, &ParseError{Template: template, Msg: "invalid generated pattern", Err: err}
	}
	return &Template{
		template:        template,
		normalized:      res.normalized,
		pattern:         pattern,
		parts:           res.parts,
		variables:       res.names,
		explicitRegexes: res.explicitRegexes,
		literalChars:    res.literalChars,
		endsWithSlash:   res.endsWithSlash,
	}, nil
}

// MustParse is Parse that panics on error, for templates known at
// compile time.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Matches reports whether path matches the template in full.
func (t *Template) Matches(path string) bool {
	return t.pattern.MatchString(path)
}

// Match matches path against the template. On success values maps each
// variable name to its captured substring. The map is cleared on every
// call, matched or not, so stale bindings from a previous call never
// survive. A non-match is a normal false return, not an error; the only
// error is a nil values map.
func (t *Template) Match(path string, values map[string]string) (bool, error) {
	if values == nil {
		return false, ErrNilValues
	}
	return t.pattern.match(path, t.variables, values), nil
}

// MatchGroups matches path against the template, filling groups with every
// capture group value in textual order, one entry per capture group
// (groups nested in explicit regexes included). The slice is truncated on
// every call. The only error is a nil groups pointer.
func (t *Template) MatchGroups(path string, groups *[]string) (bool, error) {
	if groups == nil {
		return false, ErrNilGroups
	}
	return t.pattern.matchGroups(path, groups), nil
}

// CreateURI substitutes each variable with its value from the map.
// Variables without a binding resolve to the empty string; this is
// deliberately lenient, missing bindings are not an error. Values are not
// validated against explicit regexes and are not percent-encoded; use
// BuildURI for component-aware encoding.
func (t *Template) CreateURI(values map[string]string) string {
	var sb strings.Builder
	t.resolve(&sb, func(p Part) string {
		v, ok := values[p.Text]
		if !ok {
			return ""
		}
		return p.resolve(v, uriencode.TypeUnknown, false)
	})
	return sb.String()
}

// CreateURIValues substitutes variables with values in first-occurrence
// order. See CreateURIRange.
func (t *Template) CreateURIValues(values ...string) string {
	return t.CreateURIRange(values, 0, len(values))
}

// CreateURIRange substitutes variables with values[offset:offset+length]
// in first-occurrence order. A variable repeated in the template reuses
// the value bound to its first occurrence instead of consuming another
// slot. When the slice is exhausted, remaining variables resolve to the
// empty string, mirroring the leniency of the named form.
func (t *Template) CreateURIRange(values []string, offset, length int) string {
	end := min(offset+length, len(values))
	next := offset
	bound := make(map[string]string, len(t.variables))

	var sb strings.Builder
	for _, p := range t.parts {
		switch p.Kind {
		case KindLiteral:
			sb.WriteString(p.Text)
		case KindVariable:
			v, ok := bound[p.Text]
			if !ok && next < end {
				v = values[next]
				next++
				bound[p.Text] = v
			}
			sb.WriteString(p.resolve(v, uriencode.TypeUnknown, false))
		}
	}
	return sb.String()
}

// resolve walks the parts in order, copying literals and substituting
// variables via the supplied value function.
func (t *Template) resolve(sb *strings.Builder, value func(Part) string) {
	for _, p := range t.parts {
		switch p.Kind {
		case KindLiteral:
			sb.WriteString(p.Text)
		case KindVariable:
			sb.WriteString(value(p))
		}
	}
}

// Raw returns the template string as given.
func (t *Template) Raw() string { return t.template }

// Normalized returns the template with explicit regexes stripped, leaving
// only the {variable} placeholders.
func (t *Template) Normalized() string { return t.normalized }

// Pattern returns the compiled pattern.
func (t *Template) Pattern() *Pattern { return t.pattern }

// Parts returns a copy of the template's literal and variable fragments in
// appearance order.
func (t *Template) Parts() []Part { return slices.Clone(t.parts) }

// Variables returns a copy of the distinct variable names in
// first-occurrence order. A variable appearing twice has one slot.
func (t *Template) Variables() []string { return slices.Clone(t.variables) }

// HasVariable reports whether name is a variable of this template.
func (t *Template) HasVariable(name string) bool {
	return slices.Contains(t.variables, name)
}

// NumVariables returns the number of distinct template variables.
func (t *Template) NumVariables() int { return len(t.variables) }

// NumExplicitRegexes returns the number of explicit regex declarations.
func (t *Template) NumExplicitRegexes() int { return t.explicitRegexes }

// NumLiteralCharacters returns the number of literal (non-variable)
// characters in the template.
func (t *Template) NumLiteralCharacters() int { return t.literalChars }

// NumGroups returns the number of capture groups in the compiled pattern,
// including groups nested inside explicit regexes. Always at least the
// number of variable occurrences.
func (t *Template) NumGroups() int { return t.pattern.groupCount }

// EndsWithSlash reports whether the template ends in a '/' character.
func (t *Template) EndsWithSlash() bool { return t.endsWithSlash }

// Equal reports whether both templates compile to the same regular
// expression; templates differing only in variable names are equal.
func (t *Template) Equal(o *Template) bool {
	return o != nil && t.pattern.Equal(o.pattern)
}

// String returns the template string as given.
func (t *Template) String() string { return t.template }
