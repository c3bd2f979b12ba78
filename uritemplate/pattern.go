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
	"regexp"
	"slices"
)

// Pattern is the compiled form of a template: an anchored regular
// expression plus the 1-based capture group index of each distinct
// template variable. Matching must consume the whole input; a template
// matching only a prefix of a longer path is not a match.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	re           *regexp.Regexp // nil only for the empty pattern
	source       string         // unanchored regex source
	groupIndexes []int          // per distinct variable, first-occurrence order
	groupCount   int            // total capture groups, nested ones included
}

// emptyPattern backs the Empty template. It matches only the empty and
// root paths and captures nothing.
var emptyPattern = &Pattern{}

// newPattern compiles the regex source produced by the parser. The source
// is anchored at both ends; \A and \z rather than ^ and $ so embedded
// newlines in the input cannot fake a match.
func newPattern(source string, groupIndexes []int, groupCount int) (*Pattern, error) {
	re, err := regexp.Compile(`\A` + source + `\z`)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		re:           re,
		source:       source,
		groupIndexes: groupIndexes,
		groupCount:   groupCount,
	}, nil
}

// MatchString reports whether the input matches the pattern in full.
func (p *Pattern) MatchString(s string) bool {
	if p.re == nil {
		return s == "" || s == "/"
	}
	return p.re.MatchString(s)
}

// match fills values with variable name to captured substring on success.
// The map is cleared before anything else happens, so a failed match never
// leaves stale bindings from a previous call.
func (p *Pattern) match(s string, names []string, values map[string]string) bool {
	clear(values)
	if p.re == nil {
		return s == "" || s == "/"
	}
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	for i, name := range names {
		values[name] = m[p.groupIndexes[i]]
	}
	return true
}

// matchGroups fills groups with every capture group value in textual
// order. The slice is truncated before anything else happens.
func (p *Pattern) matchGroups(s string, groups *[]string) bool {
	*groups = (*groups)[:0]
	if p.re == nil {
		return s == "" || s == "/"
	}
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	*groups = append(*groups, m[1:]...)
	return true
}

// Source returns the unanchored regex source generated from the template.
func (p *Pattern) Source() string { return p.source }

// GroupCount returns the total number of capture groups, including groups
// nested inside explicit variable regexes.
func (p *Pattern) GroupCount() int { return p.groupCount }

// GroupIndexes returns a copy of the capture group index assigned to each
// distinct template variable, in first-occurrence order.
func (p *Pattern) GroupIndexes() []int { return slices.Clone(p.groupIndexes) }

// Equal reports whether two patterns were generated from templates that
// compile to the same regular expression.
func (p *Pattern) Equal(o *Pattern) bool {
	return o != nil && p.source == o.source
}

// String returns the regex source.
func (p *Pattern) String() string { return p.source }
