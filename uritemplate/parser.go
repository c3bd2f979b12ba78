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
	"strconv"
	"strings"
)

const (
	// defaultVariablePattern matches one or more non-slash characters.
	// Non-greedy so literal text following the variable wins the overlap.
	defaultVariablePattern = "[^/]+?"

	// defaultOptionalPattern matches zero or more non-slash characters.
	// Used for query- and matrix-style variables, which may be absent.
	defaultOptionalPattern = "[^/]*"
)

// variableNameRegexp constrains variable names after the optional sigil:
// a word character followed by word characters, dashes or dots.
var variableNameRegexp = regexp.MustCompile(`^\w[-\w.]*$`)

// parseResult carries everything the scan of one template produces.
// Template assembles its immutable state from it.
type parseResult struct {
	template        string
	normalized      string
	pattern         string // unanchored regex source
	parts           []Part
	names           []string // distinct variable names, first-occurrence order
	groupIndexes    []int    // 1-based capture group index per name
	groupCount      int      // total capture groups, nested ones included
	literalChars    int
	explicitRegexes int
	endsWithSlash   bool
}

// parseTemplate scans a template left to right, building the regex source,
// the normalized template and the ordered part list. It does not treat the
// empty or root template specially; Parse handles that before calling here.
func parseTemplate(template string) (*parseResult, error) {
	res := &parseResult{
		template:      template,
		endsWithSlash: strings.HasSuffix(template, "/"),
	}

	var pattern, normalized, literal strings.Builder
	indexByName := make(map[string]int)

	flushLiteral := func() {
		if literal.Len() == 0 {
			return
		}
		text := literal.String()
		literal.Reset()
		res.parts = append(res.parts, Part{Kind: KindLiteral, Text: text, Raw: text})
		pattern.WriteString(regexp.QuoteMeta(text))
		normalized.WriteString(text)
		res.literalChars += len(text)
	}

	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '{':
			// Scan to the matching close brace. Explicit regexes may
			// contain balanced braces of their own ({2,4} quantifiers).
			level := 1
			j := i + 1
			for ; j < len(template); j++ {
				switch template[j] {
				case '{':
					level++
				case '}':
					level--
				}
				if level == 0 {
					break
				}
			}
			if level != 0 {
				return nil, &ParseError{Template: template, Pos: i, Msg: "unterminated '{'"}
			}
			flushLiteral()
			if err := res.variable(template[i:j+1], i, indexByName, &pattern, &normalized); err != nil {
				return nil, err
			}
			i = j
		case '}':
			return nil, &ParseError{Template: template, Pos: i, Msg: "unbalanced '}'"}
		default:
			literal.WriteByte(c)
		}
	}
	flushLiteral()

	res.pattern = pattern.String()
	res.normalized = normalized.String()
	return res, nil
}

// variable parses one {varspec} occurrence: sigil? name (':' regex)?.
// The enclosed text is split on the first ':'; everything after it is an
// explicit regex. A repeated variable name reuses the capture group index
// assigned to its first occurrence but still emits its own capturing group.
func (res *parseResult) variable(raw string, pos int, indexByName map[string]int, pattern, normalized *strings.Builder) error {
	inner := raw[1 : len(raw)-1]
	nameSpec, regexSpec, hasRegex := strings.Cut(inner, ":")

	name := strings.TrimSpace(nameSpec)
	sigil := SigilNone
	occurrencePattern := defaultVariablePattern
	if name != "" && (name[0] == SigilQuery || name[0] == SigilMatrix) {
		sigil = name[0]
		name = strings.TrimSpace(name[1:])
		occurrencePattern = defaultOptionalPattern
	}
	if name == "" {
		return &ParseError{Template: res.template, Pos: pos, Msg: "empty variable name"}
	}
	if !variableNameRegexp.MatchString(name) {
		return &ParseError{Template: res.template, Pos: pos, Msg: "invalid variable name " + strconv.Quote(name)}
	}

	explicit := false
	if hasRegex {
		occurrencePattern = strings.TrimSpace(regexSpec)
		if occurrencePattern == "" {
			return &ParseError{Template: res.template, Pos: pos, Msg: "empty regular expression for variable " + strconv.Quote(name)}
		}
		if _, err := regexp.Compile(occurrencePattern); err != nil {
			return &ParseError{Template: res.template, Pos: pos, Msg: "invalid regular expression for variable " + strconv.Quote(name), Err: err}
		}
		explicit = true
		res.explicitRegexes++
	}

	group, seen := indexByName[name]
	if !seen {
		group = res.groupCount + 1
		indexByName[name] = group
		res.names = append(res.names, name)
		res.groupIndexes = append(res.groupIndexes, group)
	}
	res.groupCount += 1 + countGroups(occurrencePattern)

	pattern.WriteByte('(')
	pattern.WriteString(occurrencePattern)
	pattern.WriteByte(')')

	normalized.WriteByte('{')
	if sigil != SigilNone {
		normalized.WriteByte(sigil)
	}
	normalized.WriteString(name)
	normalized.WriteByte('}')

	res.parts = append(res.parts, Part{
		Kind:     KindVariable,
		Text:     name,
		Raw:      raw,
		Pattern:  occurrencePattern,
		Sigil:    sigil,
		Explicit: explicit,
		Group:    group,
	})
	return nil
}

// countGroups counts the capturing groups in a regex source: '(' that is
// not escaped, not inside a character class, and not a non-capturing or
// flag group. Named groups (?P<x>...) count.
func countGroups(pattern string) int {
	n := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			for i++; i < len(pattern); i++ {
				if pattern[i] == '\\' {
					i++
				} else if pattern[i] == ']' {
					break
				}
			}
		case '(':
			if i+1 < len(pattern) && pattern[i+1] == '?' {
				if i+2 < len(pattern) && pattern[i+2] == 'P' {
					n++
				}
			} else {
				n++
			}
		}
	}
	return n
}
