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
	"strings"

	"github.com/dtbaum/jersey/uriencode"
)

// Components are the pieces a URI is assembled from. Every field may
// contain {variable} placeholders, resolved from the values handed to
// BuildURI. When UserInfo, Host or Port is set, Authority is ignored and
// the authority is assembled as userinfo@host:port instead.
type Components struct {
	Scheme    string
	Authority string
	UserInfo  string
	Host      string
	Port      string
	Path      string
	Query     string
	Fragment  string
}

// BuildURI assembles a URI from component templates, resolving variables
// from the named values map. Unbound variables resolve to the empty
// string. When encode is true, substituted values are percent-encoded for
// the component they land in; otherwise they are contextually encoded
// (existing percent triplets preserved). encodeSlashInPath selects whether
// path values are encoded as whole path segments (slashes encoded) or as a
// raw path (slashes preserved).
//
// The result is not validated; supplying inconsistent components is the
// caller's responsibility. An error is returned only when a component
// template fails to parse.
func BuildURI(c Components, values map[string]string, encode, encodeSlashInPath bool) (string, error) {
	return buildURI(c, nil, values, encode, encodeSlashInPath)
}

// BuildURIValues is BuildURI with positional values, consumed left to
// right across the whole URI: scheme variables bind before authority,
// before path, before query, before fragment. A variable name seen again
// anywhere later in the URI reuses its bound value instead of consuming
// another slot. An exhausted slice leaves remaining variables empty.
func BuildURIValues(c Components, values []string, encode, encodeSlashInPath bool) (string, error) {
	return buildURI(c, values, nil, encode, encodeSlashInPath)
}

func buildURI(c Components, positional []string, named map[string]string, encode, encodeSlashInPath bool) (string, error) {
	// Values bound so far, shared across all components so a name binds
	// exactly once per BuildURI call.
	bound := make(map[string]string, len(named))
	for k, v := range named {
		bound[k] = v
	}

	var sb strings.Builder
	offset := 0

	appendComponent := func(t uriencode.Type, template string, componentEncode bool) (string, error) {
		resolved, newOffset, err := resolveComponent(t, template, positional, offset, componentEncode, bound)
		offset = newOffset
		return resolved, err
	}

	if c.Scheme != "" {
		resolved, err := appendComponent(uriencode.TypeScheme, c.Scheme, false)
		if err != nil {
			return "", err
		}
		sb.WriteString(resolved)
		sb.WriteByte(':')
	}

	hasAuthority := false
	switch {
	case c.UserInfo != "" || c.Host != "" || c.Port != "":
		hasAuthority = true
		sb.WriteString("//")
		if c.UserInfo != "" {
			resolved, err := appendComponent(uriencode.TypeUserInfo, c.UserInfo, encode)
			if err != nil {
				return "", err
			}
			sb.WriteString(resolved)
			sb.WriteByte('@')
		}
		if c.Host != "" {
			resolved, err := appendComponent(uriencode.TypeHost, c.Host, encode)
			if err != nil {
				return "", err
			}
			sb.WriteString(resolved)
		}
		if c.Port != "" {
			resolved, err := appendComponent(uriencode.TypePort, c.Port, false)
			if err != nil {
				return "", err
			}
			sb.WriteByte(':')
			sb.WriteString(resolved)
		}
	case c.Authority != "":
		hasAuthority = true
		resolved, err := appendComponent(uriencode.TypeAuthority, c.Authority, encode)
		if err != nil {
			return "", err
		}
		sb.WriteString("//")
		sb.WriteString(resolved)
	}

	if c.Path != "" || c.Query != "" || c.Fragment != "" {
		// A hierarchical URI with an authority needs at least the root
		// path before any query or fragment.
		if hasAuthority && !strings.HasPrefix(c.Path, "/") {
			sb.WriteByte('/')
		}

		if c.Path != "" {
			// Path values are treated as path segments unless the caller
			// wants raw slashes preserved.
			pathType := uriencode.TypePath
			if encodeSlashInPath {
				pathType = uriencode.TypePathSegment
			}
			resolved, err := appendComponent(pathType, c.Path, encode)
			if err != nil {
				return "", err
			}
			sb.WriteString(resolved)
		}

		if c.Query != "" {
			resolved, err := appendComponent(uriencode.TypeQueryParam, c.Query, encode)
			if err != nil {
				return "", err
			}
			// Pre-built query fragments may already carry their own
			// leading '?' or a joining '&'.
			if resolved != "" {
				if resolved[0] != '?' && resolved[0] != '&' {
					sb.WriteByte('?')
				}
				sb.WriteString(resolved)
			}
		}

		if c.Fragment != "" {
			resolved, err := appendComponent(uriencode.TypeFragment, c.Fragment, encode)
			if err != nil {
				return "", err
			}
			sb.WriteByte('#')
			sb.WriteString(resolved)
		}
	}

	return sb.String(), nil
}

// resolveComponent substitutes the variables of one component template,
// consuming positional values from offset on and recording every binding
// in bound. The new offset is returned alongside the resolved text so the
// caller can thread it to the next component.
func resolveComponent(t uriencode.Type, template string, positional []string, offset int, encode bool, bound map[string]string) (string, int, error) {
	if !strings.Contains(template, "{") {
		return template, offset, nil
	}

	tpl, err := Parse(template)
	if err != nil {
		return "", offset, err
	}

	var sb strings.Builder
	for _, p := range tpl.parts {
		switch p.Kind {
		case KindLiteral:
			sb.WriteString(p.Text)
		case KindVariable:
			v, ok := bound[p.Text]
			if !ok && offset < len(positional) {
				v = positional[offset]
				offset++
				bound[p.Text] = v
			}
			sb.WriteString(p.resolve(v, t, encode))
		}
	}
	return sb.String(), offset, nil
}

// ResolveValues substitutes only the variables of template that have a
// binding in values, encoding them for the given component type. Unbound
// variables keep their source text, explicit regex included, so the result
// is still a template over the remaining variables.
func ResolveValues(t uriencode.Type, template string, encode bool, values map[string]string) (string, error) {
	if template == "" || !strings.Contains(template, "{") {
		return template, nil
	}

	tpl, err := Parse(template)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	tpl.resolve(&sb, func(p Part) string {
		if v, ok := values[p.Text]; ok {
			return p.resolve(v, t, encode)
		}
		return p.Raw
	})
	return sb.String(), nil
}
