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
	"fmt"
	"net/url"
	"strings"
)

// Normalize removes dot segments from the URI path as described in
// RFC 3986 section 5.2.4. Unlike plain segment stack implementations it
// also resolves absolute paths that begin with a ".." segment: "/../a/b"
// normalizes to "/a/b" instead of keeping the leading dot-dot. A ".." with
// nothing left to pop is dropped; normalization never climbs above the
// root and never errors.
//
// The path is only rewritten when it contains "/."; any other URI is
// returned unchanged, empty paths included. The input is never mutated.
func Normalize(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}

	path := u.EscapedPath()
	if path == "" || !strings.Contains(path, "/.") {
		return u
	}

	segments := strings.Split(path, "/")
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "", ".":
			// skip
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, segment)
		}
	}

	var sb strings.Builder
	for _, segment := range kept {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}
	normalized := sb.String()

	res := *u
	if unescaped, err := url.PathUnescape(normalized); err == nil {
		res.Path = unescaped
		if unescaped == normalized {
			res.RawPath = ""
		} else {
			res.RawPath = normalized
		}
	} else {
		res.Path = normalized
		res.RawPath = ""
	}
	return &res
}

// NormalizeString is Normalize for a URI in string form.
func NormalizeString(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("uritemplate: normalize %q: %w", uri, err)
	}
	return Normalize(u).String(), nil
}

// Resolve resolves a reference URI against a base URI as described in
// RFC 3986 section 5.4, with two deviations routing layers rely on:
//
//   - an empty reference yields the base without its fragment (standard
//     resolution would need something to resolve against);
//   - a reference beginning with '?' replaces the base's query: the
//     base's scheme, authority and path are kept verbatim (query and
//     fragment stripped) and the reference is appended directly.
//
// Every other reference goes through standard hierarchical resolution
// followed by Normalize.
func Resolve(base *url.URL, ref string) (*url.URL, error) {
	if base == nil {
		return nil, ErrNilBaseURI
	}

	if ref == "" {
		res := *base
		res.Fragment = ""
		res.RawFragment = ""
		return Normalize(&res), nil
	}

	if strings.HasPrefix(ref, "?") {
		s := base.String()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		if i := strings.IndexByte(s, '?'); i >= 0 {
			s = s[:i]
		}
		resolved, err := url.Parse(s + ref)
		if err != nil {
			return nil, fmt.Errorf("uritemplate: resolve %q against %q: %w", ref, base, err)
		}
		return resolved, nil
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("uritemplate: resolve %q against %q: %w", ref, base, err)
	}
	return Normalize(base.ResolveReference(refURL)), nil
}

// ResolveURL is Resolve for an already parsed reference. A nil reference
// is an error; resolution itself cannot fail.
func ResolveURL(base, ref *url.URL) (*url.URL, error) {
	if base == nil {
		return nil, ErrNilBaseURI
	}
	if ref == nil {
		return nil, ErrNilRefURI
	}
	return Resolve(base, ref.String())
}
