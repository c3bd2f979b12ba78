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

package uriencode

import "strings"

// Type identifies the URI component a value is encoded for.
type Type int

const (
	// TypeUnknown means no component context; values pass through unencoded.
	TypeUnknown Type = iota

	// TypeScheme is the URI scheme component.
	TypeScheme

	// TypeAuthority is the complete URI authority component.
	TypeAuthority

	// TypeUserInfo is the user info part of the authority.
	TypeUserInfo

	// TypeHost is the host part of the authority.
	TypeHost

	// TypePort is the port part of the authority.
	TypePort

	// TypePath is the URI path component; slashes are preserved.
	TypePath

	// TypePathSegment is a single path segment; slashes are encoded.
	TypePathSegment

	// TypeMatrix is a matrix parameter within a path segment.
	TypeMatrix

	// TypeQuery is the complete URI query component.
	TypeQuery

	// TypeQueryParam is a query parameter name or value.
	TypeQueryParam

	// TypeFragment is the URI fragment component.
	TypeFragment
)

// String returns the component name for diagnostics.
func (t Type) String() string {
	switch t {
	case TypeScheme:
		return "scheme"
	case TypeAuthority:
		return "authority"
	case TypeUserInfo:
		return "user info"
	case TypeHost:
		return "host"
	case TypePort:
		return "port"
	case TypePath:
		return "path"
	case TypePathSegment:
		return "path segment"
	case TypeMatrix:
		return "matrix parameter"
	case TypeQuery:
		return "query"
	case TypeQueryParam:
		return "query parameter"
	case TypeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

const (
	alpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digit      = "0123456789"
	unreserved = alpha + digit + "-._~"
	subDelims  = "!$&'()*+,;="
	// pchar per RFC 3986 section 3.3.
	pchar = unreserved + subDelims + ":@"
)

// allowed holds, per component type, the ASCII characters that may appear
// unencoded. Indexed by Type.
var allowed = func() [TypeFragment + 1][128]bool {
	var tables [TypeFragment + 1][128]bool

	set := func(t Type, chars string) {
		for i := 0; i < len(chars); i++ {
			tables[t][chars[i]] = true
		}
	}

	set(TypeScheme, alpha+digit+"+-.")
	set(TypeUserInfo, unreserved+subDelims+":")
	set(TypeHost, unreserved+subDelims)
	set(TypePort, digit)
	// authority = [userinfo "@"] host [":" port]
	set(TypeAuthority, unreserved+subDelims+":@")
	set(TypePathSegment, pchar)
	set(TypePath, pchar+"/")
	// Matrix parameters delimit on ';' and '=' within a segment.
	set(TypeMatrix, strings.Map(func(r rune) rune {
		if r == ';' || r == '=' {
			return -1
		}
		return r
	}, pchar))
	set(TypeQuery, pchar+"/?")
	// Query parameter names and values must additionally encode the
	// '=' and '&' delimiters, and '+' which many decoders read as space.
	set(TypeQueryParam, strings.Map(func(r rune) rune {
		if r == '=' || r == '&' || r == '+' {
			return -1
		}
		return r
	}, pchar+"/?"))
	set(TypeFragment, pchar+"/?")

	return tables
}()

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes every character of s that is not allowed to
// appear unencoded in the given URI component. Multi-byte UTF-8 sequences
// are encoded byte by byte. TypeUnknown returns s unchanged.
func Encode(s string, t Type) string {
	return encode(s, t, false)
}

// Contextual percent-encodes s like Encode but leaves already
// percent-encoded triplets intact, so "a%20b" stays "a%20b" instead of
// becoming "a%2520b". TypeUnknown returns s unchanged.
func Contextual(s string, t Type) string {
	return encode(s, t, true)
}

// Valid reports whether s contains only characters allowed unencoded in
// the given component, treating well-formed percent triplets as valid.
func Valid(s string, t Type) bool {
	if t == TypeUnknown {
		return true
	}
	table := &allowed[t]
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '%' && isPercentTriplet(s, i) {
			i += 2
			continue
		}
		if b >= 128 || !table[b] {
			return false
		}
	}
	return true
}

func encode(s string, t Type, preserveTriplets bool) string {
	if t == TypeUnknown || int(t) >= len(allowed) {
		return s
	}
	table := &allowed[t]

	// Fast path: nothing to encode.
	clean := true
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 128 || !table[b] {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b < 128 && table[b]:
			sb.WriteByte(b)
		case b == '%' && preserveTriplets && isPercentTriplet(s, i):
			sb.WriteString(s[i : i+3])
			i += 2
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&0x0f])
		}
	}
	return sb.String()
}

// isPercentTriplet reports whether s[i:] starts a well-formed
// percent-encoded triplet such as "%2F".
func isPercentTriplet(s string, i int) bool {
	return i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2])
}

func ishex(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}
