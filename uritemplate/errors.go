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
	"errors"
	"fmt"
)

var (
	// ErrNilValues indicates that the values map passed to Match is nil.
	ErrNilValues = errors.New("values map must not be nil")

	// ErrNilGroups indicates that the group slice passed to MatchGroups is nil.
	ErrNilGroups = errors.New("groups slice must not be nil")

	// ErrNilBaseURI indicates that the base URI passed to Resolve is nil.
	ErrNilBaseURI = errors.New("base URI must not be nil")

	// ErrNilRefURI indicates that the reference URI passed to ResolveURL is nil.
	ErrNilRefURI = errors.New("reference URI must not be nil")
)

// A ParseError describes a malformed URI template. A template that fails to
// parse produces no Template value; construction is all-or-nothing.
type ParseError struct {
	Template string // the offending template
	Pos      int    // byte offset of the offending construct
	Msg      string // human-readable description
	Err      error  // underlying cause, e.g. a regexp compile error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uritemplate: parsing %q at offset %d: %s: %v", e.Template, e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("uritemplate: parsing %q at offset %d: %s", e.Template, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
