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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatch_SingleVariable covers the basic bind-and-extract path.
func TestMatch_SingleVariable(t *testing.T) {
	tpl := MustParse("/users/{id}")
	values := map[string]string{}

	ok, err := tpl.Match("/users/42", values)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"id": "42"}, values)
}

// TestMatch_Anchored verifies a template never matches a prefix or suffix
// of a longer path.
func TestMatch_Anchored(t *testing.T) {
	tpl := MustParse("/users/{id}")
	values := map[string]string{}

	ok, err := tpl.Match("/users/42/orders", values)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = tpl.Match("/api/users/42", values)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMatch_DefaultRegexRequiresOneCharacter verifies the default variable
// pattern rejects the empty segment.
func TestMatch_DefaultRegexRequiresOneCharacter(t *testing.T) {
	tpl := MustParse("/users/{id}")
	values := map[string]string{}

	ok, err := tpl.Match("/users/", values)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMatch_DefaultRegexRejectsSlash verifies a plain variable never spans
// path segments.
func TestMatch_DefaultRegexRejectsSlash(t *testing.T) {
	tpl := MustParse("/users/{id}")
	values := map[string]string{}

	ok, err := tpl.Match("/users/4/2", values)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMatch_ExplicitRegex verifies explicit regexes constrain matching.
func TestMatch_ExplicitRegex(t *testing.T) {
	tpl := MustParse("/items/{id:[0-9]+}")
	values := map[string]string{}

	ok, err := tpl.Match("/items/123", values)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123", values["id"])

	ok, err = tpl.Match("/items/abc", values)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMatch_ClearsStaleValues verifies the output container is cleared on
// every call, matched or not.
func TestMatch_ClearsStaleValues(t *testing.T) {
	tpl := MustParse("/users/{id}")
	values := map[string]string{"stale": "yes"}

	ok, err := tpl.Match("/users/42", values)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotContains(t, values, "stale")

	ok, err = tpl.Match("/nope", values)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, values, "failed match must not leave previous bindings")
}

// TestMatch_NilContainer verifies the invalid-argument contract.
func TestMatch_NilContainer(t *testing.T) {
	tpl := MustParse("/users/{id}")

	_, err := tpl.Match("/users/42", nil)
	assert.ErrorIs(t, err, ErrNilValues)

	_, err = tpl.MatchGroups("/users/42", nil)
	assert.ErrorIs(t, err, ErrNilGroups)
}

// TestMatchGroups_TextualOrder verifies one entry per capture group,
// nested groups from explicit regexes included.
func TestMatchGroups_TextualOrder(t *testing.T) {
	tpl := MustParse("/{a}/{b}")
	var groups []string

	ok, err := tpl.MatchGroups("/x/y", &groups)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, groups)

	tpl = MustParse("/files/{name:(a|b)c}")
	ok, err = tpl.MatchGroups("/files/ac", &groups)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"ac", "a"}, groups, "nested group values appear after their enclosing group")
}

// TestMatch_DuplicateVariable verifies duplicate occurrences each capture,
// with the shared slot bound to the first occurrence's group.
func TestMatch_DuplicateVariable(t *testing.T) {
	tpl := MustParse("/{x}-{x}")

	values := map[string]string{}
	ok, err := tpl.Match("/a-b", values)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", values["x"])

	var groups []string
	ok, err = tpl.MatchGroups("/a-b", &groups)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, groups)
}

// TestMatch_EmptyTemplate verifies the degenerate template matches only
// the empty and root paths.
func TestMatch_EmptyTemplate(t *testing.T) {
	values := map[string]string{}

	ok, err := Empty.Match("", values)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Empty.Match("/", values)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Empty.Match("/x", values)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCreateURI_Named covers lenient named substitution.
func TestCreateURI_Named(t *testing.T) {
	tpl := MustParse("/users/{id}/orders/{orderId}")

	uri := tpl.CreateURI(map[string]string{"id": "42", "orderId": "7"})
	assert.Equal(t, "/users/42/orders/7", uri)

	uri = tpl.CreateURI(map[string]string{"id": "42"})
	assert.Equal(t, "/users/42/orders/", uri, "unbound variables resolve to the empty string")

	uri = tpl.CreateURI(nil)
	assert.Equal(t, "/users//orders/", uri)
}

// TestCreateURI_DoesNotValidate verifies construction ignores explicit
// regexes: matching is constrained, building is not.
func TestCreateURI_DoesNotValidate(t *testing.T) {
	tpl := MustParse("/items/{id:[0-9]+}")
	assert.Equal(t, "/items/abc", tpl.CreateURI(map[string]string{"id": "abc"}))
}

// TestCreateURIValues_FirstOccurrenceOrder covers positional binding.
func TestCreateURIValues_FirstOccurrenceOrder(t *testing.T) {
	tpl := MustParse("/users/{id}/orders/{orderId}")
	assert.Equal(t, "/users/42/orders/7", tpl.CreateURIValues("42", "7"))
}

// TestCreateURIValues_DuplicateConsumesOneSlot verifies a repeated
// variable reuses its first binding instead of consuming another value.
func TestCreateURIValues_DuplicateConsumesOneSlot(t *testing.T) {
	tpl := MustParse("/{x}-{x}")
	assert.Equal(t, "/5-5", tpl.CreateURIValues("5"))

	tpl = MustParse("/{x}/{y}/{x}")
	assert.Equal(t, "/a/b/a", tpl.CreateURIValues("a", "b"))
}

// TestCreateURIValues_ExhaustedSliceLeavesEmpty verifies leniency of the
// positional form mirrors the named form.
func TestCreateURIValues_ExhaustedSliceLeavesEmpty(t *testing.T) {
	tpl := MustParse("/{a}/{b}")
	assert.Equal(t, "/x/", tpl.CreateURIValues("x"))
	assert.Equal(t, "//", tpl.CreateURIValues())
}

// TestCreateURIRange covers the offset/length window.
func TestCreateURIRange(t *testing.T) {
	tpl := MustParse("/{a}/{b}")
	values := []string{"skip", "x", "y", "unused"}

	assert.Equal(t, "/x/y", tpl.CreateURIRange(values, 1, 2))
	assert.Equal(t, "/skip/x", tpl.CreateURIRange(values, 0, 2))
	assert.Equal(t, "/unused/", tpl.CreateURIRange(values, 3, 10), "length past the end is capped")
}

// TestCreateURI_SigilExpansion verifies query- and matrix-style expansion
// and its collapse on empty values.
func TestCreateURI_SigilExpansion(t *testing.T) {
	tpl := MustParse("/search{?q}")
	assert.Equal(t, "/search?q=go", tpl.CreateURI(map[string]string{"q": "go"}))
	assert.Equal(t, "/search", tpl.CreateURI(nil))

	tpl = MustParse("/items{;rev}")
	assert.Equal(t, "/items;rev=2", tpl.CreateURI(map[string]string{"rev": "2"}))
	assert.Equal(t, "/items", tpl.CreateURI(nil))
}

// TestRoundTrip verifies match(createURI(V)) reproduces V when every
// variable is bound with a value its regex accepts.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		template string
		values   map[string]string
	}{
		{"/users/{id}", map[string]string{"id": "42"}},
		{"/users/{id}/orders/{orderId: [0-9]+}", map[string]string{"id": "jane", "orderId": "7001"}},
		{"/{a}/{b}", map[string]string{"a": "x", "b": "y.z"}},
	}

	for _, tt := range tests {
		tpl := MustParse(tt.template)
		uri := tpl.CreateURI(tt.values)

		captured := map[string]string{}
		ok, err := tpl.Match(uri, captured)
		require.NoError(t, err, tt.template)
		require.True(t, ok, "created URI %q must match its own template", uri)
		assert.Equal(t, tt.values, captured, tt.template)
	}
}

// TestTemplate_Equal verifies equality is over the generated pattern, so
// variable names do not matter.
func TestTemplate_Equal(t *testing.T) {
	a := MustParse("/users/{id}")
	b := MustParse("/users/{name}")
	c := MustParse("/users/{id:[0-9]+}")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

// TestTemplate_Accessors sweeps the remaining introspection surface.
func TestTemplate_Accessors(t *testing.T) {
	tpl := MustParse("/users/{id: [0-9]+}/files/{path}")

	assert.Equal(t, "/users/{id: [0-9]+}/files/{path}", tpl.Raw())
	assert.Equal(t, tpl.Raw(), tpl.String())
	assert.Equal(t, "/users/{id}/files/{path}", tpl.Normalized())
	assert.True(t, tpl.HasVariable("id"))
	assert.True(t, tpl.HasVariable("path"))
	assert.False(t, tpl.HasVariable("nope"))
	assert.Equal(t, 2, tpl.NumVariables())
	assert.Equal(t, 1, tpl.NumExplicitRegexes())
	assert.GreaterOrEqual(t, tpl.NumGroups(), tpl.NumVariables())
}

// TestTemplate_ConcurrentMatch exercises the immutability guarantee: one
// template serving many goroutines with no synchronization.
func TestTemplate_ConcurrentMatch(t *testing.T) {
	tpl := MustParse("/users/{id}/orders/{orderId:[0-9]+}")

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			values := map[string]string{}
			for i := 0; i < 200; i++ {
				path := fmt.Sprintf("/users/u%d/orders/%d", g, i)
				ok, err := tpl.Match(path, values)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, fmt.Sprintf("u%d", g), values["id"])
			}
		}(g)
	}
	wg.Wait()
}
