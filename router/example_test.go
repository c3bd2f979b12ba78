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

package router_test

import (
	"context"
	"fmt"

	"github.com/dtbaum/jersey/router"
)

func Example() {
	r := router.New()
	r.MustHandle("/users/{id}", "user endpoint")
	r.MustHandle("/users/admin", "admin endpoint")
	r.Warmup()

	params := map[string]string{}

	route, _, _ := r.Lookup(context.Background(), "/users/admin", params)
	fmt.Println(route.Value())

	route, _, _ = r.Lookup(context.Background(), "/users/42", params)
	fmt.Println(route.Value(), params["id"])

	// Output:
	// admin endpoint
	// user endpoint 42
}
