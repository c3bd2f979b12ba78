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

package router

import "errors"

var (
	// ErrRoutesFrozen indicates that a route was registered after the route
	// table was frozen by Warmup or a first lookup.
	ErrRoutesFrozen = errors.New("routes frozen, register before warmup")

	// ErrNilRouteValue indicates that a route was registered with a nil value.
	ErrNilRouteValue = errors.New("route value must not be nil")
)
