// Copyright 2026 The Rested Authors
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

package resource

import (
	"net/http"
	"strings"
)

// RouteHandler is the bound, engine-agnostic form of a compiled route:
// the adapter extracts URL parameters from its engine and invokes it.
type RouteHandler func(w http.ResponseWriter, r *http.Request, params Params)

// RouteEntry is one compiled (method, path) pair. Path uses :param
// placeholders; format variants carry a trailing ".:format" token that
// adapters translate into whatever their engine can match.
type RouteEntry struct {
	// Method is one of GET, POST, PUT, DELETE.
	Method string

	// Path is the absolute path template, e.g. "/users/:user_id.:format".
	Path string

	// Resource is the declaring resource's plural name.
	Resource string

	// Action is the logical action: create, read, update, delete, or index.
	Action string

	// Sub is the member or collection sub-resource name, empty for the
	// base CRUD+index routes.
	Sub string

	// HasFormat reports whether Path ends in the ".:format" token.
	HasFormat bool

	// HandlerName is the namespace name the handler was resolved under,
	// or empty when the route fell back to the method-not-allowed responder.
	HandlerName string

	// Handler serves the request once the engine has matched this entry.
	Handler RouteHandler
}

// Engine is the external route-matching engine compiled entries are
// registered into. Adapters for chi, echo, and gin live under engine/;
// registration happens once at startup, so implementations need no
// synchronization against request traffic.
type Engine interface {
	Handle(entry RouteEntry)
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(entry RouteEntry)

// Handle calls f(entry).
func (f EngineFunc) Handle(entry RouteEntry) { f(entry) }

// joinPath concatenates prefix and segment, keeping exactly one slash
// between them. segment must start with "/".
func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return strings.TrimSuffix(prefix, "/") + segment
}

// withFormat appends the trailing format token to a path template.
func withFormat(path string) string {
	return path + ".:format"
}
