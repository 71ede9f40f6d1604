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
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/rested-dev/rested/status"
)

// actionVerbs maps each logical action to its accepted handler verbs in
// precedence order. "read" is the canonical GET verb; "get" is a legacy
// alias and loses ties.
var actionVerbs = map[string][]string{
	"create": {"create"},
	"read":   {"read", "get"},
	"update": {"update"},
	"delete": {"delete"},
	"index":  {"index"},
}

// subActions pairs the HTTP methods of member/collection sub-routes with
// their logical action, in emission order.
var subActions = []struct {
	method string
	action string
}{
	{http.MethodPost, "create"},
	{http.MethodGet, "read"},
	{http.MethodPut, "update"},
	{http.MethodDelete, "delete"},
}

// Resource compiles one resource declaration into routes on the engine.
//
// For a default declaration it emits the full CRUD+index surface, each
// path doubled with a ".:format" variant:
//
//	POST   /users            create_user
//	GET    /users/:user_id   read_user
//	PUT    /users/:user_id   update_user
//	DELETE /users/:user_id   delete_user
//	GET    /users            index_users
//
// Handler names are resolved against the namespace at declaration time;
// verbs without a matching handler bind the method-not-allowed responder.
// A failing inflection aborts the declaration with an error.
func (r *Registrar) Resource(name string, opts ...ResourceOption) error {
	d := Descriptor{Name: name}
	for _, opt := range opts {
		opt(&d)
	}

	if d.Singular == "" {
		singular, err := r.inflector(name)
		if err != nil {
			return fmt.Errorf("resource %q: %w: %v", name, ErrInflect, err)
		}
		d.Singular = singular
	}
	if len(d.Params) == 0 {
		d.Params = []string{d.Singular}
	}

	if d.Parent != "" {
		parentPath, ok := r.paths[d.Parent]
		switch {
		case ok:
			r.pushPrefix(parentPath)
			defer r.popPrefix()
		case r.strictParents:
			return fmt.Errorf("resource %q: %w: %q", name, ErrUnknownParent, d.Parent)
		default:
			r.diagnose(DiagnosticEvent{
				Kind:     DiagnosticUnknownParent,
				Resource: name,
				Message:  "parent not registered, mounting resource at top level",
				Fields:   map[string]any{"parent": d.Parent},
			})
		}
	}

	base := joinPath(r.prefix(), "/"+d.Name)
	instance := base + "/" + r.paramSegment(&d)

	r.emit(&d, http.MethodPost, base, "create", "", nil)
	r.emit(&d, http.MethodGet, instance, "read", "", d.Load)
	r.emit(&d, http.MethodPut, instance, "update", "", d.Load)
	r.emit(&d, http.MethodDelete, instance, "delete", "", d.Load)
	r.emit(&d, http.MethodGet, base, "index", "", d.LoadAll)

	for _, member := range d.Member {
		path := instance + "/" + member
		for _, sub := range subActions {
			r.emit(&d, sub.method, path, sub.action, member, d.Load)
		}
	}
	for _, collection := range d.Collection {
		path := base + "/" + collection
		for _, sub := range subActions {
			r.emit(&d, sub.method, path, sub.action, collection, d.LoadAll)
		}
	}

	if _, exists := r.paths[name]; exists {
		r.diagnose(DiagnosticEvent{
			Kind:     DiagnosticDuplicateResource,
			Resource: name,
			Message:  "resource declared twice, overwriting registry entry",
		})
	}
	r.paths[name] = instance

	return nil
}

// MustResource is like Resource but panics on error, for startup wiring
// where a broken route table must abort the process.
func (r *Registrar) MustResource(name string, opts ...ResourceOption) {
	if err := r.Resource(name, opts...); err != nil {
		panic(err)
	}
}

// paramSegment joins the descriptor's parameter names into the instance
// path key: ":user_id", or ":project_id/:version_id" for composite keys.
// Under WithLegacyParamNames the "_id" suffix is dropped.
func (r *Registrar) paramSegment(d *Descriptor) string {
	parts := make([]string, len(d.Params))
	for i, p := range d.Params {
		if r.legacyParams {
			parts[i] = ":" + p
		} else {
			parts[i] = ":" + p + "_id"
		}
	}
	return strings.Join(parts, "/")
}

// emit resolves the handler for one (method, path) pair and registers the
// entry plus its ".:format" variant.
func (r *Registrar) emit(d *Descriptor, method, path, action, sub string, loader LoaderFunc) {
	names := r.candidates(d, action, sub)
	fn, bound, ok := r.ns.Resolve(names...)
	if !ok {
		fn = methodNotAllowed
		r.diagnose(DiagnosticEvent{
			Kind:     DiagnosticUnresolvedHandler,
			Resource: d.Name,
			Message:  "no handler matched, binding method-not-allowed responder",
			Fields:   map[string]any{"method": method, "path": path, "candidates": names},
		})
	}

	entry := RouteEntry{
		Method:      method,
		Path:        path,
		Resource:    d.Name,
		Action:      action,
		Sub:         sub,
		HandlerName: bound,
		Handler:     r.bind(fn, loader),
	}
	r.register(entry)

	if r.formatRoutes {
		variant := entry
		variant.Path = withFormat(path)
		variant.HasFormat = true
		r.register(variant)
	}
}

// candidates builds the ordered handler-name candidate list for an action.
//
// All verb-first names come before any reversed name; within a pattern,
// verbs are tried in declaration order ("read" before "get") and the more
// specific target first (singular before plural for instance actions,
// plural before singular for index).
func (r *Registrar) candidates(d *Descriptor, action, sub string) []string {
	verbs := actionVerbs[action]

	var targets []string
	switch {
	case sub != "" && d.isCollection(sub):
		targets = []string{d.Name + "_" + sub}
	case sub != "":
		targets = []string{d.Singular + "_" + sub}
	case action == "index":
		targets = []string{d.Name, d.Singular}
	default:
		targets = []string{d.Singular, d.Name}
	}

	names := make([]string, 0, 2*len(verbs)*len(targets))
	for _, verb := range verbs {
		for _, target := range targets {
			if n := verb + "_" + target; !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}
	for _, verb := range verbs {
		for _, target := range targets {
			if n := target + "_" + verb; !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}
	return names
}

// isCollection reports whether sub names a collection sub-resource of d.
func (d *Descriptor) isCollection(sub string) bool {
	return slices.Contains(d.Collection, sub)
}

// register appends the entry to the route table and hands it to the engine.
func (r *Registrar) register(e RouteEntry) {
	r.routes = append(r.routes, e)
	r.engine.Handle(e)
}

// bind closes the resolved handler over the registrar's filters, the
// loader, and the response-writing step. The returned RouteHandler is what
// engine adapters invoke at request time.
func (r *Registrar) bind(fn HandlerFunc, loader LoaderFunc) RouteHandler {
	return func(w http.ResponseWriter, req *http.Request, params Params) {
		c := &Context{
			Request:            req,
			Response:           w,
			params:             params,
			serializer:         r.defaultSerializer,
			defaultContentType: r.defaultContentType,
			logger:             r.logger,
		}

		for _, f := range r.filters {
			if err := f.fn(c); err != nil {
				r.errorHandler(c, err)
				return
			}
			if c.aborted {
				return
			}
		}

		if loader != nil {
			loaded, err := loader(c)
			if err != nil {
				r.errorHandler(c, err)
				return
			}
			c.loaded = loaded
		}

		payload, err := fn(c)
		if err != nil {
			r.errorHandler(c, err)
			return
		}
		if c.aborted || c.wrote {
			return
		}
		if err := c.write(payload); err != nil {
			c.Logger().Error("response encoding failed", slog.String("error", err.Error()))
		}
	}
}

// methodNotAllowed is the constant fallback responder bound to verbs
// without a matching handler.
func methodNotAllowed(*Context) (any, error) {
	return status.MethodNotAllowed("Method not allowed."), nil
}
