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
	"log/slog"
	"net/http"

	"github.com/rested-dev/rested/inflect"
)

// FilterFunc is a before-request hook. Filters run in install order ahead
// of the loader and handler; aborting the Context or returning an error
// stops the request.
type FilterFunc func(c *Context) error

// namedFilter pairs a filter with its install name so that reinstalling
// under the same name replaces instead of stacking.
type namedFilter struct {
	name string
	fn   FilterFunc
}

// Registrar is the registration context for resource declarations: it
// owns the prefix stack, the resource registry, the handler namespace,
// and the handle to the external route engine.
//
// Declarations run single-threaded at startup. Once all resources are
// declared the compiled route table and registry are read-only and safe
// for concurrent request traffic.
type Registrar struct {
	engine      Engine
	ns          *Namespace
	inflector   func(string) (string, error)
	logger      *slog.Logger
	diagnostics DiagnosticHandler

	strictParents      bool
	legacyParams       bool
	formatRoutes       bool
	defaultSerializer  Serializer
	defaultContentType string
	errorHandler       func(c *Context, err error)

	prefixes []string          // prefix stack; top is the active prefix
	paths    map[string]string // resource registry: name -> composed instance path
	filters  []namedFilter
	routes   []RouteEntry
}

// New creates a Registrar bound to the given route engine.
//
// Example:
//
//	ns := resource.NewNamespace().Register("read_user", showUser)
//	r, err := resource.New(chiengine.New(mux), resource.WithNamespace(ns))
func New(engine Engine, opts ...Option) (*Registrar, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	r := &Registrar{
		engine:             engine,
		ns:                 NewNamespace(),
		inflector:          inflect.Singularize,
		logger:             slog.Default(),
		formatRoutes:       true,
		defaultContentType: "application/json",
		errorHandler:       defaultErrorHandler,
		paths:              make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNew is like New but panics on error. Use at startup where a broken
// configuration must not let the process come up.
func MustNew(engine Engine, opts ...Option) *Registrar {
	r, err := New(engine, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Use installs a before-request filter under a name. Installing a filter
// under an already-used name replaces the previous one, making installs
// idempotent. Filters apply to every route compiled by this registrar,
// including routes declared before the install.
func (r *Registrar) Use(name string, fn FilterFunc) {
	for i := range r.filters {
		if r.filters[i].name == name {
			r.filters[i].fn = fn
			return
		}
	}
	r.filters = append(r.filters, namedFilter{name: name, fn: fn})
}

// Namespace returns the handler namespace declarations resolve against.
func (r *Registrar) Namespace() *Namespace {
	return r.ns
}

// Routes returns a copy of all compiled route entries in registration
// order, for introspection and testing.
func (r *Registrar) Routes() []RouteEntry {
	out := make([]RouteEntry, len(r.routes))
	copy(out, r.routes)
	return out
}

// Path returns the composed instance path registered for a resource name
// ("/users/:user_id"), as consumed by later declarations naming it as
// parent.
func (r *Registrar) Path(name string) (string, bool) {
	p, ok := r.paths[name]
	return p, ok
}

// prefix returns the active path prefix.
func (r *Registrar) prefix() string {
	if len(r.prefixes) == 0 {
		return ""
	}
	return r.prefixes[len(r.prefixes)-1]
}

// pushPrefix makes p the active prefix for the duration of one declaration.
func (r *Registrar) pushPrefix(p string) {
	r.prefixes = append(r.prefixes, p)
}

// popPrefix restores the previously active prefix.
func (r *Registrar) popPrefix() {
	r.prefixes = r.prefixes[:len(r.prefixes)-1]
}

// diagnose forwards a diagnostic event to the configured handler and logger.
func (r *Registrar) diagnose(e DiagnosticEvent) {
	r.logger.Warn(e.Message,
		slog.String("kind", string(e.Kind)),
		slog.String("resource", e.Resource))
	if r.diagnostics != nil {
		r.diagnostics.HandleDiagnostic(e)
	}
}

// defaultErrorHandler is the fallback error boundary for loader and
// handler errors: a 500 with the error message in the standard envelope.
func defaultErrorHandler(c *Context, err error) {
	c.Status(http.StatusInternalServerError)
	_ = c.write(map[string]any{"error": err.Error()})
}
