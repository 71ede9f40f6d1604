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

import "log/slog"

// Option configures a Registrar.
type Option func(*Registrar)

// WithNamespace sets the handler namespace resource declarations resolve
// handler names against. Without it, an empty namespace is used and every
// route falls back to the method-not-allowed responder.
func WithNamespace(ns *Namespace) Option {
	return func(r *Registrar) {
		if ns != nil {
			r.ns = ns
		}
	}
}

// WithInflector replaces the default English inflector with a custom
// singularization function. The function must be pure; an error from it
// aborts the resource declaration.
func WithInflector(fn func(string) (string, error)) Option {
	return func(r *Registrar) {
		if fn != nil {
			r.inflector = fn
		}
	}
}

// WithPrefix mounts every compiled route under the given path prefix.
//
// Example:
//
//	r := resource.MustNew(eng, resource.WithPrefix("/api"))
//	r.MustResource("users") // GET /api/users/:user_id
func WithPrefix(prefix string) Option {
	return func(r *Registrar) {
		if prefix != "" {
			r.prefixes = []string{prefix}
		}
	}
}

// WithStrictParents makes a declaration with an unregistered parent fail
// instead of silently falling back to a top-level resource. The fallback
// is the historical behavior and remains the default.
func WithStrictParents() Option {
	return func(r *Registrar) { r.strictParents = true }
}

// WithLegacyParamNames emits parameter placeholders without the "_id"
// suffix (":user" instead of ":user_id"), matching the oldest route
// grammar variant.
func WithLegacyParamNames() Option {
	return func(r *Registrar) { r.legacyParams = true }
}

// WithoutFormatRoutes suppresses the ".:format" route variants, halving
// the compiled route table for APIs that negotiate by header only.
func WithoutFormatRoutes() Option {
	return func(r *Registrar) { r.formatRoutes = false }
}

// WithLogger sets the slog logger used for registration warnings and
// request-scoped logging via Context.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registrar) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDiagnostics sets a handler for registration-time diagnostic events
// (unknown parents, duplicate resources, unresolved handlers).
//
// Example:
//
//	handler := resource.DiagnosticHandlerFunc(func(e resource.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "resource", e.Resource)
//	})
//	r := resource.MustNew(eng, resource.WithDiagnostics(handler))
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(r *Registrar) { r.diagnostics = h }
}

// WithErrorHandler sets the error boundary invoked when a filter, loader,
// or handler returns an error. The default writes a 500 with the error
// message in the {"error": ...} envelope.
func WithErrorHandler(fn func(c *Context, err error)) Option {
	return func(r *Registrar) {
		if fn != nil {
			r.errorHandler = fn
		}
	}
}

// WithDefaultSerializer sets the serializer used when no filter selected
// one for the request. The built-in default is JSON.
func WithDefaultSerializer(s Serializer) Option {
	return func(r *Registrar) { r.defaultSerializer = s }
}

// WithDefaultContentType sets the content type announced for serializers
// that do not declare one. Defaults to application/json.
func WithDefaultContentType(ct string) Option {
	return func(r *Registrar) {
		if ct != "" {
			r.defaultContentType = ct
		}
	}
}
