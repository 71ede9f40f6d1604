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
	"sort"
)

// HandlerFunc is a resource handler. It receives the per-request Context
// (carrying URL parameters and the load/loadAll result) and returns the
// payload to serialize. Returning a status.Response-style Responder sets
// the status code; returning an error hands the request to the registrar's
// error handler unchanged.
type HandlerFunc func(c *Context) (any, error)

// LoaderFunc fetches the entity (load) or entity set (loadAll) a handler
// operates on. It runs before the handler; its result is available through
// Context.Loaded.
type LoaderFunc func(c *Context) (any, error)

// Namespace is the explicit handler registry the compiler resolves
// convention-derived names against. Handlers are registered once at
// startup under names like "read_user" or "create_user_posts"; resolution
// happens at registration time only, never per request.
//
// Namespace is not synchronized: populate it before declaring resources,
// from a single goroutine.
type Namespace struct {
	funcs map[string]HandlerFunc
}

// NewNamespace returns an empty handler namespace.
func NewNamespace() *Namespace {
	return &Namespace{funcs: make(map[string]HandlerFunc)}
}

// Register binds a handler under the given name, replacing any previous
// binding. It returns the namespace for chaining and panics on a nil
// handler, which is always a programming error.
//
// Example:
//
//	ns := resource.NewNamespace().
//	    Register("index_users", listUsers).
//	    Register("read_user", showUser)
func (ns *Namespace) Register(name string, fn HandlerFunc) *Namespace {
	if fn == nil {
		panic(fmt.Sprintf("resource: Register(%q): %v", name, ErrNilHandler))
	}
	ns.funcs[name] = fn
	return ns
}

// Lookup returns the handler registered under name.
func (ns *Namespace) Lookup(name string) (HandlerFunc, bool) {
	fn, ok := ns.funcs[name]
	return fn, ok
}

// Resolve returns the first registered handler among candidates, along
// with the name it was found under. Resolution is a pure function of the
// namespace contents and the candidate order.
func (ns *Namespace) Resolve(candidates ...string) (HandlerFunc, string, bool) {
	for _, name := range candidates {
		if fn, ok := ns.funcs[name]; ok {
			return fn, name, true
		}
	}
	return nil, "", false
}

// Names returns all registered handler names, sorted.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.funcs))
	for name := range ns.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
