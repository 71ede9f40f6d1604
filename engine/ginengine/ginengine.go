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

// Package ginengine registers compiled resource routes on a gin engine.
//
// Like echo, gin parameters span whole path segments, and gin has no
// pre-routing rewrite hook, so the adapter exposes Handler: an
// http.Handler that splits a trailing ".token" off the final path
// segment before handing the request to gin. Serve Handler() instead of
// the gin engine when format routes are in use.
package ginengine

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rested-dev/rested/engine/internal/pathfmt"
	"github.com/rested-dev/rested/resource"
)

// Engine adapts a gin engine to the resource.Engine interface.
type Engine struct {
	gin       *gin.Engine
	rewriting bool
}

// New wraps an existing gin engine.
//
// Example:
//
//	g := gin.New()
//	eng := ginengine.New(g)
//	r := resource.MustNew(eng)
//	r.MustResource("users")
//	http.ListenAndServe(":8080", eng.Handler())
func New(g *gin.Engine) *Engine {
	return &Engine{gin: g}
}

// Handle registers one compiled route entry. Format variants only arm
// the pre-routing rewrite; the base route carries the handler.
func (e *Engine) Handle(entry resource.RouteEntry) {
	if entry.HasFormat {
		e.rewriting = true
		return
	}
	e.gin.Handle(entry.Method, entry.Path, func(c *gin.Context) {
		params := make(resource.Params, len(c.Params)+1)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}
		if token := pathfmt.From(c.Request); token != "" {
			params[resource.FormatParam] = token
		}
		entry.Handler(c.Writer, c.Request, params)
	})
}

// Handler returns the gin engine wrapped with the format-stripping
// rewrite. The wrapper is a no-op until a format route variant has been
// registered.
func (e *Engine) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e.rewriting {
			if base, token := pathfmt.Split(r.URL.Path); token != "" {
				r = pathfmt.Stash(r, token)
				u := *r.URL
				u.Path = base
				r.URL = &u
			}
		}
		e.gin.ServeHTTP(w, r)
	})
}
