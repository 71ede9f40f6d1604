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

// Package chiengine registers compiled resource routes on a
// go-chi/chi mux. chi matches parameters with static prefixes inside a
// single segment, so ".:format" variants map directly onto native
// "{param}.{format}" patterns.
package chiengine

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/rested-dev/rested/resource"
)

// placeholder matches one ":name" token of a compiled path template.
var placeholder = regexp.MustCompile(`:(\w+)`)

// Engine adapts a chi router to the resource.Engine interface.
type Engine struct {
	mux chi.Router
}

// New wraps an existing chi router.
//
// Example:
//
//	mux := chi.NewRouter()
//	r := resource.MustNew(chiengine.New(mux))
func New(mux chi.Router) *Engine {
	return &Engine{mux: mux}
}

// Handle registers one compiled route entry on the chi mux.
func (e *Engine) Handle(entry resource.RouteEntry) {
	pattern := placeholder.ReplaceAllString(entry.Path, "{$1}")
	e.mux.MethodFunc(entry.Method, pattern, func(w http.ResponseWriter, r *http.Request) {
		entry.Handler(w, r, urlParams(r))
	})
}

// urlParams copies chi's matched parameters into resource.Params.
func urlParams(r *http.Request) resource.Params {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	params := make(resource.Params, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
