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

// Package echoengine registers compiled resource routes on a labstack
// echo instance.
//
// Echo parameters span whole path segments, so ".:format" variants are
// not registered as separate echo routes. Instead a pre-routing rewrite
// (echo.Pre) splits a trailing ".token" off the final segment, stashes it
// as the format parameter, and lets the base route match. Unknown tokens
// still reach the negotiation filter and are rejected there.
package echoengine

import (
	"github.com/labstack/echo/v4"

	"github.com/rested-dev/rested/engine/internal/pathfmt"
	"github.com/rested-dev/rested/resource"
)

// Engine adapts an echo instance to the resource.Engine interface.
type Engine struct {
	echo      *echo.Echo
	rewriting bool
}

// New wraps an existing echo instance and installs the pre-routing
// format rewrite. The rewrite stays inert until a format route variant
// is registered.
func New(e *echo.Echo) *Engine {
	eng := &Engine{echo: e}
	e.Pre(eng.stripFormat)
	return eng
}

// Handle registers one compiled route entry. Format variants only arm
// the rewrite; the base route carries the handler.
func (e *Engine) Handle(entry resource.RouteEntry) {
	if entry.HasFormat {
		e.rewriting = true
		return
	}
	e.echo.Add(entry.Method, entry.Path, func(c echo.Context) error {
		params := make(resource.Params, len(c.ParamNames())+1)
		for _, name := range c.ParamNames() {
			params[name] = c.Param(name)
		}
		if token := pathfmt.From(c.Request()); token != "" {
			params[resource.FormatParam] = token
		}
		entry.Handler(c.Response(), c.Request(), params)
		return nil
	})
}

// stripFormat is the pre-routing rewrite splitting the format token off
// the request path.
func (e *Engine) stripFormat(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !e.rewriting {
			return next(c)
		}
		req := c.Request()
		if base, token := pathfmt.Split(req.URL.Path); token != "" {
			req.URL.Path = base
			c.SetRequest(pathfmt.Stash(req, token))
		}
		return next(c)
	}
}
