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
)

// Params holds the URL parameters extracted by the route engine for one
// matched request, keyed by placeholder name without the leading colon.
type Params map[string]string

// FormatParam is the parameter name carrying the trailing format token of
// a matched .:format route variant.
const FormatParam = "format"

// Responder is implemented by payloads that carry their own status code,
// such as the responders in the status package. The runtime unwraps it
// before serialization.
type Responder interface {
	StatusCode() int
	Body() any
}

// Context is the per-request state threaded through filters, loaders, and
// handlers. A Context is bound to a single request and must not be retained
// after the handler returns or shared across goroutines.
type Context struct {
	Request  *http.Request
	Response http.ResponseWriter

	params             Params
	loaded             any
	serializer         Serializer
	defaultContentType string
	status             int
	aborted            bool
	wrote              bool
	logger             *slog.Logger
}

// Param returns the URL parameter for the given placeholder name, or an
// empty string if the matched route has no such parameter.
func (c *Context) Param(name string) string {
	return c.params[name]
}

// Params returns all URL parameters of the matched route.
func (c *Context) Params() Params {
	return c.params
}

// Format returns the format token of the matched route, or an empty string
// when the route carries no .:format segment.
func (c *Context) Format() string {
	return c.params[FormatParam]
}

// Loaded returns the result of the resource's load (instance routes) or
// loadAll (index and collection routes) callback. It is nil for create
// routes and for resources declared without a loader.
func (c *Context) Loaded() any {
	return c.loaded
}

// Serializer returns the serializer currently selected for the response.
func (c *Context) Serializer() Serializer {
	return c.serializer
}

// SetSerializer replaces the response serializer for this request only.
func (c *Context) SetSerializer(s Serializer) {
	c.serializer = s
}

// Status sets the status code written with the response. Payloads
// implementing Responder take precedence.
func (c *Context) Status(code int) {
	c.status = code
}

// Header sets a response header.
func (c *Context) Header(key, value string) {
	c.Response.Header().Set(key, value)
}

// Abort writes payload with the given status code and stops the request:
// no later filter, loader, or handler runs. The payload goes through the
// currently selected serializer.
func (c *Context) Abort(code int, payload any) {
	c.aborted = true
	c.status = code
	_ = c.write(payload)
}

// IsAborted reports whether a filter or handler aborted the request.
func (c *Context) IsAborted() bool {
	return c.aborted
}

// Logger returns the registrar's logger for request-scoped logging.
func (c *Context) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// write serializes v to the response. Responder payloads override the
// status code and payload body; 204/304 and nil payloads produce no body.
func (c *Context) write(v any) error {
	if c.wrote {
		return nil
	}
	c.wrote = true

	code := c.status
	if code == 0 {
		code = http.StatusOK
	}
	if r, ok := v.(Responder); ok {
		code = r.StatusCode()
		v = r.Body()
	}

	s := c.serializer
	if s == nil {
		s = jsonSerializer{}
	}
	if c.Response.Header().Get("Content-Type") == "" {
		ct := s.ContentType()
		if ct == "" {
			ct = c.defaultContentType
		}
		if ct != "" {
			c.Response.Header().Set("Content-Type", ct)
		}
	}
	c.Response.WriteHeader(code)

	if v == nil || code == http.StatusNoContent || code == http.StatusNotModified {
		return nil
	}
	return s.Encode(c.Response, v)
}
