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

package echoengine

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rested-dev/rested/negotiate"
	"github.com/rested-dev/rested/resource"
)

// newStack wires an echo instance with the format filter and a users
// resource. Echo cannot express the ".:format" path variants directly;
// the adapter's pre-routing rewrite covers them instead.
func newStack(t *testing.T) *echo.Echo {
	t.Helper()

	ns := resource.NewNamespace().
		Register("read_user", func(c *resource.Context) (any, error) {
			return map[string]string{"id": c.Param("user_id")}, nil
		}).
		Register("index_users", func(*resource.Context) (any, error) {
			return []string{"1", "2"}, nil
		})

	e := echo.New()
	r := resource.MustNew(New(e), resource.WithNamespace(ns))
	r.Use(negotiate.FilterName, negotiate.Format())
	r.MustResource("users")
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

// TestReadRoute tests plain segment matching with echo params
func TestReadRoute(t *testing.T) {
	t.Parallel()
	e := newStack(t)

	w := get(e, "/users/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

// TestFormatRewrite tests that ".json" is split off before routing and
// still reaches the negotiation filter as the format token.
func TestFormatRewrite(t *testing.T) {
	t.Parallel()
	e := newStack(t)

	w := get(e, "/users/1.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

// TestFormatRewriteOnStaticPath tests the rewrite on the index path
func TestFormatRewriteOnStaticPath(t *testing.T) {
	t.Parallel()
	e := newStack(t)

	w := get(e, "/users.yml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-yaml", w.Header().Get("Content-Type"))
}

// TestUnknownFormatRejected tests that a stripped unknown token is still
// rejected by the filter rather than matching as an id.
func TestUnknownFormatRejected(t *testing.T) {
	t.Parallel()
	e := newStack(t)

	w := get(e, "/users/1.foo")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestRewriteInertWithoutFormatRoutes tests that disabling format route
// variants leaves request paths untouched.
func TestRewriteInertWithoutFormatRoutes(t *testing.T) {
	t.Parallel()
	ns := resource.NewNamespace().
		Register("read_user", func(c *resource.Context) (any, error) {
			return map[string]string{"id": c.Param("user_id")}, nil
		})

	e := echo.New()
	r := resource.MustNew(New(e),
		resource.WithNamespace(ns),
		resource.WithoutFormatRoutes())
	r.MustResource("users")

	// The dotted segment now matches as a literal id.
	w := get(e, "/users/1.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"1.json"}`, w.Body.String())
}

// TestUnhandledVerbIs405 tests the method-not-allowed fallback through echo
func TestUnhandledVerbIs405(t *testing.T) {
	t.Parallel()
	e := newStack(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed."}`, w.Body.String())
}
