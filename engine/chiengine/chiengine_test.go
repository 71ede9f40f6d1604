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

package chiengine

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rested-dev/rested/negotiate"
	"github.com/rested-dev/rested/resource"
	"github.com/rested-dev/rested/status"
)

// newStack wires a chi mux, the format filter, and a users resource with
// read/index/create handlers plus an avatar member and a search
// collection.
func newStack(t *testing.T) *chi.Mux {
	t.Helper()

	ns := resource.NewNamespace().
		Register("read_user", func(c *resource.Context) (any, error) {
			return c.Loaded(), nil
		}).
		Register("index_users", func(*resource.Context) (any, error) {
			return []string{"1", "2"}, nil
		}).
		Register("create_user", func(c *resource.Context) (any, error) {
			if c.Loaded() != nil {
				t.Error("create must not receive a load result")
			}
			return status.Created(map[string]string{"id": "3"}), nil
		}).
		Register("read_user_avatar", func(c *resource.Context) (any, error) {
			return map[string]any{"owner": c.Loaded()}, nil
		}).
		Register("read_users_search", func(*resource.Context) (any, error) {
			return []string{"match"}, nil
		})

	mux := chi.NewRouter()
	r := resource.MustNew(New(mux), resource.WithNamespace(ns))
	r.Use(negotiate.FilterName, negotiate.Format())
	r.MustResource("users",
		resource.WithLoad(func(c *resource.Context) (any, error) {
			return map[string]string{"id": c.Param("user_id")}, nil
		}),
		resource.WithMember("avatar"),
		resource.WithCollection("search"),
	)
	return mux
}

// get runs one request through the mux.
func get(mux *chi.Mux, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

// TestReadRoute tests GET on the instance path with the load result
func TestReadRoute(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

// TestReadRouteJSONFormat tests the native {param}.{format} pattern
func TestReadRouteJSONFormat(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users/1.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

// TestReadRouteYAMLFormat tests serializer switching by token
func TestReadRouteYAMLFormat(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users/1.yml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-yaml", w.Header().Get("Content-Type"))
	assert.Equal(t, "id: \"1\"\n", w.Body.String())
}

// TestUnknownFormat404 tests rejection before the handler runs
func TestUnknownFormat404(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users/1.foo")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestIndexWithFormat tests the static-segment format variant /users.json
func TestIndexWithFormat(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["1","2"]`, w.Body.String())
}

// TestCreateRoute tests POST at the collection root
func TestCreateRoute(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodPost, "/users")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"3"}`, w.Body.String())
}

// TestUnhandledVerbIs405 tests the generated method-not-allowed fallback
func TestUnhandledVerbIs405(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodPut, "/users/1")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed."}`, w.Body.String())
}

// TestMemberRoute tests the instance-scoped sub-resource with load
func TestMemberRoute(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users/7/avatar")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"owner":{"id":"7"}}`, w.Body.String())
}

// TestCollectionRoute tests the collection-scoped sub-resource
func TestCollectionRoute(t *testing.T) {
	t.Parallel()
	mux := newStack(t)

	w := get(mux, http.MethodGet, "/users/search")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["match"]`, w.Body.String())
}

// TestNestedResource tests parent composition end to end
func TestNestedResource(t *testing.T) {
	t.Parallel()
	ns := resource.NewNamespace().
		Register("read_post", func(c *resource.Context) (any, error) {
			return map[string]string{
				"user": c.Param("user_id"),
				"post": c.Param("post_id"),
			}, nil
		})

	mux := chi.NewRouter()
	r := resource.MustNew(New(mux), resource.WithNamespace(ns))
	r.MustResource("users")
	r.MustResource("posts", resource.WithParent("users"))

	w := get(mux, http.MethodGet, "/users/5/posts/9")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"5","post":"9"}`, w.Body.String())
}

// TestParamsReachHandlers tests the chi URL-parameter translation
func TestParamsReachHandlers(t *testing.T) {
	t.Parallel()
	ns := resource.NewNamespace().
		Register("read_build", func(c *resource.Context) (any, error) {
			return c.Params(), nil
		})

	mux := chi.NewRouter()
	r := resource.MustNew(New(mux), resource.WithNamespace(ns))
	require.NoError(t, r.Resource("builds",
		resource.WithSingular("build"),
		resource.WithParams("project", "number")))

	w := get(mux, http.MethodGet, "/builds/site/42")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"project_id":"site","number_id":"42"}`, w.Body.String())
}
