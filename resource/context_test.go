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
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainSerializer writes the payload with fmt-style formatting and no
// declared content type, to exercise the default content-type fallback.
type plainSerializer struct{}

func (plainSerializer) ContentType() string { return "" }
func (plainSerializer) Encode(w io.Writer, v any) error {
	_, err := io.WriteString(w, v.(string))
	return err
}

// TestParamAccessors tests Param, Params, and Format
func TestParamAccessors(t *testing.T) {
	t.Parallel()
	c := &Context{params: Params{"user_id": "9", "format": "json"}}

	assert.Equal(t, "9", c.Param("user_id"))
	assert.Equal(t, "json", c.Format())
	assert.Equal(t, Params{"user_id": "9", "format": "json"}, c.Params())
	assert.Empty(t, c.Param("missing"))
}

// TestDefaultSerializerOption tests the registrar-wide serializer override
func TestDefaultSerializerOption(t *testing.T) {
	t.Parallel()
	ns := NewNamespace().Register("index_users", func(*Context) (any, error) {
		return "plain text", nil
	})
	r := MustNew(nopEngine{},
		WithNamespace(ns),
		WithDefaultSerializer(plainSerializer{}),
		WithDefaultContentType("text/plain"),
	)
	require.NoError(t, r.Resource("users"))

	e := findRoute(t, r, "GET", "/users")
	w := invoke(e, "GET", "/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plain text", w.Body.String())
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
}

// TestExplicitStatus tests Context.Status without a Responder payload
func TestExplicitStatus(t *testing.T) {
	t.Parallel()
	ns := NewNamespace().Register("create_user", func(c *Context) (any, error) {
		c.Status(http.StatusAccepted)
		return map[string]bool{"queued": true}, nil
	})
	r := MustNew(nopEngine{}, WithNamespace(ns))
	require.NoError(t, r.Resource("users"))

	e := findRoute(t, r, "POST", "/users")
	w := invoke(e, "POST", "/users", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"queued":true}`, w.Body.String())
}

// TestNilPayloadWritesNoBody tests that handlers may decline to respond
// with a body
func TestNilPayloadWritesNoBody(t *testing.T) {
	t.Parallel()
	ns := NewNamespace().Register("delete_user", func(*Context) (any, error) {
		return nil, nil
	})
	r := MustNew(nopEngine{}, WithNamespace(ns))
	require.NoError(t, r.Resource("users"))

	e := findRoute(t, r, "DELETE", "/users/:user_id")
	w := invoke(e, "DELETE", "/users/1", Params{"user_id": "1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

// TestAbortWritesOnce tests that a write after Abort is suppressed
func TestAbortWritesOnce(t *testing.T) {
	t.Parallel()
	ns := NewNamespace().Register("read_user", func(c *Context) (any, error) {
		c.Abort(http.StatusGone, map[string]string{"error": "gone"})
		return map[string]string{"never": "written"}, nil
	})
	r := MustNew(nopEngine{}, WithNamespace(ns))
	require.NoError(t, r.Resource("users"))

	e := findRoute(t, r, "GET", "/users/:user_id")
	w := invoke(e, "GET", "/users/1", Params{"user_id": "1"})

	assert.Equal(t, http.StatusGone, w.Code)
	assert.JSONEq(t, `{"error":"gone"}`, w.Body.String())
}
