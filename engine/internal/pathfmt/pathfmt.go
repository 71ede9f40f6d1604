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

// Package pathfmt extracts the trailing format token from a request path
// for route engines whose parameters always span a whole segment (echo,
// gin). Such engines cannot match "/users/:user_id.:format" natively, so
// their adapters rewrite "/users/1.json" to "/users/1" before routing and
// stash the stripped token on the request context.
package pathfmt

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// Split separates a trailing ".token" from the final segment of path.
// The token must be non-empty and alphanumeric; otherwise the path is
// returned unchanged with an empty token.
func Split(path string) (base, token string) {
	slash := strings.LastIndexByte(path, '/')
	dot := strings.LastIndexByte(path, '.')
	if dot <= slash+1 || dot == len(path)-1 {
		return path, ""
	}
	token = path[dot+1:]
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return path, ""
	}
	return path[:dot], token
}

// Stash returns a request carrying the stripped format token.
func Stash(r *http.Request, token string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, token))
}

// From returns the token stashed by Stash, or an empty string.
func From(r *http.Request) string {
	token, _ := r.Context().Value(ctxKey{}).(string)
	return token
}
