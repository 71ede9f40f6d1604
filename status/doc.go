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

// Package status provides one responder per standard HTTP status code.
//
// A handler returns status.Created(user) (or any other responder) instead
// of a bare payload when it needs a non-200 status. Error responders
// (4xx/5xx) wrap the payload as {"error": payload} on the wire.
//
// Example:
//
//	ns.Register("create_user", func(c *resource.Context) (any, error) {
//	    u := store.Create(c.Param("user_id"))
//	    return status.Created(u), nil
//	})
package status
