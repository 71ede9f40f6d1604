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

// Package resource compiles declarative resource descriptions into REST
// route tables on an external route-matching engine.
//
// One Resource call produces the full CRUD+index surface for a named
// resource, resolves each verb's handler by naming convention against an
// explicit handler namespace, nests child resources under their parent's
// instance path, and doubles every route with a ".:format" variant for
// URL-driven content negotiation (see the negotiate package).
//
//	mux := chi.NewRouter()
//	ns := resource.NewNamespace().
//	    Register("index_users", listUsers).
//	    Register("read_user", showUser).
//	    Register("create_user", createUser)
//
//	r := resource.MustNew(chiengine.New(mux), resource.WithNamespace(ns))
//	r.Use("negotiate.format", negotiate.Format())
//	r.MustResource("users", resource.WithLoad(loadUser), resource.WithMember("posts"))
//	r.MustResource("posts", resource.WithParent("users"))
//
// Declarations are a startup-time, single-threaded affair. The compiled
// table is immutable afterwards and safe for concurrent request traffic.
package resource
