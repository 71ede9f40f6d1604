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

// Package negotiate selects a response serializer from the trailing
// format token of a matched route: /users/1.json renders JSON,
// /users/1.yml renders YAML, and an unregistered token is rejected with
// 404 before the handler runs.
//
// The default table maps json, yml, xml, toml, msgpack, and dump to the
// serializers in this package; WithFormat extends it. Install once per
// registrar:
//
//	r.Use(negotiate.FilterName, negotiate.Format())
package negotiate
