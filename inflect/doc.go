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

// Package inflect provides the default word inflector used by the resource
// compiler to derive singular parameter names from plural resource names.
//
// The resource package accepts any func(string) (string, error); this
// package is only the default wiring. Swap it out with
// resource.WithInflector when your resource names do not follow English
// pluralization rules.
package inflect
