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

package negotiate

import "github.com/rested-dev/rested/resource"

// config is the assembled filter configuration.
type config struct {
	formats     map[string]resource.Serializer
	passthrough bool
	metrics     *filterMetrics
}

// Option configures the format filter.
type Option func(*config)

// WithFormat adds or overrides a format token in the lookup table.
//
// Example:
//
//	negotiate.Format(negotiate.WithFormat("csv", csvSerializer{}))
func WithFormat(token string, s resource.Serializer) Option {
	return func(cfg *config) { cfg.formats[token] = s }
}

// WithoutFormat removes a format token from the lookup table, making
// requests for it 404.
func WithoutFormat(token string) Option {
	return func(cfg *config) { delete(cfg.formats, token) }
}

// WithPassthrough makes the filter install a pass-through serializer when
// the matched route carries no format token, instead of leaving the
// default serializer in place. This mirrors the permissive historical
// behavior.
func WithPassthrough() Option {
	return func(cfg *config) { cfg.passthrough = true }
}
