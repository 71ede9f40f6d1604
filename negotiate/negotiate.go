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

import (
	"fmt"
	"net/http"

	"github.com/rested-dev/rested/resource"
)

// FilterName is the conventional install name for the format filter.
// Installing under one name keeps repeated installs idempotent:
//
//	r.Use(negotiate.FilterName, negotiate.Format())
const FilterName = "negotiate.format"

// Format builds the content-negotiation filter. It inspects the "format"
// parameter of the matched route and, when present, selects the response
// serializer and content type for this request. An unknown format token
// aborts the request with 404 before any loader or handler runs.
//
// Without a format token the filter leaves the serializer untouched; with
// WithPassthrough it installs a pass-through serializer instead.
func Format(opts ...Option) resource.FilterFunc {
	cfg := &config{formats: defaultFormats()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *resource.Context) error {
		token := c.Format()
		if token == "" {
			if cfg.passthrough {
				c.SetSerializer(Passthrough{})
			}
			return nil
		}

		s, ok := cfg.formats[token]
		if !ok {
			if cfg.metrics != nil {
				cfg.metrics.unknown.Inc()
			}
			c.Abort(http.StatusNotFound, map[string]any{
				"error": fmt.Sprintf("unknown response format %q", token),
			})
			return nil
		}

		if cfg.metrics != nil {
			cfg.metrics.negotiated.WithLabelValues(token).Inc()
		}
		c.SetSerializer(s)
		if ct := s.ContentType(); ct != "" {
			c.Header("Content-Type", ct)
		}
		return nil
	}
}

// defaultFormats is the default token-to-serializer table.
func defaultFormats() map[string]resource.Serializer {
	return map[string]resource.Serializer{
		"json":    JSON{},
		"yml":     YAML{},
		"xml":     XML{},
		"toml":    TOML{},
		"msgpack": MsgPack{},
		"dump":    Dump{},
	}
}
