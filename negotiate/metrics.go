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

import "github.com/prometheus/client_golang/prometheus"

// filterMetrics holds the negotiation counters.
type filterMetrics struct {
	negotiated *prometheus.CounterVec
	unknown    prometheus.Counter
}

// WithMetrics registers negotiation counters with the given registerer:
// requests by negotiated format and rejected unknown-format requests.
//
// Example:
//
//	negotiate.Format(negotiate.WithMetrics(prometheus.DefaultRegisterer))
func WithMetrics(reg prometheus.Registerer) Option {
	return func(cfg *config) {
		m := &filterMetrics{
			negotiated: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "rested_negotiate_requests_total",
				Help: "Requests by negotiated response format.",
			}, []string{"format"}),
			unknown: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "rested_negotiate_unknown_format_total",
				Help: "Requests rejected with 404 for an unknown format token.",
			}),
		}
		reg.MustRegister(m.negotiated, m.unknown)
		cfg.metrics = m
	}
}
