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

// DiagnosticKind classifies registration-time diagnostics.
type DiagnosticKind string

const (
	// DiagnosticUnknownParent is emitted when a resource names a parent
	// that is not registered and the declaration falls back to top level.
	DiagnosticUnknownParent DiagnosticKind = "unknown_parent"

	// DiagnosticDuplicateResource is emitted when a resource name is
	// declared twice; the later declaration overwrites the registry entry.
	DiagnosticDuplicateResource DiagnosticKind = "duplicate_resource"

	// DiagnosticUnresolvedHandler is emitted when no handler name matched
	// and a route was bound to the method-not-allowed responder.
	DiagnosticUnresolvedHandler DiagnosticKind = "unresolved_handler"
)

// DiagnosticEvent is an optional informational event emitted while
// compiling resource declarations. The compiler functions correctly
// whether diagnostics are collected or not.
type DiagnosticEvent struct {
	Kind     DiagnosticKind
	Resource string
	Message  string
	Fields   map[string]any
}

// DiagnosticHandler receives registration-time diagnostic events.
type DiagnosticHandler interface {
	HandleDiagnostic(e DiagnosticEvent)
}

// DiagnosticHandlerFunc adapts a function to the DiagnosticHandler interface.
type DiagnosticHandlerFunc func(e DiagnosticEvent)

// HandleDiagnostic calls f(e).
func (f DiagnosticHandlerFunc) HandleDiagnostic(e DiagnosticEvent) { f(e) }
