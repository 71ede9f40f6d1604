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
	"encoding/json"
	"io"
)

// Serializer turns a handler's payload into response bytes. The negotiate
// package ships implementations for the common formats; anything satisfying
// this interface can be installed per request or as the registrar default.
type Serializer interface {
	// ContentType returns the MIME type announced for encoded payloads.
	// An empty string defers to the registrar's default content type.
	ContentType() string

	// Encode writes the serialized payload to w.
	Encode(w io.Writer, v any) error
}

// jsonSerializer is the built-in default: plain encoding/json with a
// trailing newline, matching what json.Encoder produces.
type jsonSerializer struct{}

func (jsonSerializer) ContentType() string { return "application/json" }

func (jsonSerializer) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
