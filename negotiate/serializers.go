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
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// JSON serializes payloads with encoding/json.
type JSON struct{}

func (JSON) ContentType() string { return "application/json" }

func (JSON) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// YAML serializes payloads with gopkg.in/yaml.v3.
type YAML struct{}

func (YAML) ContentType() string { return "text/x-yaml" }

func (YAML) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// XML serializes payloads with encoding/xml. Payloads must be
// xml-marshalable (structs, not maps).
type XML struct{}

func (XML) ContentType() string { return "application/xml" }

func (XML) Encode(w io.Writer, v any) error {
	enc := xml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// TOML serializes payloads with github.com/BurntSushi/toml.
type TOML struct{}

func (TOML) ContentType() string { return "application/toml" }

func (TOML) Encode(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}

// MsgPack serializes payloads with github.com/vmihailenco/msgpack.
type MsgPack struct{}

func (MsgPack) ContentType() string { return "application/msgpack" }

func (MsgPack) Encode(w io.Writer, v any) error {
	return msgpack.NewEncoder(w).Encode(v)
}

// Dump writes a go-spew debug rendering of the payload, for the "dump"
// development format.
type Dump struct{}

func (Dump) ContentType() string { return "text/plain" }

func (Dump) Encode(w io.Writer, v any) error {
	spew.Fdump(w, v)
	return nil
}

// Passthrough writes string and []byte payloads verbatim and everything
// else through fmt. Its empty content type defers to the registrar's
// default.
type Passthrough struct{}

func (Passthrough) ContentType() string { return "" }

func (Passthrough) Encode(w io.Writer, v any) error {
	switch val := v.(type) {
	case []byte:
		_, err := w.Write(val)
		return err
	case string:
		_, err := io.WriteString(w, val)
		return err
	default:
		_, err := fmt.Fprint(w, val)
		return err
	}
}
