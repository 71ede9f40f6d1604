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

import "errors"

var (
	// ErrNilEngine indicates that the registrar was constructed without a route engine.
	ErrNilEngine = errors.New("engine is nil")

	// ErrInflect indicates that a singular name could not be derived for a resource.
	ErrInflect = errors.New("cannot derive singular name")

	// ErrUnknownParent indicates that a resource names a parent that has not been registered.
	ErrUnknownParent = errors.New("parent resource not registered")

	// ErrNilHandler indicates that a nil handler was registered in a namespace.
	ErrNilHandler = errors.New("handler is nil")
)
