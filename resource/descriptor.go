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

// Descriptor describes one declared resource. It is assembled from the
// options passed to Registrar.Resource and is immutable once the
// declaration returns.
type Descriptor struct {
	// Name is the plural, public identifier ("users"). It becomes the
	// first path segment of every route the resource owns.
	Name string

	// Singular is derived from Name through the registrar's inflector
	// unless overridden with WithSingular.
	Singular string

	// Params is the ordered list of parameter names composing the
	// resource's path key. It defaults to [Singular] and is never empty
	// after resolution.
	Params []string

	// Member lists sub-resources attached to a single instance
	// (/users/:user_id/posts).
	Member []string

	// Collection lists sub-resources attached to the resource as a whole
	// (/users/search).
	Collection []string

	// Parent optionally names another resource to nest under. The parent
	// must already be registered for nesting to take effect.
	Parent string

	// Load runs before read, update, delete, and member handlers; its
	// result reaches the handler through Context.Loaded.
	Load LoaderFunc

	// LoadAll runs before index and collection handlers.
	LoadAll LoaderFunc
}

// ResourceOption configures one resource declaration.
type ResourceOption func(*Descriptor)

// WithSingular overrides the inflected singular name.
func WithSingular(singular string) ResourceOption {
	return func(d *Descriptor) { d.Singular = singular }
}

// WithParams replaces the default single-id path key with the given
// ordered parameter names, supporting composite keys:
//
//	r.MustResource("versions", resource.WithParams("project", "version"))
//	// GET /versions/:project_id/:version_id
func WithParams(names ...string) ResourceOption {
	return func(d *Descriptor) { d.Params = append([]string(nil), names...) }
}

// WithMember attaches instance-scoped sub-resources. Repeated use appends.
func WithMember(names ...string) ResourceOption {
	return func(d *Descriptor) { d.Member = append(d.Member, names...) }
}

// WithCollection attaches collection-scoped sub-resources. Repeated use appends.
func WithCollection(names ...string) ResourceOption {
	return func(d *Descriptor) { d.Collection = append(d.Collection, names...) }
}

// WithParent nests this resource's routes under the named resource's
// instance path.
func WithParent(name string) ResourceOption {
	return func(d *Descriptor) { d.Parent = name }
}

// WithLoad sets the instance loader.
func WithLoad(fn LoaderFunc) ResourceOption {
	return func(d *Descriptor) { d.Load = fn }
}

// WithLoadAll sets the collection loader.
func WithLoadAll(fn LoaderFunc) ResourceOption {
	return func(d *Descriptor) { d.LoadAll = fn }
}
