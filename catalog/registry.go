/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package catalog

import (
	"sort"
	"sync"

	"github.com/tomoncle/coded/types"
)

var defaultRegistry = NewRegistry()

// Registry stores enumerations by name and lists them in name order.
type Registry interface {
	Register(e *types.Enumeration) error
	Lookup(name string) (*types.Enumeration, error)
	Resolve(name string, key any) (*types.Member, error)
	Enumerations() []*types.Enumeration
}

type registry struct {
	enums map[string]*types.Enumeration
	mutex sync.RWMutex
}

func NewRegistry() Registry {
	return &registry{
		enums: make(map[string]*types.Enumeration),
	}
}

// Register adds e. Registering the same enumeration twice is a no-op; a
// different enumeration under a taken name is a DuplicateKey error.
func (r *registry) Register(e *types.Enumeration) error {
	if e == nil {
		return &types.Error{Kind: types.InvalidDeclarationErr, Msg: "cannot register a nil enumeration"}
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if prev, ok := r.enums[e.Name()]; ok {
		if prev == e {
			return nil
		}
		return &types.Error{Kind: types.DuplicateKeyErr, Enum: e.Name(), Key: e.Name(), Msg: "enumeration already registered"}
	}
	r.enums[e.Name()] = e
	return nil
}

func (r *registry) Lookup(name string) (*types.Enumeration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if e, ok := r.enums[name]; ok {
		return e, nil
	}
	return nil, &types.Error{Kind: types.NotFoundErr, Enum: name, Key: name, Msg: "enumeration is not registered"}
}

// Resolve looks up the enumeration called name and resolves key in it.
func (r *registry) Resolve(name string, key any) (*types.Member, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Resolve(key)
}

func (r *registry) Enumerations() []*types.Enumeration {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*types.Enumeration, 0, len(r.enums))
	for _, e := range r.enums {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// DefaultRegistry returns the process-wide registry used by the package
// level helpers.
func DefaultRegistry() Registry {
	return defaultRegistry
}

func Register(e *types.Enumeration) error {
	return defaultRegistry.Register(e)
}

// MustRegister registers e in the default registry and returns it, so it
// can wrap types.MustDefine in a package-level var.
func MustRegister(e *types.Enumeration) *types.Enumeration {
	if err := defaultRegistry.Register(e); err != nil {
		panic(err)
	}
	return e
}

func Lookup(name string) (*types.Enumeration, error) {
	return defaultRegistry.Lookup(name)
}

func Resolve(name string, key any) (*types.Member, error) {
	return defaultRegistry.Resolve(name, key)
}
