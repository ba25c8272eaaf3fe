// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package backend

import (
	"fmt"
	"slices"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Backend)
)

// Register makes a backend available by its architecture name.  This is
// intended to be called from the init function of a backend package, and
// panics if the architecture is already registered.
func Register(b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	//
	if _, ok := registry[b.Arch()]; ok {
		panic(fmt.Sprintf("backend %s registered twice", b.Arch()))
	}
	//
	registry[b.Arch()] = b
}

// Lookup returns the backend registered for a given architecture.
func Lookup(arch string) (Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	//
	if b, ok := registry[arch]; ok {
		return b, nil
	}
	//
	return nil, fmt.Errorf("unknown architecture \"%s\" (available: %v)", arch, arches())
}

// Arches returns the names of all registered architectures, in sorted order.
func Arches() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	//
	return arches()
}

func arches() []string {
	var names []string
	//
	for name := range registry {
		names = append(names, name)
	}
	//
	slices.Sort(names)
	//
	return names
}
