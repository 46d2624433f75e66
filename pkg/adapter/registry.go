// Copyright 2026 cloudygreybeard
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

// Package adapter provides the registry for import and export adapters.
package adapter

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cloudygreybeard/dirfavs/pkg/input"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
)

var (
	inputsMu  sync.RWMutex
	inputs    = make(map[string]input.Adapter)
	outputsMu sync.RWMutex
	outputs   = make(map[string]output.Adapter)
)

// RegisterInput registers an input adapter.
func RegisterInput(adapter input.Adapter) {
	inputsMu.Lock()
	defer inputsMu.Unlock()
	inputs[adapter.Name()] = adapter
}

// RegisterOutput registers an output adapter.
func RegisterOutput(adapter output.Adapter) {
	outputsMu.Lock()
	defer outputsMu.Unlock()
	outputs[adapter.Name()] = adapter
}

// GetInput returns an input adapter by name.
func GetInput(name string) (input.Adapter, bool) {
	inputsMu.RLock()
	defer inputsMu.RUnlock()
	a, ok := inputs[name]
	return a, ok
}

// GetOutput returns an output adapter by name.
func GetOutput(name string) (output.Adapter, bool) {
	outputsMu.RLock()
	defer outputsMu.RUnlock()
	a, ok := outputs[name]
	return a, ok
}

// ListInputs returns all registered input adapter names.
func ListInputs() []string {
	inputsMu.RLock()
	defer inputsMu.RUnlock()
	return sortedKeys(inputs)
}

// ListOutputs returns all registered output adapter names.
func ListOutputs() []string {
	outputsMu.RLock()
	defer outputsMu.RUnlock()
	return sortedKeys(outputs)
}

// InputForPath returns the input adapter whose extensions match path.
func InputForPath(path string) (input.Adapter, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	inputsMu.RLock()
	defer inputsMu.RUnlock()
	for _, name := range sortedKeys(inputs) {
		a := inputs[name]
		for _, e := range a.Extensions() {
			if e == ext {
				return a, true
			}
		}
	}
	return nil, false
}

// OutputForPath returns the output adapter whose extensions match path.
func OutputForPath(path string) (output.Adapter, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	outputsMu.RLock()
	defer outputsMu.RUnlock()
	for _, name := range sortedKeys(outputs) {
		a := outputs[name]
		for _, e := range a.Extensions() {
			if e == ext {
				return a, true
			}
		}
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
