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


// Package yaml provides an output adapter for YAML format.
package yaml

import (
	"bytes"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"gopkg.in/yaml.v3"
)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for YAML format.
type Adapter struct{}

// New creates a new YAML adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "yaml"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "YAML"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Render converts bookmarks to YAML with two-space indentation.
func (a *Adapter) Render(bookmarks []bookmark.Bookmark, opts output.RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(output.Document(bookmarks, opts)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
