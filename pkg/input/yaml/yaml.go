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


// Package yaml provides an input adapter for documents written by the yaml
// exporter.
package yaml

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"gopkg.in/yaml.v3"
)

func init() {
	adapter.RegisterInput(New())
}

// Adapter implements input.Adapter for YAML documents.
type Adapter struct{}

// New creates a new YAML input adapter.
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

// Read decodes a bookmark document. An empty document has no bookmarks.
func (a *Adapter) Read(ctx context.Context, r io.Reader) ([]bookmark.Bookmark, error) {
	var doc bookmark.Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return bookmark.FromDocument(doc)
}
