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


// Package plist provides an input adapter for property lists written by the
// plist exporter.
package plist

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"howett.net/plist"
)

func init() {
	adapter.RegisterInput(New())
}

// Adapter implements input.Adapter for property lists.
type Adapter struct{}

// New creates a new plist input adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "plist"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Property List"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".plist"}
}

// Read decodes an XML or binary property list.
func (a *Adapter) Read(ctx context.Context, r io.Reader) ([]bookmark.Bookmark, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read plist: %w", err)
	}

	var doc bookmark.Document
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plist: %w", err)
	}
	return bookmark.FromDocument(doc)
}
