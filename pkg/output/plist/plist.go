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


// Package plist provides an output adapter for Apple property lists.
package plist

import (
	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"howett.net/plist"
)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for XML property lists.
type Adapter struct{}

// New creates a new plist adapter.
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

// Render converts bookmarks to an indented XML property list.
func (a *Adapter) Render(bookmarks []bookmark.Bookmark, opts output.RenderOptions) ([]byte, error) {
	return plist.MarshalIndent(output.Document(bookmarks, opts), plist.XMLFormat, "\t")
}
