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


// Package json provides an output adapter for JSON format.
//
// The document is the one read back by the json input adapter, so an
// export can be imported on another machine.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for JSON format.
type Adapter struct{}

// New creates a new JSON adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "json"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "JSON"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".json"}
}

// Render converts bookmarks to indented JSON with a trailing newline.
// Paths are written verbatim; &, < and > are not escaped.
func (a *Adapter) Render(bookmarks []bookmark.Bookmark, opts output.RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(output.Document(bookmarks, opts)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
