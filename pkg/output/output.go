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


// Package output provides the Adapter interface for bookmark renderers.
//
// Output adapters convert the bookmark snapshot into a specific file
// format. Each adapter is registered with the global registry and can be
// selected at runtime via --format, or by the extension of --output.
//
// # Implementing an Output Adapter
//
//  1. Create a new package under pkg/output/
//  2. Implement the Adapter interface
//  3. Register via init() using adapter.RegisterOutput()
//  4. Import in cmd/root.go to include in the build
package output

import (
	"runtime"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
)

// Adapter is the interface for bookmark output renderers.
type Adapter interface {
	// Name returns the unique adapter identifier used in --format flag.
	Name() string

	// DisplayName returns a human-friendly name for UI display.
	DisplayName() string

	// Extensions returns file extensions supported by this format.
	// First extension is the default.
	Extensions() []string

	// Render converts bookmarks to the output format.
	Render(bookmarks []bookmark.Bookmark, opts RenderOptions) ([]byte, error)
}

// RenderOptions configures what information to include in the output.
type RenderOptions struct {
	// IncludeMetadata adds a header with generation time, platform and counts.
	IncludeMetadata bool

	// IncludeUsage includes last access time and access count.
	IncludeUsage bool

	// StorePath is reported in the metadata header when set.
	StorePath string

	// Style specifies a format variant (adapter-specific).
	// For markdown: "list", "table"
	Style string

	// Now overrides the generation time. Zero means time.Now().
	Now time.Time
}

// DefaultRenderOptions returns sensible defaults for rendering.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		IncludeMetadata: true,
		IncludeUsage:    true,
	}
}

// Metadata builds the document header for opts, or nil when disabled.
func Metadata(bookmarks []bookmark.Bookmark, opts RenderOptions) *bookmark.Metadata {
	if !opts.IncludeMetadata {
		return nil
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &bookmark.Metadata{
		Generated: now.Format(time.RFC3339),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Store:     opts.StorePath,
		Total:     len(bookmarks),
	}
}

// Document converts bookmarks into the shared document form.
func Document(bookmarks []bookmark.Bookmark, opts RenderOptions) bookmark.Document {
	doc := bookmark.Document{
		Metadata:  Metadata(bookmarks, opts),
		Bookmarks: make([]bookmark.Entry, 0, len(bookmarks)),
	}
	for _, b := range bookmarks {
		e := bookmark.ToEntry(b)
		if !opts.IncludeUsage {
			e.LastAccessed = ""
			e.AccessCount = 0
		}
		doc.Bookmarks = append(doc.Bookmarks, e)
	}
	return doc
}
