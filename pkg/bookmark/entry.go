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

package bookmark

import (
	"fmt"
	"time"
)

// TimeLayout is the machine-readable timestamp format used wherever a
// bookmark leaves the process.
const TimeLayout = time.RFC3339Nano

// Document is the portable representation shared by the structured
// import and export adapters.
type Document struct {
	Metadata  *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty" plist:"metadata,omitempty"`
	Bookmarks []Entry   `json:"bookmarks" yaml:"bookmarks" plist:"bookmarks"`
}

// Metadata contains generation information.
type Metadata struct {
	Generated string `json:"generated" yaml:"generated" plist:"generated"`
	Platform  string `json:"platform" yaml:"platform" plist:"platform"`
	Store     string `json:"store,omitempty" yaml:"store,omitempty" plist:"store,omitempty"`
	Total     int    `json:"total" yaml:"total" plist:"total"`
}

// Entry is a single bookmark in a Document.
type Entry struct {
	Name         string `json:"name" yaml:"name" plist:"name"`
	Path         string `json:"path" yaml:"path" plist:"path"`
	Category     string `json:"category" yaml:"category" plist:"category"`
	LastAccessed string `json:"last_accessed,omitempty" yaml:"last_accessed,omitempty" plist:"last_accessed,omitempty"`
	AccessCount  int    `json:"access_count" yaml:"access_count" plist:"access_count"`
}

// ToEntry converts b to its portable form.
func ToEntry(b Bookmark) Entry {
	e := Entry{
		Name:        b.Name,
		Path:        b.Path,
		Category:    b.Category,
		AccessCount: b.AccessCount,
	}
	if b.LastAccessed != nil {
		e.LastAccessed = b.LastAccessed.UTC().Format(TimeLayout)
	}
	return e
}

// FromEntry converts a portable entry back into a Bookmark.
func FromEntry(e Entry) (Bookmark, error) {
	b := Bookmark{
		Name:        e.Name,
		Path:        e.Path,
		Category:    CategoryOrDefault(e.Category),
		AccessCount: e.AccessCount,
	}
	if e.LastAccessed != "" {
		t, err := time.Parse(TimeLayout, e.LastAccessed)
		if err != nil {
			return Bookmark{}, fmt.Errorf("bookmark %q: last_accessed: %w", e.Name, err)
		}
		b.LastAccessed = &t
	}
	if err := b.Validate(); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

// FromDocument converts every entry in doc, stopping at the first invalid one.
func FromDocument(doc Document) ([]Bookmark, error) {
	bookmarks := make([]Bookmark, 0, len(doc.Bookmarks))
	for i, e := range doc.Bookmarks {
		b, err := FromEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}
