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

// Package bookmark provides the core directory bookmark model.
//
// A Bookmark associates a short name with a filesystem path and carries
// simple usage metadata. It is the common language between the store
// (which persists bookmarks), the operations layer (which enforces the
// lifecycle rules), and the import/export adapters.
//
// # Core Types
//
// Bookmark is a single named path:
//
//	b := bookmark.Bookmark{
//	    Name:     "proj",
//	    Path:     "/home/me/src/project",
//	    Category: "work",
//	}
//
// A bookmark that has never been navigated to has a nil LastAccessed and
// an AccessCount of zero. Visit records a successful navigation:
//
//	b = b.Visit(time.Now())
//
// # Design Principles
//
//  1. Fixed shape: every field is typed from the moment a record is parsed.
//
//  2. Explicit absence: "never accessed" is a nil timestamp, not an
//     empty string or a zero time.
//
//  3. Delimiter-safe: names, paths and categories never contain the
//     snapshot field delimiter or line breaks.
package bookmark

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCategory is assigned when a bookmark is created without one.
const DefaultCategory = "general"

// Delimiter separates fields in the persisted snapshot.
const Delimiter = "|"

// Never is displayed in place of LastAccessed when the bookmark has not
// been visited.
const Never = "Never"

// Bookmark represents a single named directory.
type Bookmark struct {
	// Name is the unique, case-sensitive key.
	Name string

	// Path is the filesystem location the bookmark points to.
	// It is checked for existence at creation time only.
	Path string

	// Category groups bookmarks for filtering. Never empty once stored.
	Category string

	// LastAccessed is the time of the most recent successful navigation.
	// Nil means the bookmark has never been visited.
	LastAccessed *time.Time

	// AccessCount is the number of successful navigations.
	AccessCount int
}

// New creates a bookmark with no access history. An empty category is
// replaced by DefaultCategory.
func New(name, path, category string) Bookmark {
	return Bookmark{
		Name:     name,
		Path:     path,
		Category: CategoryOrDefault(category),
	}
}

// CategoryOrDefault returns category, or DefaultCategory when it is blank.
func CategoryOrDefault(category string) string {
	if strings.TrimSpace(category) == "" {
		return DefaultCategory
	}
	return category
}

// Accessed reports whether the bookmark has ever been visited.
func (b Bookmark) Accessed() bool {
	return b.LastAccessed != nil
}

// Visit returns a copy of b with the access count incremented and
// LastAccessed set to now.
func (b Bookmark) Visit(now time.Time) Bookmark {
	t := now
	b.LastAccessed = &t
	b.AccessCount++
	return b
}

// LastAccessedString formats LastAccessed with layout, or returns Never.
func (b Bookmark) LastAccessedString(layout string) string {
	if b.LastAccessed == nil {
		return Never
	}
	return b.LastAccessed.Local().Format(layout)
}

// ValidateName checks that name can be used as a bookmark key.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, Delimiter+"\r\n") {
		return fmt.Errorf("%w: %q contains %q or a line break", ErrInvalidName, name, Delimiter)
	}
	return nil
}

// ValidateField checks that a path or category survives the snapshot format.
func ValidateField(field, value string) error {
	if strings.ContainsAny(value, Delimiter+"\r\n") {
		return fmt.Errorf("%s %q contains %q or a line break", field, value, Delimiter)
	}
	return nil
}

// Validate checks every field of b.
func (b Bookmark) Validate() error {
	if err := ValidateName(b.Name); err != nil {
		return err
	}
	if b.Path == "" {
		return fmt.Errorf("%w: empty path for %q", ErrInvalidPath, b.Name)
	}
	if err := ValidateField("path", b.Path); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if err := ValidateField("category", b.Category); err != nil {
		return err
	}
	if b.AccessCount < 0 {
		return fmt.Errorf("negative access count %d for %q", b.AccessCount, b.Name)
	}
	return nil
}
