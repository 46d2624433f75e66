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
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// FilterMode selects which Filter field is honoured.
type FilterMode int

const (
	FilterAll      FilterMode = iota // No filtering
	FilterCategory                   // Exact category match
	FilterContains                   // Substring of name
	FilterGlob                       // Glob pattern over name
)

// Filter selects bookmarks for listing. Only one criterion applies per
// query: Category wins over Contains, which wins over Glob.
type Filter struct {
	Category string // Exact, case-sensitive category
	Contains string // Substring of the bookmark name
	Glob     string // Glob pattern matched against the whole name
}

// Mode returns the criterion that will be applied.
func (f Filter) Mode() FilterMode {
	switch {
	case f.Category != "":
		return FilterCategory
	case f.Contains != "":
		return FilterContains
	case f.Glob != "":
		return FilterGlob
	default:
		return FilterAll
	}
}

// Matcher compiles the filter into a predicate.
func (f Filter) Matcher() (func(Bookmark) bool, error) {
	switch f.Mode() {
	case FilterCategory:
		return func(b Bookmark) bool { return b.Category == f.Category }, nil
	case FilterContains:
		return func(b Bookmark) bool { return strings.Contains(b.Name, f.Contains) }, nil
	case FilterGlob:
		g, err := glob.Compile(f.Glob)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", f.Glob, err)
		}
		return func(b Bookmark) bool { return g.Match(b.Name) }, nil
	default:
		return func(Bookmark) bool { return true }, nil
	}
}

// SortByName sorts bookmarks in place by name.
func SortByName(bookmarks []Bookmark) {
	sort.Slice(bookmarks, func(i, j int) bool {
		return bookmarks[i].Name < bookmarks[j].Name
	})
}

// MostRecent returns up to n visited bookmarks, newest first. Bookmarks
// that were never visited are excluded. Equal timestamps order by name.
func MostRecent(bookmarks []Bookmark, n int) []Bookmark {
	var visited []Bookmark
	for _, b := range bookmarks {
		if b.Accessed() {
			visited = append(visited, b)
		}
	}

	sort.Slice(visited, func(i, j int) bool {
		ti, tj := *visited[i].LastAccessed, *visited[j].LastAccessed
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return visited[i].Name < visited[j].Name
	})

	return limit(visited, n)
}

// MostFrequent returns up to n bookmarks ordered by access count, highest
// first. Bookmarks with a zero count are included. Equal counts order by name.
func MostFrequent(bookmarks []Bookmark, n int) []Bookmark {
	sorted := append([]Bookmark(nil), bookmarks...)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AccessCount != sorted[j].AccessCount {
			return sorted[i].AccessCount > sorted[j].AccessCount
		}
		return sorted[i].Name < sorted[j].Name
	})

	return limit(sorted, n)
}

// Categories returns the distinct categories in sorted order.
func Categories(bookmarks []Bookmark) []string {
	seen := make(map[string]bool)
	var result []string
	for _, b := range bookmarks {
		if !seen[b.Category] {
			seen[b.Category] = true
			result = append(result, b.Category)
		}
	}
	sort.Strings(result)
	return result
}

func limit(bookmarks []Bookmark, n int) []Bookmark {
	if n >= 0 && len(bookmarks) > n {
		return bookmarks[:n]
	}
	return bookmarks
}
