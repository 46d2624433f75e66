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


// Package markdown provides an output adapter for markdown format.
package markdown

import (
	"fmt"
	"strings"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style defines the markdown sub-format.
type Style string

const (
	StyleList  Style = "list"  // Bullet list per category
	StyleTable Style = "table" // Markdown table per category
)

var title = cases.Title(language.English)

func init() {
	adapter.RegisterOutput(New())
}

// Adapter implements output.Adapter for markdown format.
type Adapter struct{}

// New creates a new markdown adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "markdown"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Markdown"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Render converts bookmarks to markdown, one section per category.
func (a *Adapter) Render(bookmarks []bookmark.Bookmark, opts output.RenderOptions) ([]byte, error) {
	style := Style(opts.Style)
	switch style {
	case "":
		style = StyleList
	case StyleList, StyleTable:
	default:
		return nil, fmt.Errorf("unknown markdown style %q (available: %s, %s)", opts.Style, StyleList, StyleTable)
	}

	var sb strings.Builder
	sb.WriteString("# Directory Bookmarks\n\n")

	if meta := output.Metadata(bookmarks, opts); meta != nil {
		sb.WriteString(fmt.Sprintf("*Generated: %s*\n", meta.Generated))
		sb.WriteString(fmt.Sprintf("*Platform: %s*\n", meta.Platform))
		if meta.Store != "" {
			sb.WriteString(fmt.Sprintf("*Store: %s*\n", meta.Store))
		}
		sb.WriteString(fmt.Sprintf("*Total bookmarks: %d*\n\n", meta.Total))
	}

	grouped := groupByCategory(bookmarks)
	for _, category := range bookmark.Categories(bookmarks) {
		sb.WriteString(fmt.Sprintf("## %s\n\n", title.String(category)))
		switch style {
		case StyleTable:
			renderTable(grouped[category], &sb, opts)
		default:
			renderList(grouped[category], &sb, opts)
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

func renderList(bookmarks []bookmark.Bookmark, sb *strings.Builder, opts output.RenderOptions) {
	for _, b := range bookmarks {
		line := fmt.Sprintf("- **%s**: `%s`", escapeInline(b.Name), b.Path)
		if opts.IncludeUsage {
			line += fmt.Sprintf(" *(visits: %d, last: %s)*", b.AccessCount, b.LastAccessedString("2006-01-02"))
		}
		sb.WriteString(line + "\n")
	}
}

func renderTable(bookmarks []bookmark.Bookmark, sb *strings.Builder, opts output.RenderOptions) {
	headers := []string{"Name", "Path"}
	if opts.IncludeUsage {
		headers = append(headers, "Visits", "Last Accessed")
	}

	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(headers)) + "\n")

	for _, b := range bookmarks {
		row := []string{escapeTableCell(b.Name), "`" + escapeTableCell(b.Path) + "`"}
		if opts.IncludeUsage {
			row = append(row, fmt.Sprintf("%d", b.AccessCount), b.LastAccessedString("2006-01-02"))
		}
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}

func groupByCategory(bookmarks []bookmark.Bookmark) map[string][]bookmark.Bookmark {
	result := make(map[string][]bookmark.Bookmark)
	for _, b := range bookmarks {
		result[b.Category] = append(result[b.Category], b)
	}
	return result
}

func escapeInline(s string) string {
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

func escapeTableCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
