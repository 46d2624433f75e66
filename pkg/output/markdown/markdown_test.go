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


package markdown

import (
	"testing"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []bookmark.Bookmark {
	return []bookmark.Bookmark{
		{Name: "api", Path: "/srv/api", Category: "work", AccessCount: 7},
		{Name: "home", Path: "/home/me", Category: "general"},
		{Name: "my_notes", Path: "/home/me/notes", Category: "personal projects", AccessCount: 2},
		{Name: "web", Path: "/srv/www|old", Category: "work"},
	}
}

func TestRender_Styles(t *testing.T) {
	for _, style := range []Style{StyleList, StyleTable} {
		t.Run(string(style), func(t *testing.T) {
			data, err := New().Render(fixture(), output.RenderOptions{Style: string(style)})
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, string(style), data)
		})
	}
}

func TestRender_DefaultStyleIsList(t *testing.T) {
	list, err := New().Render(fixture(), output.RenderOptions{Style: "list"})
	require.NoError(t, err)
	def, err := New().Render(fixture(), output.RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, string(list), string(def))
}

func TestRender_Usage(t *testing.T) {
	data, err := New().Render(fixture()[1:2], output.RenderOptions{IncludeUsage: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), "- **home**: `/home/me` *(visits: 0, last: Never)*")

	data, err = New().Render(fixture()[1:2], output.RenderOptions{IncludeUsage: true, Style: "table"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "| Name | Path | Visits | Last Accessed |")
	assert.Contains(t, string(data), "| home | `/home/me` | 0 | Never |")
}

func TestRender_UnknownStyle(t *testing.T) {
	_, err := New().Render(fixture(), output.RenderOptions{Style: "yaml"})
	assert.Error(t, err)
}
