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


package json

import (
	"testing"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []bookmark.Bookmark {
	visited := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	return []bookmark.Bookmark{
		{Name: "api", Path: "/srv/api", Category: "work", LastAccessed: &visited, AccessCount: 7},
		{Name: "home", Path: "/home/me", Category: "general"},
	}
}

func TestRender(t *testing.T) {
	opts := output.RenderOptions{IncludeUsage: true}
	data, err := New().Render(fixture(), opts)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "bookmarks", data)
}

func TestRender_Metadata(t *testing.T) {
	opts := output.RenderOptions{
		IncludeMetadata: true,
		StorePath:       "/home/me/.bookmarks",
		Now:             time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	data, err := New().Render(fixture(), opts)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"generated": "2026-03-04T00:00:00Z"`)
	assert.Contains(t, s, `"store": "/home/me/.bookmarks"`)
	assert.Contains(t, s, `"total": 2`)
	assert.NotContains(t, s, "last_accessed")
}
