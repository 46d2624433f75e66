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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(bookmarks []Bookmark) []string {
	out := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, b.Name)
	}
	return out
}

func at(t time.Time) *time.Time { return &t }

func TestMostFrequent_TieBreakByName(t *testing.T) {
	marks := []Bookmark{
		{Name: "zero", AccessCount: 0},
		{Name: "delta", AccessCount: 3},
		{Name: "one", AccessCount: 1},
		{Name: "alpha", AccessCount: 5},
		{Name: "charlie", AccessCount: 3},
	}

	got := MostFrequent(marks, 3)
	assert.Equal(t, []string{"alpha", "charlie", "delta"}, names(got))

	// Input order is untouched.
	assert.Equal(t, "zero", marks[0].Name)
}

func TestMostFrequent_IncludesZeroCounts(t *testing.T) {
	marks := []Bookmark{{Name: "b"}, {Name: "a"}}
	assert.Equal(t, []string{"a", "b"}, names(MostFrequent(marks, 10)))
}

func TestMostRecent_ExcludesNeverAccessed(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	marks := []Bookmark{
		{Name: "never"},
		{Name: "old", LastAccessed: at(base)},
		{Name: "new", LastAccessed: at(base.Add(time.Hour))},
		{Name: "also-new", LastAccessed: at(base.Add(time.Hour))},
	}

	got := MostRecent(marks, 10)
	assert.Equal(t, []string{"also-new", "new", "old"}, names(got))
}

func TestMostRecent_Limit(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var marks []Bookmark
	for i, n := range []string{"a", "b", "c", "d"} {
		marks = append(marks, Bookmark{Name: n, LastAccessed: at(base.Add(time.Duration(i) * time.Minute))})
	}
	assert.Equal(t, []string{"d", "c"}, names(MostRecent(marks, 2)))
	assert.Empty(t, MostRecent(marks, 0))
}

func TestFilter_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   FilterMode
	}{
		{"empty", Filter{}, FilterAll},
		{"category", Filter{Category: "work"}, FilterCategory},
		{"category beats substring", Filter{Category: "work", Contains: "x"}, FilterCategory},
		{"substring", Filter{Contains: "x"}, FilterContains},
		{"substring beats glob", Filter{Contains: "x", Glob: "*"}, FilterContains},
		{"glob", Filter{Glob: "p*"}, FilterGlob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Mode())
		})
	}
}

func TestFilter_Matcher(t *testing.T) {
	proj := Bookmark{Name: "project", Category: "work"}
	home := Bookmark{Name: "home", Category: "general"}

	match, err := Filter{Category: "work", Contains: "home"}.Matcher()
	require.NoError(t, err)
	assert.True(t, match(proj))
	assert.False(t, match(home))

	match, err = Filter{Contains: "oje"}.Matcher()
	require.NoError(t, err)
	assert.True(t, match(proj))
	assert.False(t, match(home))

	match, err = Filter{Glob: "h?me"}.Matcher()
	require.NoError(t, err)
	assert.True(t, match(home))
	assert.False(t, match(proj))

	_, err = Filter{Glob: "[unclosed"}.Matcher()
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	marks := []Bookmark{{Category: "work"}, {Category: "general"}, {Category: "work"}}
	assert.Equal(t, []string{"general", "work"}, Categories(marks))
}
