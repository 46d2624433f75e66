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


package plist

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	plistin "github.com/cloudygreybeard/dirfavs/pkg/input/plist"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ReadBack(t *testing.T) {
	visited := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	marks := []bookmark.Bookmark{
		{Name: "api", Path: "/srv/api", Category: "work", LastAccessed: &visited, AccessCount: 7},
		{Name: "home", Path: "/home/me", Category: "general"},
	}

	data, err := New().Render(marks, output.DefaultRenderOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))

	got, err := plistin.New().Read(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)

	opt := cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })
	if diff := cmp.Diff(marks, got, opt); diff != "" {
		t.Errorf("read back mismatch (-want +got):\n%s", diff)
	}
}
