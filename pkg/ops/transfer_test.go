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


package ops

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "existing", f.dirs["alpha"], "")
	require.NoError(t, err)

	when := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
	incoming := []bookmark.Bookmark{
		{Name: "existing", Path: f.dirs["beta"], Category: "work"},
		{Name: "fresh", Path: f.dirs["gamma"], LastAccessed: &when, AccessCount: 4},
		{Name: "gone", Path: filepath.Join(f.dirs["gamma"], "nope")},
		{Name: "bad|name", Path: f.dirs["gamma"]},
	}

	result, err := f.svc.Import(ctx, incoming, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, result.Added)
	assert.Empty(t, result.Replaced)
	assert.ElementsMatch(t, []string{"existing", "gone", "bad|name"}, result.Skipped)

	fresh, ok := f.reload(t).store.Get("fresh")
	require.True(t, ok)
	assert.Equal(t, bookmark.DefaultCategory, fresh.Category)
	assert.Equal(t, 4, fresh.AccessCount)
	require.NotNil(t, fresh.LastAccessed)
	assert.True(t, fresh.LastAccessed.Equal(when))
}

func TestImport_OverwriteAndKeepMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "existing", f.dirs["alpha"], "")
	require.NoError(t, err)

	incoming := []bookmark.Bookmark{
		{Name: "existing", Path: f.dirs["beta"], Category: "work"},
		{Name: "gone", Path: "/definitely/not/here", Category: "general"},
	}

	result, err := f.svc.Import(ctx, incoming, ImportOptions{Overwrite: true, KeepMissing: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, result.Added)
	assert.Equal(t, []string{"existing"}, result.Replaced)

	b, _ := f.svc.store.Get("existing")
	assert.Equal(t, f.dirs["beta"], b.Path)
}

func TestImport_RelativePathsResolved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	parent := filepath.Dir(f.dirs["alpha"])
	t.Chdir(parent)

	incoming := []bookmark.Bookmark{
		{Name: "rel", Path: "beta"},
		{Name: "kept", Path: filepath.Join("missing", "dir")},
	}

	result, err := f.svc.Import(ctx, incoming, ImportOptions{KeepMissing: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"rel", "kept"}, result.Added)

	svc := f.reload(t)
	rel, ok := svc.store.Get("rel")
	require.True(t, ok)
	assert.Equal(t, f.dirs["beta"], rel.Path)

	kept, ok := svc.store.Get("kept")
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(kept.Path))
	assert.Equal(t, filepath.Join(parent, "missing", "dir"), kept.Path)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "b", f.dirs["beta"], "")
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	got := f.svc.Export()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, f.storePath, f.svc.StorePath())
}
