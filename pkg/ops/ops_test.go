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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

type fixture struct {
	svc       *Service
	storePath string
	dirs      map[string]string
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	root := t.TempDir()

	dirs := map[string]string{}
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		dir := filepath.Join(root, "dirs", name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		dirs[name] = dir
	}

	storePath := filepath.Join(root, "bookmarks")
	st, err := store.Open(context.Background(), store.NewFileBackend(storePath, nil))
	require.NoError(t, err)

	defaults := []Option{WithClock(stepClock(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)))}
	return &fixture{
		svc:       New(st, append(defaults, opts...)...),
		storePath: storePath,
		dirs:      dirs,
	}
}

// reload opens a fresh service over the same snapshot file.
func (f *fixture) reload(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(context.Background(), store.NewFileBackend(f.storePath, nil))
	require.NoError(t, err)
	return New(st)
}

func listNames(t *testing.T, svc *Service, filter bookmark.Filter) []string {
	t.Helper()
	seq, err := svc.List(filter)
	require.NoError(t, err)
	var names []string
	for name := range seq {
		names = append(names, name)
	}
	return names
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)
	assert.Equal(t, bookmark.DefaultCategory, b.Category)
	assert.Nil(t, b.LastAccessed)
	assert.Zero(t, b.AccessCount)

	stored, ok := f.reload(t).store.Get("a")
	require.True(t, ok)
	assert.Equal(t, f.dirs["alpha"], stored.Path)
}

func TestAdd_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, "a", f.dirs["beta"], "")
	assert.ErrorIs(t, err, bookmark.ErrDuplicateName)

	b, ok := f.reload(t).store.Get("a")
	require.True(t, ok)
	assert.Equal(t, f.dirs["alpha"], b.Path)
}

func TestAdd_InvalidPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Add(ctx, "a", filepath.Join(f.dirs["alpha"], "missing"), "")
	assert.ErrorIs(t, err, bookmark.ErrInvalidPath)
	assert.Equal(t, 0, f.svc.store.Len())

	_, err = os.Stat(f.storePath)
	assert.True(t, os.IsNotExist(err), "no snapshot should be written")
}

func TestAdd_InvalidName(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Add(context.Background(), "a|b", f.dirs["alpha"], "")
	assert.ErrorIs(t, err, bookmark.ErrInvalidName)
}

func TestAdd_RelativePathStoredAbsolute(t *testing.T) {
	f := newFixture(t)
	t.Chdir(f.dirs["alpha"])

	b, err := f.svc.Add(context.Background(), "here", ".", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(b.Path))
}

func TestAdd_ConfiguredDefaultCategory(t *testing.T) {
	f := newFixture(t, WithDefaultCategory("misc"))
	b, err := f.svc.Add(context.Background(), "a", f.dirs["alpha"], "")
	require.NoError(t, err)
	assert.Equal(t, "misc", b.Category)
}

func TestSetCurrent(t *testing.T) {
	ctx := context.Background()
	var wd string
	f := newFixture(t, WithWorkingDir(func() (string, error) { return wd, nil }))
	wd = f.dirs["beta"]

	b, err := f.svc.SetCurrent(ctx, "here", "work")
	require.NoError(t, err)
	assert.Equal(t, f.dirs["beta"], b.Path)
	assert.Equal(t, "work", b.Category)

	_, err = f.svc.SetCurrent(ctx, "here", "")
	assert.ErrorIs(t, err, bookmark.ErrDuplicateName)
}

func TestSetCurrent_WorkingDirError(t *testing.T) {
	f := newFixture(t, WithWorkingDir(func() (string, error) { return "", errors.New("gone") }))
	_, err := f.svc.SetCurrent(context.Background(), "here", "")
	assert.ErrorContains(t, err, "gone")
}

func TestGoTo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, WithClock(time.Now))
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	start := time.Now()
	path, err := f.svc.GoTo(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, f.dirs["alpha"], path)

	b, ok := f.reload(t).store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, b.AccessCount)
	require.NotNil(t, b.LastAccessed)
	assert.False(t, b.LastAccessed.Before(start),
		"last access %v is before call start %v", b.LastAccessed, start)

	_, err = f.svc.GoTo(ctx, "a")
	require.NoError(t, err)
	b, _ = f.svc.store.Get("a")
	assert.Equal(t, 2, b.AccessCount)
}

func TestGoTo_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GoTo(context.Background(), "missing")
	assert.ErrorIs(t, err, bookmark.ErrNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "project", f.dirs["alpha"], "work")
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, "home", f.dirs["beta"], "")
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, "projects-old", f.dirs["gamma"], "archive")
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "project", "projects-old"}, listNames(t, f.svc, bookmark.Filter{}))
	assert.Equal(t, []string{"project", "projects-old"}, listNames(t, f.svc, bookmark.Filter{Contains: "proj"}))
	assert.Equal(t, []string{"project"}, listNames(t, f.svc, bookmark.Filter{Category: "work", Contains: "old"}))
	assert.Equal(t, []string{"home"}, listNames(t, f.svc, bookmark.Filter{Glob: "h*"}))
	assert.Empty(t, listNames(t, f.svc, bookmark.Filter{Category: "none"}))

	seq, err := f.svc.List(bookmark.Filter{})
	require.NoError(t, err)
	paths := map[string]string{}
	for name, path := range seq {
		paths[name] = path
	}
	assert.Equal(t, f.dirs["beta"], paths["home"])
}

func TestList_StopsEarly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, n := range []string{"alpha", "beta", "gamma"} {
		_, err := f.svc.Add(ctx, n, f.dirs[n], "")
		require.NoError(t, err)
	}

	seq, err := f.svc.List(bookmark.Filter{})
	require.NoError(t, err)
	var seen []string
	for name := range seq {
		seen = append(seen, name)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"alpha", "beta"}, seen)
}

func TestList_BadGlob(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.List(bookmark.Filter{Glob: "[oops"})
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	assert.Empty(t, f.svc.Stats())

	_, err := f.svc.Add(ctx, "b", f.dirs["beta"], "")
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, "a", f.dirs["alpha"], "work")
	require.NoError(t, err)
	_, err = f.svc.GoTo(ctx, "a")
	require.NoError(t, err)

	stats := f.svc.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "a", stats[0].Name)
	assert.Equal(t, 1, stats[0].AccessCount)
	assert.Equal(t, bookmark.Never, stats[1].LastAccessedString(time.RFC3339))
}

func TestFrequent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	counts := map[string]int{"alpha": 5, "delta": 3, "beta": 3, "gamma": 1, "epsilon": 0}
	for name, n := range counts {
		_, err := f.svc.Add(ctx, name, f.dirs[name], "")
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			_, err := f.svc.GoTo(ctx, name)
			require.NoError(t, err)
		}
	}

	got := f.svc.Frequent(3)
	require.Len(t, got, 3)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "beta", got[1].Name)
	assert.Equal(t, "delta", got[2].Name)

	assert.Len(t, f.svc.Frequent(DefaultLimit), 5)
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, n := range []string{"alpha", "beta", "gamma"} {
		_, err := f.svc.Add(ctx, n, f.dirs[n], "")
		require.NoError(t, err)
	}
	_, err := f.svc.GoTo(ctx, "gamma")
	require.NoError(t, err)
	_, err = f.svc.GoTo(ctx, "alpha")
	require.NoError(t, err)

	got := f.svc.Recent(DefaultLimit)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "gamma", got[1].Name)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	err = f.svc.Remove(ctx, "missing")
	assert.ErrorIs(t, err, bookmark.ErrNotFound)
	assert.Equal(t, []string{"a"}, listNames(t, f.svc, bookmark.Filter{}))

	require.NoError(t, f.svc.Remove(ctx, "a"))
	assert.Empty(t, listNames(t, f.reload(t), bookmark.Filter{}))
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	for _, answer := range []string{"no", "", "Yes", "yes ", "y"} {
		t.Run("declined "+answer, func(t *testing.T) {
			f := newFixture(t, WithPrompter(Answer(answer)))
			_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
			require.NoError(t, err)

			n, err := f.svc.Clear(ctx)
			assert.ErrorIs(t, err, bookmark.ErrConfirmationDeclined)
			assert.Zero(t, n)
			assert.Equal(t, 1, f.reload(t).store.Len())
		})
	}

	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t, WithPrompter(Answer("yes")))
		for _, n := range []string{"alpha", "beta"} {
			_, err := f.svc.Add(ctx, n, f.dirs[n], "")
			require.NoError(t, err)
		}

		n, err := f.svc.Clear(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 0, f.reload(t).store.Len())
	})
}

type failingPrompter struct{}

func (failingPrompter) Ask(string) (string, error) { return "", errors.New("no tty") }

func TestClear_PrompterError(t *testing.T) {
	f := newFixture(t, WithPrompter(failingPrompter{}))
	_, err := f.svc.Add(context.Background(), "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	_, err = f.svc.Clear(context.Background())
	assert.ErrorContains(t, err, "no tty")
	assert.Equal(t, 1, f.svc.store.Len())
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "work")
	require.NoError(t, err)
	_, err = f.svc.GoTo(ctx, "a")
	require.NoError(t, err)
	original, _ := f.svc.store.Get("a")

	renamed, err := f.svc.Rename(ctx, "a", RenameOptions{NewName: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", renamed.Name)

	svc := f.reload(t)
	assert.Equal(t, []string{"b"}, listNames(t, svc, bookmark.Filter{}))
	b, ok := svc.store.Get("b")
	require.True(t, ok)
	assert.Equal(t, original.Path, b.Path)
	assert.Equal(t, original.Category, b.Category)
	assert.Equal(t, original.AccessCount, b.AccessCount)
	require.NotNil(t, b.LastAccessed)
	assert.True(t, original.LastAccessed.Equal(*b.LastAccessed))
}

func TestRename_CategoryOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	b, err := f.svc.Rename(ctx, "a", RenameOptions{NewCategory: "work"})
	require.NoError(t, err)
	assert.Equal(t, "a", b.Name)
	assert.Equal(t, "work", b.Category)
}

func TestRename_BlankCategoryResetsToDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "work")
	require.NoError(t, err)

	b, err := f.svc.Rename(ctx, "a", RenameOptions{NewCategory: "  "})
	require.NoError(t, err)
	assert.Equal(t, bookmark.DefaultCategory, b.Category)

	stored, ok := f.reload(t).store.Get("a")
	require.True(t, ok)
	assert.Equal(t, bookmark.DefaultCategory, stored.Category)
}

func TestRename_NameAndCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)

	_, err = f.svc.Rename(ctx, "a", RenameOptions{NewName: "b", NewCategory: "work"})
	require.NoError(t, err)

	_, ok := f.svc.store.Get("a")
	assert.False(t, ok)
	b, ok := f.svc.store.Get("b")
	require.True(t, ok)
	assert.Equal(t, "work", b.Category)
}

func TestRename_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Add(ctx, "a", f.dirs["alpha"], "")
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, "b", f.dirs["beta"], "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		oldName string
		opts    RenameOptions
		want    error
	}{
		{"nothing to change", "a", RenameOptions{}, bookmark.ErrMissingArgument},
		{"no old name", "", RenameOptions{NewName: "c"}, bookmark.ErrMissingArgument},
		{"unknown", "zzz", RenameOptions{NewName: "c"}, bookmark.ErrNotFound},
		{"target exists", "a", RenameOptions{NewName: "b"}, bookmark.ErrDuplicateName},
		{"same name", "a", RenameOptions{NewName: "a"}, bookmark.ErrDuplicateName},
		{"bad new name", "a", RenameOptions{NewName: "c|d"}, bookmark.ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Rename(ctx, tt.oldName, tt.opts)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{"a", "b"}, listNames(t, f.svc, bookmark.Filter{}))
		})
	}
}
