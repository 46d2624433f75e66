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

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"go.uber.org/zap"
)

// FileBackend persists the snapshot as a pipe-delimited text file.
type FileBackend struct {
	path   string
	logger *zap.Logger
}

// NewFileBackend returns a backend for the snapshot file at path.
// The file and its directory are created on first save.
func NewFileBackend(path string, logger *zap.Logger) *FileBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileBackend{path: path, logger: logger}
}

// Path returns the snapshot file path.
func (f *FileBackend) Path() string {
	return f.path
}

// Load reads the snapshot. A missing file is an empty store.
func (f *FileBackend) Load(ctx context.Context) ([]bookmark.Bookmark, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Debug("no snapshot yet", zap.String("path", f.path))
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer file.Close()

	bookmarks, err := NewDecoder(file).WithLogger(f.logger).Decode()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.path, err)
	}
	return bookmarks, nil
}

// Save replaces the snapshot. The records are written to a temporary file
// in the same directory, synced, and renamed over the target.
func (f *FileBackend) Save(ctx context.Context, bookmarks []bookmark.Bookmark) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary snapshot: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, bookmarks); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	committed = true

	f.logger.Debug("snapshot saved", zap.String("path", f.path), zap.Int("bookmarks", len(bookmarks)))
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (f *FileBackend) Close() error {
	return nil
}
