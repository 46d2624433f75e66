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

// Package store holds the bookmark set in memory and persists it as a
// complete snapshot through a Backend.
//
// Every change goes through Update, which applies the caller's function to
// a copy of the set, saves the copy, and only then makes it current. A
// failed function or a failed save leaves the Store as it was.
//
// The store does no locking. Two processes updating the same snapshot at
// once race, and the last save wins. FileBackend replaces the file with a
// rename, so a reader never sees a partially written snapshot.
package store

import (
	"context"
	"fmt"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"go.uber.org/zap"
)

// Backend loads and saves complete snapshots.
type Backend interface {
	// Load returns every persisted bookmark. A backend with nothing
	// persisted yet returns an empty slice and no error.
	Load(ctx context.Context) ([]bookmark.Bookmark, error)

	// Save replaces the persisted snapshot with bookmarks.
	Save(ctx context.Context, bookmarks []bookmark.Bookmark) error

	// Path describes where the snapshot lives, for logging and display.
	Path() string

	// Close releases backend resources.
	Close() error
}

// Store is the in-memory bookmark set.
type Store struct {
	backend Backend
	marks   map[string]bookmark.Bookmark
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads the snapshot from backend. If the snapshot cannot be fully
// loaded no Store is returned, so a damaged snapshot is never overwritten.
func Open(ctx context.Context, backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		marks:   make(map[string]bookmark.Bookmark),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range loaded {
		if _, dup := s.marks[b.Name]; dup {
			s.logger.Warn("duplicate bookmark in snapshot, keeping the later record",
				zap.String("name", b.Name))
		}
		s.marks[b.Name] = b
	}

	s.logger.Debug("store loaded",
		zap.String("path", backend.Path()),
		zap.Int("bookmarks", len(s.marks)))

	return s, nil
}

// Path returns the backend location.
func (s *Store) Path() string {
	return s.backend.Path()
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Get returns the bookmark stored under name.
func (s *Store) Get(name string) (bookmark.Bookmark, bool) {
	b, ok := s.marks[name]
	return b, ok
}

// Len returns the number of bookmarks.
func (s *Store) Len() int {
	return len(s.marks)
}

// All returns every bookmark sorted by name.
func (s *Store) All() []bookmark.Bookmark {
	return sortedValues(s.marks)
}

// Update runs fn against a copy of the set and persists the result. The
// copy becomes current only when fn and the save both succeed.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	tx := &Tx{marks: make(map[string]bookmark.Bookmark, len(s.marks))}
	for k, v := range s.marks {
		tx.marks[k] = v
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := s.backend.Save(ctx, sortedValues(tx.marks)); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}

	s.marks = tx.marks
	return nil
}

// Tx is the working copy handed to an Update function.
type Tx struct {
	marks map[string]bookmark.Bookmark
}

// Get returns the bookmark stored under name.
func (tx *Tx) Get(name string) (bookmark.Bookmark, bool) {
	b, ok := tx.marks[name]
	return b, ok
}

// Has reports whether name is present.
func (tx *Tx) Has(name string) bool {
	_, ok := tx.marks[name]
	return ok
}

// Put stores b under b.Name, replacing any existing entry.
func (tx *Tx) Put(b bookmark.Bookmark) {
	tx.marks[b.Name] = b
}

// Delete removes name.
func (tx *Tx) Delete(name string) {
	delete(tx.marks, name)
}

// Clear removes every bookmark and returns how many there were.
func (tx *Tx) Clear() int {
	n := len(tx.marks)
	tx.marks = make(map[string]bookmark.Bookmark)
	return n
}

// Len returns the number of bookmarks in the working copy.
func (tx *Tx) Len() int {
	return len(tx.marks)
}

func sortedValues(m map[string]bookmark.Bookmark) []bookmark.Bookmark {
	out := make([]bookmark.Bookmark, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	bookmark.SortByName(out)
	return out
}

// Backend kinds accepted by NewBackend.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// NewBackend constructs the backend named by kind for path.
func NewBackend(kind, path string, logger *zap.Logger) (Backend, error) {
	switch kind {
	case "", KindFile:
		return NewFileBackend(path, logger), nil
	case KindSQLite:
		return OpenSQLite(path, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q (available: %s, %s)", kind, KindFile, KindSQLite)
	}
}
