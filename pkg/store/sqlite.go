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
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS bookmarks (
    name          TEXT PRIMARY KEY NOT NULL,
    path          TEXT NOT NULL,
    category      TEXT NOT NULL,
    last_accessed TEXT,
    access_count  INTEGER NOT NULL DEFAULT 0
);`

// SQLiteBackend persists the snapshot in a single SQLite table. Save
// replaces every row inside one transaction, so the table always holds a
// complete snapshot.
type SQLiteBackend struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteBackend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = FULL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteBackend{db: db, path: path, logger: logger}, nil
}

// Path returns the database file path.
func (s *SQLiteBackend) Path() string {
	return s.path
}

// Load reads every row.
func (s *SQLiteBackend) Load(ctx context.Context) ([]bookmark.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, path, category, last_accessed, access_count FROM bookmarks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []bookmark.Bookmark
	for rows.Next() {
		var (
			b    bookmark.Bookmark
			last sql.NullString
		)
		if err := rows.Scan(&b.Name, &b.Path, &b.Category, &last, &b.AccessCount); err != nil {
			return nil, fmt.Errorf("%w: %v", bookmark.ErrCorruptStore, err)
		}
		if last.Valid && last.String != "" {
			t, err := time.Parse(bookmark.TimeLayout, last.String)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid last access time %q for %q", bookmark.ErrCorruptStore, last.String, b.Name)
			}
			b.LastAccessed = &t
		}
		if b.AccessCount < 0 {
			return nil, fmt.Errorf("%w: negative access count for %q", bookmark.ErrCorruptStore, b.Name)
		}
		b.Category = bookmark.CategoryOrDefault(b.Category)
		if err := b.Validate(); err != nil {
			s.logger.Warn("skipping invalid row", zap.Error(err))
			continue
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Save replaces the table contents with bookmarks.
func (s *SQLiteBackend) Save(ctx context.Context, bookmarks []bookmark.Bookmark) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks`); err != nil {
		return fmt.Errorf("clearing bookmarks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO bookmarks (name, path, category, last_accessed, access_count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bookmarks {
		var last sql.NullString
		if b.LastAccessed != nil {
			last = sql.NullString{String: b.LastAccessed.UTC().Format(bookmark.TimeLayout), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, b.Name, b.Path, b.Category, last, b.AccessCount); err != nil {
			return fmt.Errorf("inserting %q: %w", b.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	s.logger.Debug("snapshot saved", zap.String("path", s.path), zap.Int("bookmarks", len(bookmarks)))
	return nil
}

// Close closes the database.
func (s *SQLiteBackend) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
