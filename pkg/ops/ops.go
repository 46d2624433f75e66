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

// Package ops implements the bookmark commands on top of a store.
//
// Each mutating operation validates its arguments, changes a working copy
// of the store and persists the full snapshot before returning. Any error
// leaves the store exactly as it was.
//
// Process-level effects are injected so the operations can be exercised
// without a terminal or a real working directory:
//
//	svc := ops.New(st,
//	    ops.WithClock(func() time.Time { return fixed }),
//	    ops.WithWorkingDir(func() (string, error) { return "/tmp", nil }),
//	    ops.WithPrompter(ops.Answer("yes")),
//	)
package ops

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/store"
	"go.uber.org/zap"
)

// ConfirmToken is the exact answer that confirms a destructive operation.
const ConfirmToken = "yes"

// DefaultLimit is the default size of the recent and frequent lists.
const DefaultLimit = 10

// Prompter asks the user a question and returns the raw answer.
type Prompter interface {
	Ask(question string) (string, error)
}

// Answer is a Prompter that always returns the same answer.
type Answer string

// Ask returns a.
func (a Answer) Ask(string) (string, error) {
	return string(a), nil
}

// Service runs bookmark operations against a store.
type Service struct {
	store           *store.Store
	now             func() time.Time
	getwd           func() (string, error)
	stat            func(string) (os.FileInfo, error)
	prompter        Prompter
	logger          *zap.Logger
	defaultCategory string
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for access timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWorkingDir sets the provider of the current directory for SetCurrent.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(s *Service) { s.getwd = getwd }
}

// WithStat replaces the function used to check that a path exists.
func WithStat(stat func(string) (os.FileInfo, error)) Option {
	return func(s *Service) { s.stat = stat }
}

// WithPrompter sets the confirmation source for Clear.
func WithPrompter(p Prompter) Option {
	return func(s *Service) { s.prompter = p }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultCategory sets the category used when none is given.
func WithDefaultCategory(category string) Option {
	return func(s *Service) {
		if category != "" {
			s.defaultCategory = category
		}
	}
}

// New creates a Service. Without a prompter, Clear always declines.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:           st,
		now:             time.Now,
		getwd:           os.Getwd,
		stat:            os.Stat,
		prompter:        Answer(""),
		logger:          zap.NewNop(),
		defaultCategory: bookmark.DefaultCategory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a bookmark for an existing path. The path is stored in
// absolute form.
func (s *Service) Add(ctx context.Context, name, path, category string) (bookmark.Bookmark, error) {
	if err := bookmark.ValidateName(name); err != nil {
		return bookmark.Bookmark{}, err
	}
	if _, exists := s.store.Get(name); exists {
		return bookmark.Bookmark{}, fmt.Errorf("%q: %w", name, bookmark.ErrDuplicateName)
	}

	abs, err := s.resolvePath(path)
	if err != nil {
		return bookmark.Bookmark{}, err
	}

	b := bookmark.New(name, abs, s.category(category))
	if err := b.Validate(); err != nil {
		return bookmark.Bookmark{}, err
	}

	err = s.store.Update(ctx, func(tx *store.Tx) error {
		if tx.Has(name) {
			return fmt.Errorf("%q: %w", name, bookmark.ErrDuplicateName)
		}
		tx.Put(b)
		return nil
	})
	if err != nil {
		return bookmark.Bookmark{}, err
	}

	s.logger.Debug("bookmark added",
		zap.String("name", b.Name),
		zap.String("path", b.Path),
		zap.String("category", b.Category))
	return b, nil
}

// SetCurrent bookmarks the current working directory.
func (s *Service) SetCurrent(ctx context.Context, name, category string) (bookmark.Bookmark, error) {
	wd, err := s.getwd()
	if err != nil {
		return bookmark.Bookmark{}, fmt.Errorf("getting working directory: %w", err)
	}
	return s.Add(ctx, name, wd, category)
}

// GoTo resolves name to its path and records the visit.
func (s *Service) GoTo(ctx context.Context, name string) (string, error) {
	var path string
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		b, ok := tx.Get(name)
		if !ok {
			return fmt.Errorf("%q: %w", name, bookmark.ErrNotFound)
		}
		b = b.Visit(s.now())
		tx.Put(b)
		path = b.Path
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("bookmark visited", zap.String("name", name), zap.String("path", path))
	return path, nil
}

// List yields (name, path) pairs matching filter, ordered by name. Only
// one filter criterion applies; see bookmark.Filter.
func (s *Service) List(filter bookmark.Filter) (iter.Seq2[string, string], error) {
	match, err := filter.Matcher()
	if err != nil {
		return nil, err
	}

	all := s.store.All()
	return func(yield func(string, string) bool) {
		for _, b := range all {
			if !match(b) {
				continue
			}
			if !yield(b.Name, b.Path) {
				return
			}
		}
	}, nil
}

// Stats returns every bookmark ordered by name. The result is empty when
// the store is.
func (s *Service) Stats() []bookmark.Bookmark {
	return s.store.All()
}

// Recent returns up to n visited bookmarks, newest first.
func (s *Service) Recent(n int) []bookmark.Bookmark {
	return bookmark.MostRecent(s.store.All(), n)
}

// Frequent returns up to n bookmarks with the highest access counts.
func (s *Service) Frequent(n int) []bookmark.Bookmark {
	return bookmark.MostFrequent(s.store.All(), n)
}

// Remove deletes a bookmark.
func (s *Service) Remove(ctx context.Context, name string) error {
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if !tx.Has(name) {
			return fmt.Errorf("%q: %w", name, bookmark.ErrNotFound)
		}
		tx.Delete(name)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("bookmark removed", zap.String("name", name))
	return nil
}

// Clear deletes every bookmark once the prompter answers exactly
// ConfirmToken. Any other answer returns bookmark.ErrConfirmationDeclined
// and changes nothing.
func (s *Service) Clear(ctx context.Context) (int, error) {
	question := fmt.Sprintf("Delete all %d bookmarks? Type %q to confirm", s.store.Len(), ConfirmToken)
	answer, err := s.prompter.Ask(question)
	if err != nil {
		return 0, fmt.Errorf("reading confirmation: %w", err)
	}
	if answer != ConfirmToken {
		s.logger.Debug("clear declined", zap.String("answer", answer))
		return 0, bookmark.ErrConfirmationDeclined
	}

	var removed int
	err = s.store.Update(ctx, func(tx *store.Tx) error {
		removed = tx.Clear()
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("store cleared", zap.Int("removed", removed))
	return removed, nil
}

// RenameOptions describes a rename. Empty fields are not applied; a blank
// NewCategory resets the category to the default.
type RenameOptions struct {
	NewName     string
	NewCategory string
}

// Rename moves a bookmark to a new key and/or changes its category. The
// key move happens first; the category is then set on the final key.
func (s *Service) Rename(ctx context.Context, oldName string, opts RenameOptions) (bookmark.Bookmark, error) {
	if oldName == "" {
		return bookmark.Bookmark{}, fmt.Errorf("%w: bookmark name", bookmark.ErrMissingArgument)
	}
	if opts.NewName == "" && opts.NewCategory == "" {
		return bookmark.Bookmark{}, fmt.Errorf("%w: new name or category", bookmark.ErrMissingArgument)
	}
	if opts.NewName != "" {
		if err := bookmark.ValidateName(opts.NewName); err != nil {
			return bookmark.Bookmark{}, err
		}
	}
	if opts.NewCategory != "" {
		if err := bookmark.ValidateField("category", opts.NewCategory); err != nil {
			return bookmark.Bookmark{}, err
		}
	}

	var result bookmark.Bookmark
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		b, ok := tx.Get(oldName)
		if !ok {
			return fmt.Errorf("%q: %w", oldName, bookmark.ErrNotFound)
		}

		if opts.NewName != "" {
			if tx.Has(opts.NewName) {
				return fmt.Errorf("%q: %w", opts.NewName, bookmark.ErrDuplicateName)
			}
			tx.Delete(oldName)
			b.Name = opts.NewName
		}
		if opts.NewCategory != "" {
			b.Category = bookmark.CategoryOrDefault(opts.NewCategory)
		}

		tx.Put(b)
		result = b
		return nil
	})
	if err != nil {
		return bookmark.Bookmark{}, err
	}

	s.logger.Debug("bookmark renamed",
		zap.String("from", oldName),
		zap.String("to", result.Name),
		zap.String("category", result.Category))
	return result, nil
}

func (s *Service) category(category string) string {
	if category == "" {
		return s.defaultCategory
	}
	return category
}

func (s *Service) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", bookmark.ErrInvalidPath)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", bookmark.ErrInvalidPath, path, err)
	}
	if _, err := s.stat(abs); err != nil {
		return "", fmt.Errorf("%w: %q does not exist", bookmark.ErrInvalidPath, path)
	}
	return abs, nil
}
