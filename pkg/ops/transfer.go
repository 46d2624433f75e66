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

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/store"
	"go.uber.org/zap"
)

// ImportOptions controls how imported bookmarks merge into the store.
type ImportOptions struct {
	// Overwrite replaces existing bookmarks with the same name.
	Overwrite bool

	// KeepMissing imports bookmarks whose path does not exist on this machine.
	KeepMissing bool
}

// ImportResult reports what Import did with each bookmark.
type ImportResult struct {
	Added    []string
	Replaced []string
	Skipped  []string
}

// Import merges bookmarks into the store in a single snapshot write.
// Usage metadata is preserved and relative paths are made absolute against
// the working directory. Invalid entries and, unless KeepMissing is set,
// entries whose path is absent are skipped.
func (s *Service) Import(ctx context.Context, bookmarks []bookmark.Bookmark, opts ImportOptions) (ImportResult, error) {
	var result ImportResult

	err := s.store.Update(ctx, func(tx *store.Tx) error {
		for _, b := range bookmarks {
			b.Category = bookmark.CategoryOrDefault(b.Category)
			if err := b.Validate(); err != nil {
				s.logger.Warn("skipping invalid bookmark", zap.String("name", b.Name), zap.Error(err))
				result.Skipped = append(result.Skipped, b.Name)
				continue
			}
			if abs, err := filepath.Abs(b.Path); err == nil {
				b.Path = abs
			}
			if !opts.KeepMissing {
				if _, err := s.stat(b.Path); err != nil {
					s.logger.Warn("skipping bookmark with missing path",
						zap.String("name", b.Name), zap.String("path", b.Path))
					result.Skipped = append(result.Skipped, b.Name)
					continue
				}
			}

			exists := tx.Has(b.Name)
			switch {
			case exists && !opts.Overwrite:
				s.logger.Debug("skipping existing bookmark", zap.String("name", b.Name))
				result.Skipped = append(result.Skipped, b.Name)
				continue
			case exists:
				result.Replaced = append(result.Replaced, b.Name)
			default:
				result.Added = append(result.Added, b.Name)
			}
			tx.Put(b)
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

// Export returns the full snapshot ordered by name.
func (s *Service) Export() []bookmark.Bookmark {
	return s.store.All()
}

// StorePath returns where the snapshot is persisted.
func (s *Service) StorePath() string {
	return s.store.Path()
}
