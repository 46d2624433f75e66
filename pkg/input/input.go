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


// Package input provides the Adapter interface for bookmark importers.
//
// Input adapters parse bookmarks exported by dirfavs itself or by other
// directory bookmarking tools. Each adapter registers itself with the
// adapter registry from init() and is selected with --format, or by file
// extension when no format is given.
//
// # Implementing an Input Adapter
//
//  1. Create a new package under pkg/input/
//  2. Implement the Adapter interface
//  3. Register via init() using adapter.RegisterInput()
//  4. Import in cmd/root.go to include in the build
//
// Example:
//
//	package csv
//
//	func init() {
//	    adapter.RegisterInput(New())
//	}
//
//	type Adapter struct{}
//
//	func New() *Adapter { return &Adapter{} }
//
//	func (a *Adapter) Name() string         { return "csv" }
//	func (a *Adapter) DisplayName() string  { return "CSV" }
//	func (a *Adapter) Extensions() []string { return []string{".csv"} }
//
//	func (a *Adapter) Read(ctx context.Context, r io.Reader) ([]bookmark.Bookmark, error) {
//	    // Implement parsing here
//	    return nil, nil
//	}
package input

import (
	"context"
	"io"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"go.uber.org/zap"
)

// Adapter is the interface for bookmark importers.
type Adapter interface {
	// Name returns the unique adapter identifier used in --format.
	// Should be lowercase, alphanumeric.
	Name() string

	// DisplayName returns a human-friendly name for UI display.
	DisplayName() string

	// Extensions returns file extensions this adapter recognises,
	// including the leading dot. May be empty.
	Extensions() []string

	// Read parses every bookmark in r. Returned bookmarks must have a
	// non-empty category; usage metadata is carried over when present.
	Read(ctx context.Context, r io.Reader) ([]bookmark.Bookmark, error)
}

type loggerKey struct{}

// WithLogger returns a context carrying l for adapters to report what they
// skip or repair.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger carried by ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}
