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


// Package legacy provides an input adapter for the pipe-delimited bookmark
// file written by older shell implementations of the tool.
//
// The record layout matches the dirfavs snapshot, but lastAccessed holds
// whatever `date` printed on the machine that wrote it. Read tries the
// common renderings and treats anything else as never accessed.
package legacy

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/input"
	"github.com/cloudygreybeard/dirfavs/pkg/store"
	"go.uber.org/zap"
)

// layouts are tried in order.
var layouts = []string{
	time.RFC3339Nano,
	time.UnixDate,
	"Mon _2 Jan 2006 03:04:05 PM MST",
	"Mon _2 Jan 2006 15:04:05 MST",
	"Mon _2 Jan 15:04:05 MST 2006",
	time.ANSIC,
	time.RubyDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.DateTime,
}

func init() {
	adapter.RegisterInput(New())
}

// Adapter implements input.Adapter for legacy bookmark files.
type Adapter struct{}

// New creates a new legacy input adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "legacy"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Legacy bookmark file"
}

// Extensions returns nil; the legacy file has no extension and must be
// selected with --format.
func (a *Adapter) Extensions() []string {
	return nil
}

// Read parses every well-formed record in r.
func (a *Adapter) Read(ctx context.Context, r io.Reader) ([]bookmark.Bookmark, error) {
	logger := input.Logger(ctx)

	bookmarks, err := store.NewDecoder(r).
		WithLogger(logger).
		WithTimeParser(func(field string) (*time.Time, error) {
			t, ok := ParseTime(field)
			if !ok {
				logger.Warn("unrecognised timestamp, treating as never accessed",
					zap.String("value", field))
				return nil, nil
			}
			return &t, nil
		}).
		Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to parse legacy file: %w", err)
	}
	return bookmarks, nil
}

// ParseTime interprets a timestamp written by `date`. Runs of spaces are
// collapsed first. Values without a zone are taken as local time.
func ParseTime(value string) (time.Time, bool) {
	value = strings.Join(strings.Fields(value), " ")
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
