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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"go.uber.org/zap"
)

// recordFields is the number of fields in a snapshot line:
// name|path|category|lastAccessed|accessCount
const recordFields = 5

// TimeParser turns the lastAccessed field into a timestamp. It is only
// called for non-empty fields. Returning nil with no error marks the
// bookmark as never accessed.
type TimeParser func(field string) (*time.Time, error)

// ParseTime is the default TimeParser and accepts bookmark.TimeLayout only.
func ParseTime(field string) (*time.Time, error) {
	t, err := time.Parse(bookmark.TimeLayout, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Decoder reads snapshot records.
type Decoder struct {
	r         io.Reader
	parseTime TimeParser
	logger    *zap.Logger
}

// NewDecoder returns a decoder reading from r with the default time parser.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, parseTime: ParseTime, logger: zap.NewNop()}
}

// WithTimeParser replaces the lastAccessed parser.
func (d *Decoder) WithTimeParser(p TimeParser) *Decoder {
	d.parseTime = p
	return d
}

// WithLogger sets the logger used to report skipped records.
func (d *Decoder) WithLogger(l *zap.Logger) *Decoder {
	if l != nil {
		d.logger = l
	}
	return d
}

// Decode reads every record. Lines with the wrong number of fields, and
// records that Encode would refuse, are skipped. An unparseable access count or timestamp is
// reported as bookmark.ErrCorruptStore.
func (d *Decoder) Decode() ([]bookmark.Bookmark, error) {
	var bookmarks []bookmark.Bookmark

	scanner := bufio.NewScanner(d.r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, bookmark.Delimiter)
		if len(fields) != recordFields {
			d.logger.Warn("skipping malformed record",
				zap.Int("line", lineNo),
				zap.Int("fields", len(fields)))
			continue
		}

		b, err := d.parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := b.Validate(); err != nil {
			d.logger.Warn("skipping invalid record",
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		bookmarks = append(bookmarks, b)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return bookmarks, nil
}

func (d *Decoder) parseRecord(fields []string) (bookmark.Bookmark, error) {
	b := bookmark.Bookmark{
		Name:     fields[0],
		Path:     fields[1],
		Category: bookmark.CategoryOrDefault(fields[2]),
	}

	count, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil || count < 0 {
		return b, fmt.Errorf("%w: invalid access count %q for %q", bookmark.ErrCorruptStore, fields[4], b.Name)
	}
	b.AccessCount = count

	if fields[3] != "" {
		t, err := d.parseTime(fields[3])
		if err != nil {
			return b, fmt.Errorf("%w: invalid last access time %q for %q", bookmark.ErrCorruptStore, fields[3], b.Name)
		}
		b.LastAccessed = t
	}

	return b, nil
}

// FormatRecord renders b as a single snapshot line without the newline.
func FormatRecord(b bookmark.Bookmark) string {
	last := ""
	if b.LastAccessed != nil {
		last = b.LastAccessed.UTC().Format(bookmark.TimeLayout)
	}
	return strings.Join([]string{
		b.Name,
		b.Path,
		b.Category,
		last,
		strconv.Itoa(b.AccessCount),
	}, bookmark.Delimiter)
}

// Encode writes one record per line, sorted by name.
func Encode(w io.Writer, bookmarks []bookmark.Bookmark) error {
	sorted := append([]bookmark.Bookmark(nil), bookmarks...)
	bookmark.SortByName(sorted)

	bw := bufio.NewWriter(w)
	for _, b := range sorted {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("encoding %q: %w", b.Name, err)
		}
		if _, err := bw.WriteString(FormatRecord(b) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
