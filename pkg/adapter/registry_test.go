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


package adapter

import (
	"context"
	"io"
	"testing"

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	name string
	exts []string
}

func (f fakeInput) Name() string         { return f.name }
func (f fakeInput) DisplayName() string  { return f.name }
func (f fakeInput) Extensions() []string { return f.exts }
func (f fakeInput) Read(context.Context, io.Reader) ([]bookmark.Bookmark, error) {
	return nil, nil
}

type fakeOutput struct {
	name string
	exts []string
}

func (f fakeOutput) Name() string         { return f.name }
func (f fakeOutput) DisplayName() string  { return f.name }
func (f fakeOutput) Extensions() []string { return f.exts }
func (f fakeOutput) Render([]bookmark.Bookmark, output.RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestInputs(t *testing.T) {
	RegisterInput(fakeInput{name: "zz-test-csv", exts: []string{".csv"}})
	RegisterInput(fakeInput{name: "aa-test-raw"})

	names := ListInputs()
	assert.Contains(t, names, "zz-test-csv")
	assert.Contains(t, names, "aa-test-raw")
	assert.IsIncreasing(t, names)

	a, ok := GetInput("zz-test-csv")
	require.True(t, ok)
	assert.Equal(t, "zz-test-csv", a.Name())

	a, ok = InputForPath("/tmp/export.CSV")
	require.True(t, ok)
	assert.Equal(t, "zz-test-csv", a.Name())

	_, ok = InputForPath("/tmp/bookmarks")
	assert.False(t, ok)
	_, ok = GetInput("missing")
	assert.False(t, ok)
}

func TestOutputs(t *testing.T) {
	RegisterOutput(fakeOutput{name: "zz-test-html", exts: []string{".html", ".htm"}})

	assert.Contains(t, ListOutputs(), "zz-test-html")

	a, ok := OutputForPath("index.htm")
	require.True(t, ok)
	assert.Equal(t, "zz-test-html", a.Name())

	_, ok = OutputForPath("index.txt")
	assert.False(t, ok)
}
