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


package plist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>bookmarks</key>
	<array>
		<dict>
			<key>access_count</key>
			<integer>5</integer>
			<key>category</key>
			<string>work</string>
			<key>last_accessed</key>
			<string>2026-03-03T10:00:00Z</string>
			<key>name</key>
			<string>proj</string>
			<key>path</key>
			<string>/home/me/proj</string>
		</dict>
	</array>
</dict>
</plist>
`
	marks, err := New().Read(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, marks, 1)

	assert.Equal(t, "proj", marks[0].Name)
	assert.Equal(t, "/home/me/proj", marks[0].Path)
	assert.Equal(t, "work", marks[0].Category)
	assert.Equal(t, 5, marks[0].AccessCount)
	assert.NotNil(t, marks[0].LastAccessed)
}

func TestRead_Invalid(t *testing.T) {
	_, err := New().Read(context.Background(), strings.NewReader("not a plist"))
	assert.Error(t, err)
}
