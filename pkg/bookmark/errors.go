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

package bookmark

import "errors"

// Errors returned by the store and operations. Callers match them with
// errors.Is; the returned errors carry the offending name or value.
var (
	ErrDuplicateName        = errors.New("bookmark already exists")
	ErrInvalidPath          = errors.New("invalid path")
	ErrInvalidName          = errors.New("invalid name")
	ErrNotFound             = errors.New("bookmark not found")
	ErrMissingArgument      = errors.New("missing argument")
	ErrCorruptStore         = errors.New("corrupt bookmark store")
	ErrConfirmationDeclined = errors.New("confirmation declined")
)
