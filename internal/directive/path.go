// Copyright 2024, Northwood Labs
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

package directive

import "strings"

// pathValidationError is the single source of truth (spec §4.6) shared by
// every asset/page builtin: same string must produce the same verdict
// wherever it is later re-checked by a downstream HTML compiler.
//
// Checks run in this fixed order:
//  1. surrounding whitespace
//  2. empty string
//  3. leading '/'
//  4. backslash anywhere
//  5. any '.' or '..' path component
//  6. an empty component followed by more components (a single trailing
//     empty component, i.e. a trailing '/', is fine and is stripped by
//     the caller via stripTrailingSlash)
func pathValidationError(p string) (string, bool) {
	if strings.TrimSpace(p) != p {
		return errPathWhitespace, true
	}
	if p == "" {
		return errPathEmpty, true
	}
	if strings.HasPrefix(p, "/") {
		return errPathAbsolute, true
	}
	if strings.Contains(p, "\\") {
		return errPathBackslash, true
	}

	parts := strings.Split(p, "/")
	for _, part := range parts {
		if part == "." || part == ".." {
			return errPathDotComponent, true
		}
	}
	for i, part := range parts {
		last := i == len(parts)-1
		if part == "" && !last {
			return errPathEmptyComponent, true
		}
	}

	return "", false
}

// stripTrailingSlash removes exactly one trailing '/', matching how
// page("a/b/") is stored as "a/b".
func stripTrailingSlash(p string) string {
	return strings.TrimSuffix(p, "/")
}
