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

// Fixed, byte-for-byte err messages shared across value and builtin
// dispatch. Spec §7 requires these strings verbatim, so they live as
// named constants rather than being reconstructed ad hoc at call sites.
const (
	errFieldAccessOnDirective = "field access on directive"
	errFieldAccessOnPrimitive = "field access on primitive value"

	errBuiltinNotFound = "builtin not found in '%s'"
	errFieldAlreadySet = "field already set"

	errDuplicateKeyFmt = "duplicate key: '%s'"

	errPathWhitespace     = "remove whitespace surrounding path"
	errPathEmpty          = "path is empty"
	errPathAbsolute       = "path must be relative"
	errPathBackslash      = "use '/' instead of '\\' in paths"
	errPathDotComponent   = "'.' and '..' are not allowed in paths"
	errPathEmptyComponent = "empty component in path"
)

// expectedArgFmt builds the "expected 1 <tag> argument" family of messages
// (spec §4.4) for a single-argument, single-assignment setter.
func expectedArgFmt(tag string) string {
	return "expected 1 " + tag + " argument"
}
