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

// Kind discriminates the nine directive variants. Once picked on a
// Directive it never changes.
type Kind int

const (
	KindSection Kind = iota
	KindBlock
	KindHeading
	KindText
	KindKatex
	KindLink
	KindCode
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindBlock:
		return "block"
	case KindHeading:
		return "heading"
	case KindText:
		return "text"
	case KindKatex:
		return "katex"
	case KindLink:
		return "link"
	case KindCode:
		return "code"
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}
