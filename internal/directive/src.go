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

// SrcTag discriminates the Src sum type describing where a directive's
// source points.
type SrcTag int

const (
	// SrcNone means no src builtin has been called yet.
	SrcNone SrcTag = iota
	// SrcURL is an absolute external URL.
	SrcURL
	// SrcSelfPage is an implicit self-reference, synthesized by Link
	// placement validation; it is never chosen directly by a builtin.
	SrcSelfPage
	// SrcPage is a cross-document reference (absolute, sub, or sibling).
	SrcPage
	// SrcPageAsset is an asset in the current page's sibling directory.
	SrcPageAsset
	// SrcSiteAsset is an asset in the global asset tree.
	SrcSiteAsset
	// SrcBuildAsset is an asset produced by the build system.
	SrcBuildAsset
)

// PageKind distinguishes the three flavors of cross-document reference.
type PageKind int

const (
	PageAbsolute PageKind = iota
	PageSub
	PageSibling
)

// Src is the tagged union describing a reference target. Resolved is a
// lazy placeholder filled in by a pass outside this core.
type Src struct {
	Tag SrcTag

	// SrcURL
	URL string

	// SrcSelfPage
	SelfPageAlt *string

	// SrcPage
	PageKind PageKind
	Locale   *string

	// SrcPage, SrcPageAsset, SrcSiteAsset, SrcBuildAsset
	Ref string

	// Resolved is never populated by this core; it exists so the shape
	// matches what a downstream resolution pass will fill in.
	Resolved *string
}
