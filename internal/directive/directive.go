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

import "fmt"

// Directive is the single struct backing all nine kinds (spec §4.3). Every
// field is single-assignment: once non-nil/non-zero by way of a builtin,
// a second attempt to set it returns err("field already set").
type Directive struct {
	Kind Kind

	// Common fields, legal regardless of kind.
	ID    *string
	Attrs []string
	Title *string
	Data  map[string]string

	// Section
	End *bool

	// Katex
	Formula string

	// Link
	Ref         *string
	RefUnsafe   bool
	Alternative *string
	New         *bool

	// Image
	Alt    *string
	Linked *bool
	// Size is part of the data model but has no dedicated builtin in the
	// dispatch table (spec §4.4 never lists one); nothing in this core
	// populates it today, so it stays nil until a later pass does.
	Size *ImageSize

	// Video
	Loop     *bool
	Muted    *bool
	Autoplay *bool
	Controls *bool
	Pip      *bool

	// Code
	Language *string

	// Image, Video, Code, Link share a single src slot.
	Src *Src
}

// ImageSize is the optional, builtin-less width/height pair on Image.
type ImageSize struct {
	W int
	H int
}

// NewDirective returns a zero-valued directive of the given kind.
func NewDirective(k Kind) *Directive {
	return &Directive{Kind: k}
}

// Content is the root of the directive object model: one slot per kind,
// keyed by the name the script uses for field access (spec §4.3).
type Content struct {
	byName map[string]*Directive
}

// NewContent returns an empty Content root.
func NewContent() *Content {
	return &Content{byName: make(map[string]*Directive)}
}

// Register attaches a directive under a field name, overwriting any prior
// directive registered under that name. The compiler driver calls this once
// per directive-bearing node as the tree is walked.
func (c *Content) Register(name string, d *Directive) {
	c.byName[name] = d
}

// ByName returns the directive registered under name, by reference.
func (c *Content) ByName(name string) (*Directive, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// FieldIsSet reports whether the named field has already been assigned, for
// the generic "field already set" / "mandatory field unset" checks.
func (d *Directive) FieldIsSet(name string) bool {
	switch name {
	case "id":
		return d.ID != nil
	case "attrs":
		return d.Attrs != nil
	case "title":
		return d.Title != nil
	case "data":
		return d.Data != nil
	case "end":
		return d.End != nil
	case "formula":
		return d.Formula != ""
	case "ref":
		return d.Ref != nil
	case "alternative":
		return d.Alternative != nil
	case "new":
		return d.New != nil
	case "alt":
		return d.Alt != nil
	case "linked":
		return d.Linked != nil
	case "size":
		return d.Size != nil
	case "loop":
		return d.Loop != nil
	case "muted":
		return d.Muted != nil
	case "autoplay":
		return d.Autoplay != nil
	case "controls":
		return d.Controls != nil
	case "pip":
		return d.Pip != nil
	case "language":
		return d.Language != nil
	case "src":
		return d.Src != nil
	default:
		return false
	}
}

// directiveMandatory lists the common-record fields every kind requires.
// None today; kept as a named hook so a future kind needing one has a home.
func (d *Directive) directiveMandatory() []string {
	return nil
}

// mandatory lists the kind-record fields this directive's kind requires.
func (d *Directive) mandatory() []string {
	switch d.Kind {
	case KindImage, KindVideo, KindCode:
		return []string{"src"}
	default:
		return nil
	}
}

// Mandatory reports the first unset mandatory field, common record first
// then kind record, or ("", false) if every mandatory field is set.
func (d *Directive) Mandatory() (string, bool) {
	for _, f := range d.directiveMandatory() {
		if !d.FieldIsSet(f) {
			return f, true
		}
	}
	for _, f := range d.mandatory() {
		if !d.FieldIsSet(f) {
			return f, true
		}
	}
	return "", false
}

// String gives a terse debug rendering: kind, id if set, and src tag if
// the kind carries one. Intended for the compiler's AST dump, not for any
// production output.
func (d *Directive) String() string {
	s := d.Kind.String()
	if d.ID != nil {
		s += fmt.Sprintf(" id=%q", *d.ID)
	}
	if d.Src != nil {
		s += fmt.Sprintf(" src=%s", d.Src.Tag)
	}
	return s
}

func (t SrcTag) String() string {
	switch t {
	case SrcURL:
		return "url"
	case SrcSelfPage:
		return "self_page"
	case SrcPage:
		return "page"
	case SrcPageAsset:
		return "page_asset"
	case SrcSiteAsset:
		return "site_asset"
	case SrcBuildAsset:
		return "build_asset"
	default:
		return "none"
	}
}
