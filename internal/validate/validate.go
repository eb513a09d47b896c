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

// Package validate implements the placement validator (spec §4.5): once a
// directive expression has evaluated successfully, the node it is attached
// to must occupy a legal position in the Markdown tree for its kind.
package validate

import (
	"fmt"

	"github.com/northwood-labs/supermd/internal/directive"
	"github.com/northwood-labs/supermd/internal/mdast"
)

// Fixed, byte-for-byte messages (spec §7) for the rules this package owns.
const (
	errSectionPlacement        = "sections must be top level elements or be embedded in headings"
	errTextPlacement           = "text directive must contain some text between square brackets"
	errRefAlternativeNeedsPage = "'ref' and 'alternative' can only be specified when linking to a content page"
	errMissingSrcCall          = "missing call to 'url', 'asset', …"
	errMandatoryFieldUnsetFmt  = "mandatory field '%s' is unset"
)

// Placement checks node n, the link that directive d is to be attached to
// once validation passes, against the positional rules for d.Kind. It
// returns "" on success, or the single diagnostic message to report.
func Placement(n *mdast.Node, d *directive.Directive) string {
	switch d.Kind {
	case directive.KindSection:
		return validateSection(n, d)
	case directive.KindBlock:
		return validateBlock(n)
	case directive.KindHeading:
		return validateHeading(n)
	case directive.KindText:
		return validateText(n)
	case directive.KindKatex:
		return validateKatex(n, d)
	case directive.KindLink:
		return validateLink(d)
	default: // Image, Video, Code: no positional constraint beyond mandatory fields
		return validateMandatory(d)
	}
}

func validateSection(n *mdast.Node, d *directive.Directive) string {
	if d.End != nil {
		if d.ID != nil || d.Attrs != nil {
			return "field already set"
		}
	}

	// n is always the directive-bearing link itself (spec §4.7 finds
	// directives by walking LINK nodes); the placeholder paragraph or
	// heading it sits inside is n.Parent(), and that element must in
	// turn be a direct document child.
	placeholder := n.Parent()
	if placeholder == nil {
		return errSectionPlacement
	}

	switch placeholder.Kind() {
	case mdast.KindParagraph:
		if placeholder.Parent() == nil || placeholder.Parent().Kind() != mdast.KindDocument {
			return errSectionPlacement
		}
		if !mdast.Same(placeholder.FirstChild(), n) {
			return errSectionPlacement
		}
		if n.FirstChild() != nil {
			return errSectionPlacement
		}
	case mdast.KindHeading:
		if placeholder.Parent() == nil || placeholder.Parent().Kind() != mdast.KindDocument {
			return errSectionPlacement
		}
	default:
		return errSectionPlacement
	}

	return validateMandatory(d)
}

// validateBlock implements the placeholder/titled-block rule. n is always
// the directive-bearing link; its parent is the placeholder paragraph or
// titled heading, and that element's parent must be a block quote. The
// placeholder paragraph must be the block quote's first child and must
// start with the link, and the link must wrap no text; text after the link
// in the same paragraph is not checked. A titled block's heading carries
// no such constraint.
func validateBlock(n *mdast.Node) string {
	placeholder := n.Parent()
	if placeholder == nil {
		return "block directives must be a paragraph or heading directly under a quote block"
	}

	grandparent := placeholder.Parent()
	if grandparent == nil || grandparent.Kind() != mdast.KindBlockQuote {
		grandparentKind := "document"
		if grandparent != nil {
			grandparentKind = grandparent.Kind().String()
		}
		return fmt.Sprintf("block directives must be a paragraph or heading directly under a quote block, found under %s", grandparentKind)
	}

	switch placeholder.Kind() {
	case mdast.KindParagraph:
		if !mdast.Same(grandparent.FirstChild(), placeholder) {
			return "block definitions directly under a quote block cannot embed any text"
		}
		if !mdast.Same(placeholder.FirstChild(), n) || n.FirstChild() != nil {
			return "block definitions directly under a quote block cannot embed any text"
		}
	case mdast.KindHeading:
		// titled block: no first-child or no-text constraint
	default:
		return fmt.Sprintf("block directives must be a paragraph or heading directly under a quote block, found %s", placeholder.Kind())
	}

	return ""
}

// validateHeading requires the directive-bearing link to sit directly
// inside a heading (e.g. `# [Welcome]($heading.id('intro'))`).
func validateHeading(n *mdast.Node) string {
	parent := n.Parent()
	if parent == nil || parent.Kind() != mdast.KindHeading {
		kind := "document"
		if parent != nil {
			kind = parent.Kind().String()
		}
		return fmt.Sprintf("heading directives must be attached to a heading, found under %s", kind)
	}
	return ""
}

// validateText requires the directive-bearing link to itself wrap
// non-empty literal text (`[some text]($text)`, not `[]($text)`).
func validateText(n *mdast.Node) string {
	first := n.FirstChild()
	if first == nil || first.Literal() == "" {
		return errTextPlacement
	}
	return ""
}

// validateKatex requires an inline code child, copies its literal into
// Katex.formula, and unlinks that child from the tree (spec's example 6).
func validateKatex(n *mdast.Node, d *directive.Directive) string {
	first := n.FirstChild()
	if first == nil || first.Kind() != mdast.KindCode {
		return "katex directives require an inline code span as their first child"
	}
	formula := first.Literal()
	if formula == "" {
		return "katex directives require an inline code span as their first child"
	}
	d.Formula = formula
	first.Unlink()
	return ""
}

// validateLink implements the ref/alternative-implies-page rule and the
// mandatory-src fallback (spec §4.5 Link).
func validateLink(d *directive.Directive) string {
	refOrAlt := d.Ref != nil || d.Alternative != nil

	if refOrAlt && d.Src == nil {
		d.Src = &directive.Src{Tag: directive.SrcSelfPage}
		return ""
	}

	if refOrAlt && d.Src != nil && d.Src.Tag != directive.SrcPage && d.Src.Tag != directive.SrcSelfPage {
		return errRefAlternativeNeedsPage
	}

	if d.Src == nil {
		return errMissingSrcCall
	}

	return ""
}

// validateMandatory runs the generic mandatory-field check shared by every
// kind that has no additional positional constraint.
func validateMandatory(d *directive.Directive) string {
	if f, unset := d.Mandatory(); unset {
		return fmt.Sprintf(errMandatoryFieldUnsetFmt, f)
	}
	return ""
}
