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

// Package mdast wraps the goldmark Markdown AST behind the read-mostly,
// capability-limited node view the directive compiler needs: kind, parent,
// first child, next sibling, literal text, unlink, and one attach/read slot
// for a directive handle. Nothing outside this package touches a goldmark
// node directly.
package mdast

import (
	"strings"

	gast "github.com/yuin/goldmark/ast"
)

// directiveAttr is the per-node user-data slot a Directive is dangled from.
// goldmark nodes carry a generic attribute map, so no side table is needed.
const directiveAttr = "supermdDirective"

// Kind is the small, core-relevant subset of node kinds the compiler cares
// about. Everything else collapses to KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindDocument
	KindParagraph
	KindHeading
	KindBlockQuote
	KindCode // inline code span
	KindLink
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindBlockQuote:
		return "block quote"
	case KindCode:
		return "code span"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	default:
		return "other element"
	}
}

// Node is an immutable, navigable handle onto one goldmark AST node.
type Node struct {
	n      gast.Node
	source []byte
}

// Wrap returns a Node view over a goldmark node, or nil if n is nil.
func Wrap(n gast.Node, source []byte) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n, source: source}
}

// Raw exposes the underlying goldmark node for the compiler driver, which
// needs it to derive a source span from goldmark's own text segments — a
// capability this view doesn't expose directly since spans are a diagnostic
// concern, not part of the node model itself.
func (n *Node) Raw() gast.Node { return n.n }

// Same reports whether a and b are views over the same underlying node.
func Same(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.n == b.n
}

// Kind reports the node's kind, collapsed to the subset the compiler needs.
func (n *Node) Kind() Kind {
	switch n.n.(type) {
	case *gast.Document:
		return KindDocument
	case *gast.Paragraph:
		return KindParagraph
	case *gast.Heading:
		return KindHeading
	case *gast.Blockquote:
		return KindBlockQuote
	case *gast.CodeSpan:
		return KindCode
	case *gast.Link:
		return KindLink
	case *gast.Image:
		return KindImage
	default:
		return KindOther
	}
}

// Parent returns the node's parent, or nil at the document root.
func (n *Node) Parent() *Node { return Wrap(n.n.Parent(), n.source) }

// FirstChild returns the node's first child, or nil if it has none.
func (n *Node) FirstChild() *Node { return Wrap(n.n.FirstChild(), n.source) }

// NextSibling returns the node's next sibling, or nil if it is the last.
func (n *Node) NextSibling() *Node { return Wrap(n.n.NextSibling(), n.source) }

// Literal returns the node's text content, recursing into descendants for
// container nodes (e.g. the text wrapped by a link or an inline code span).
func (n *Node) Literal() string {
	var buf strings.Builder
	writeLiteral(n.n, n.source, &buf)
	return buf.String()
}

func writeLiteral(node gast.Node, source []byte, buf *strings.Builder) {
	switch tn := node.(type) {
	case *gast.Text:
		buf.Write(tn.Text(source))
	case *gast.String:
		buf.Write(tn.Value)
	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			writeLiteral(c, source, buf)
		}
	}
}

// Unlink detaches the node from its parent. Used by the Katex validator to
// consume the inline code span it copies its formula from.
func (n *Node) Unlink() {
	parent := n.n.Parent()
	if parent == nil {
		return
	}
	parent.RemoveChild(parent, n.n)
}

// AttachDirective dangles an opaque directive value off the node. At most
// one may be attached; the compiler driver never calls this twice for the
// same node.
func (n *Node) AttachDirective(d any) {
	n.n.SetAttributeString(directiveAttr, d)
}

// Directive returns the previously attached directive value, if any.
func (n *Node) Directive() (any, bool) {
	return n.n.AttributeString(directiveAttr)
}

// LinkDestination returns the raw URL of a link node, or "" for any other
// kind.
func (n *Node) LinkDestination() string {
	if l, ok := n.n.(*gast.Link); ok {
		return string(l.Destination)
	}
	return ""
}
