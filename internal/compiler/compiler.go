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

// Package compiler drives the directive compiler end to end (spec §4.7):
// mask whitespace inside "$"-prefixed link destinations so CommonMark's
// space-terminated destination grammar can't truncate them (see mask.go),
// parse the result into an AST via goldmark, walk it depth-first preorder,
// find every link node whose destination begins with "$", evaluate the
// expression, validate placement, and attach the resulting directive to
// its node.
package compiler

import (
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/northwood-labs/supermd/internal/diag"
	"github.com/northwood-labs/supermd/internal/directive"
	"github.com/northwood-labs/supermd/internal/mdast"
	"github.com/northwood-labs/supermd/internal/script"
	"github.com/northwood-labs/supermd/internal/validate"
)

// directivePrefix is the sigil that marks a link destination as a
// directive expression rather than an ordinary URL.
const directivePrefix = "$"

// mdParser is the shared goldmark instance: GFM (tables, strikethrough,
// autolinks, task lists) plus automatic heading IDs, since Heading
// directives commonly coexist with heading anchors in real documents.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
).Parser()

// Document is the result of compiling one SuperMD source: the annotated
// goldmark AST plus every directive that was attached to a node, in
// depth-first traversal order. Directives that failed evaluation or
// placement validation are reported to the sink and are not listed here.
type Document struct {
	Root       gast.Node
	Source     []byte
	Directives []*directive.Directive
}

// Compile parses source and runs the full directive pipeline, reporting
// every failure to sink without stopping at the first one (spec §5).
func Compile(source []byte, sink *diag.Sink) *Document {
	root := mdParser.Parse(text.NewReader(maskDirectiveWhitespace(source)))

	doc := &Document{Root: root, Source: source}

	_ = gast.Walk(root, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}

		wrapped := mdast.Wrap(n, source)
		if wrapped.Kind() != mdast.KindLink {
			return gast.WalkContinue, nil
		}

		dest := unmaskDirectiveWhitespace(wrapped.LinkDestination())
		if !strings.HasPrefix(dest, directivePrefix) {
			return gast.WalkContinue, nil
		}

		d := compileDirective(wrapped, dest[len(directivePrefix):], sink, span(wrapped.Raw(), source))
		if d != nil {
			doc.Directives = append(doc.Directives, d)
		}

		return gast.WalkContinue, nil
	})

	return doc
}

// compileDirective runs one directive-link node through evaluation and
// placement validation, returning the attached directive on success or
// nil if the node was left un-annotated.
func compileDirective(node *mdast.Node, expr string, sink *diag.Sink, sp diag.Span) *directive.Directive {
	content := directive.NewContent()
	kind, body, ok := splitKind(expr)
	if !ok {
		sink.Add(diag.Diagnostic{Span: sp, Severity: diag.SeverityError, Message: "unknown directive kind in expression"})
		return nil
	}

	d := directive.NewDirective(kind)
	content.Register(kindFieldName(kind), d)

	result := script.Eval("content."+kindFieldName(kind)+body, content)
	if result.IsErr() {
		sink.Add(diag.Diagnostic{Span: sp, Severity: diag.SeverityError, Message: result.ErrMessage()})
		return nil
	}

	if msg := validate.Placement(node, d); msg != "" {
		sink.Add(diag.Diagnostic{Span: sp, Severity: diag.SeverityError, Message: msg})
		return nil
	}

	node.AttachDirective(d)
	return d
}

// span derives a best-effort byte offset and 1-based line/column for a
// link node, from its first text-bearing descendant's goldmark segment.
// Links with no wrapped text (e.g. "[]($section)") fall back to the zero
// span — there is nothing more specific goldmark gives us.
func span(n gast.Node, source []byte) diag.Span {
	start, end := textSpan(n)

	line, col := 1, 1
	for _, b := range source[:start] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return diag.Span{Start: start, End: end, Line: line, Column: col}
}

func textSpan(n gast.Node) (int, int) {
	if t, ok := n.(*gast.Text); ok {
		seg := t.Segment
		return seg.Start, seg.Stop
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if start, end := textSpan(c); end > start {
			return start, end
		}
	}
	return 0, 0
}

// splitKind reads the leading identifier of a directive expression (the
// part before the first '.' or '(') to select the directive Kind, and
// returns the remainder of the expression unchanged so it can be
// re-assembled behind "content.<field>".
func splitKind(expr string) (directive.Kind, string, bool) {
	i := 0
	for i < len(expr) && (isIdentByte(expr[i])) {
		i++
	}
	name := expr[:i]
	rest := expr[i:]

	switch name {
	case "section":
		return directive.KindSection, rest, true
	case "block":
		return directive.KindBlock, rest, true
	case "heading":
		return directive.KindHeading, rest, true
	case "text":
		return directive.KindText, rest, true
	case "katex":
		return directive.KindKatex, rest, true
	case "link":
		return directive.KindLink, rest, true
	case "code":
		return directive.KindCode, rest, true
	case "image":
		return directive.KindImage, rest, true
	case "video":
		return directive.KindVideo, rest, true
	default:
		return 0, "", false
	}
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func kindFieldName(k directive.Kind) string {
	return k.String()
}
