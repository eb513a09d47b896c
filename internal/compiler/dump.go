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

package compiler

import (
	"fmt"
	"strings"

	gast "github.com/yuin/goldmark/ast"

	"github.com/northwood-labs/supermd/internal/mdast"
)

// Dump renders a debug view of the annotated AST: one line per node, with
// attached directives called out. It is not an HTML renderer — the core
// has no rendering story (spec's Non-goals) — just a way to eyeball what
// the compiler produced.
func (doc *Document) Dump() string {
	var b strings.Builder
	dumpNode(doc.Root, doc.Source, 0, &b)
	return b.String()
}

func dumpNode(n gast.Node, source []byte, depth int, b *strings.Builder) {
	wrapped := mdast.Wrap(n, source)
	fmt.Fprintf(b, "%s%s", strings.Repeat("  ", depth), wrapped.Kind())

	if d, ok := wrapped.Directive(); ok {
		fmt.Fprintf(b, " [directive=%v]", d)
	}
	b.WriteByte('\n')

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		dumpNode(c, source, depth+1, b)
	}
}
