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

// Package script evaluates the embedded directive expression — the part of
// a Markdown link's URL following a leading `$`. It reuses expr-lang/expr's
// tokenizer and parser to get a real expression AST, but never hands that
// AST to expr's own VM: the VM resolves field access and method calls
// through Go reflection and rejects arity/type mismatches at compile time,
// which would make it impossible to surface them as runtime err values the
// way spec §7 requires. Evaluation below is a small hand-written walk of
// the parsed tree that dispatches directly into the directive package's
// Value and builtin-call semantics.
package script

import (
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/northwood-labs/supermd/internal/directive"
)

// Eval parses source as a directive expression and evaluates it against
// content, the root of the directive object model for the current
// document. A parse failure and any evaluation failure both surface as an
// err Value — neither ever panics or returns a Go error.
func Eval(source string, content *directive.Content) directive.Value {
	tree, err := parser.Parse(source)
	if err != nil {
		return directive.Err("%s", err.Error())
	}
	return evalNode(tree.Node, directive.ContentVal(content))
}

// evalNode walks one parsed expression node, with content bound to the
// single free identifier the language allows.
func evalNode(node ast.Node, content directive.Value) directive.Value {
	switch n := node.(type) {
	case nil:
		return directive.Err("empty expression")

	case *ast.IdentifierNode:
		if n.Value == "content" {
			return content
		}
		return directive.Err("unknown identifier '%s'", n.Value)

	case *ast.StringNode:
		return directive.Str(n.Value)

	case *ast.IntegerNode:
		return directive.Int(int64(n.Value))

	case *ast.BoolNode:
		return directive.Bool(n.Value)

	case *ast.ChainNode:
		return evalNode(n.Node, content)

	case *ast.MemberNode:
		recv := evalNode(n.Node, content)
		if recv.IsErr() {
			return recv
		}
		return recv.Field(memberName(n.Property))

	case *ast.CallNode:
		return evalCall(n, content)

	default:
		return directive.Err("unsupported expression syntax")
	}
}

// evalCall handles `<receiver>.<builtin>(args...)`. The language has no
// free-function calls, so the callee must always be a member expression;
// anything else is a syntax error as far as this evaluator is concerned.
func evalCall(n *ast.CallNode, content directive.Value) directive.Value {
	member, ok := n.Callee.(*ast.MemberNode)
	if !ok {
		return directive.Err("unsupported call expression")
	}

	recv := evalNode(member.Node, content)
	if recv.IsErr() {
		return recv
	}

	d, ok := recv.AsDirective()
	if !ok {
		return recv.Field(memberName(member.Property))
	}

	args := make([]directive.Value, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		v := evalNode(a, content)
		if v.IsErr() {
			return v
		}
		args = append(args, v)
	}

	return d.CallBuiltin(memberName(member.Property), args)
}

// memberName extracts a property name from either a bare identifier
// (`.foo`) or a quoted string (`["foo"]`) member expression.
func memberName(n ast.Node) string {
	switch p := n.(type) {
	case *ast.IdentifierNode:
		return p.Value
	case *ast.StringNode:
		return p.Value
	default:
		return ""
	}
}
