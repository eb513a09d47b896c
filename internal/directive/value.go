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

// ValueTag discriminates the tagged-value universe the embedded script
// exchanges with the core.
type ValueTag int

const (
	TagContent ValueTag = iota
	TagDirective
	TagString
	TagInt
	TagBool
	TagErr
)

// Value is the sum type of spec §4.2. err is a first-class value, never an
// exception; evaluators must treat it as terminal and must never coerce
// between tags.
type Value struct {
	tag ValueTag

	str string
	i   int64
	b   bool
	err string

	content *Content
	dir     *Directive
}

// ContentVal wraps a Content root as a value.
func ContentVal(c *Content) Value { return Value{tag: TagContent, content: c} }

// DirectiveVal wraps a directive handle by reference.
func DirectiveVal(d *Directive) Value { return Value{tag: TagDirective, dir: d} }

// Str builds a string value.
func Str(s string) Value { return Value{tag: TagString, str: s} }

// Int builds a 64-bit signed integer value.
func Int(i int64) Value { return Value{tag: TagInt, i: i} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{tag: TagBool, b: b} }

// Err builds an error value from a formatted message.
func Err(format string, a ...any) Value {
	return Value{tag: TagErr, err: fmt.Sprintf(format, a...)}
}

// Tag reports which variant is populated.
func (v Value) Tag() ValueTag { return v.tag }

// IsErr reports whether v is an err value.
func (v Value) IsErr() bool { return v.tag == TagErr }

// ErrMessage returns the err message, or "" if v is not an err value.
func (v Value) ErrMessage() string { return v.err }

// AsString returns the string payload, and whether v was actually a string.
func (v Value) AsString() (string, bool) { return v.str, v.tag == TagString }

// AsInt returns the int payload, and whether v was actually an int.
func (v Value) AsInt() (int64, bool) { return v.i, v.tag == TagInt }

// AsBool returns the bool payload, and whether v was actually a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.tag == TagBool }

// AsDirective returns the directive handle, and whether v held one.
func (v Value) AsDirective() (*Directive, bool) { return v.dir, v.tag == TagDirective }

// AsContent returns the content root, and whether v held one.
func (v Value) AsContent() (*Content, bool) { return v.content, v.tag == TagContent }

// Field implements field-access semantics (spec §4.3): on content, yields
// the named directive by reference; on anything else, yields a fixed err.
func (v Value) Field(name string) Value {
	switch v.tag {
	case TagContent:
		d, ok := v.content.ByName(name)
		if !ok {
			return Err("unknown field '%s'", name)
		}
		return DirectiveVal(d)
	case TagDirective:
		return Err(errFieldAccessOnDirective)
	default:
		return Err(errFieldAccessOnPrimitive)
	}
}
