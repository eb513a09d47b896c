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

import (
	"github.com/nlnwa/whatwg-url/url"
)

// BuiltinFunc implements one named builtin against a directive handle and
// its call arguments, returning a Value (the directive handle itself, on
// success, for mutating builtins; some other Value for read-only ones).
type BuiltinFunc func(d *Directive, args []Value) Value

// commonBuiltins are legal regardless of kind (spec §4.4).
var commonBuiltins = map[string]BuiltinFunc{
	"id":    biID,
	"attrs": biAttrs,
	"title": biTitle,
	"data":  biData,
}

// kindBuiltins are resolved first, before falling back to commonBuiltins.
var kindBuiltins = map[Kind]map[string]BuiltinFunc{
	// Section has no builtins of its own; it reaches only the common
	// id/attrs/title/data builtins via fallback. Its end field is read by
	// the placement validator (spec's open question: "end" is reachable
	// in validation but intentionally has no public builtin).
	KindLink: {
		"url":         biURL,
		"asset":       biAsset,
		"siteAsset":   biSiteAsset,
		"buildAsset":  biBuildAsset,
		"page":        biPage,
		"sub":         biSub,
		"sibling":     biSibling,
		"ref":         biRef,
		"unsafeRef":   biUnsafeRef,
		"alternative": biAlternative,
		"new":         biNew,
	},
	KindImage: {
		"url":        biURL,
		"asset":      biAsset,
		"siteAsset":  biSiteAsset,
		"buildAsset": biBuildAsset,
		"page":       biPage,
		"sub":        biSub,
		"sibling":    biSibling,
		"alt":        biAlt,
		"linked":     biLinked,
	},
	KindVideo: {
		"url":        biURL,
		"asset":      biAsset,
		"siteAsset":  biSiteAsset,
		"buildAsset": biBuildAsset,
		"page":       biPage,
		"sub":        biSub,
		"sibling":    biSibling,
		"loop":       biLoop,
		"muted":      biMuted,
		"autoplay":   biAutoplay,
		"controls":   biControls,
		"pip":        biPip,
	},
	KindCode: {
		"url":        biURL,
		"asset":      biAsset,
		"siteAsset":  biSiteAsset,
		"buildAsset": biBuildAsset,
		"page":       biPage,
		"sub":        biSub,
		"sibling":    biSibling,
		"language":   biLanguage,
	},
}

// CallBuiltin implements the two-level dispatch of spec §4.4: the active
// kind's table is tried first, then the common table, else
// err("builtin not found in '<kind>'").
func (d *Directive) CallBuiltin(name string, args []Value) Value {
	if table, ok := kindBuiltins[d.Kind]; ok {
		if fn, ok := table[name]; ok {
			return fn(d, args)
		}
	}
	if fn, ok := commonBuiltins[name]; ok {
		return fn(d, args)
	}
	return Err(errBuiltinNotFound, d.Kind.String())
}

// expectOneString validates a single-string-argument call, returning the
// string and a nil error Value, or a zero string and the err Value to
// return verbatim.
func expectOneString(args []Value, tag string) (string, *Value) {
	if len(args) != 1 {
		e := Err(expectedArgFmt(tag))
		return "", &e
	}
	s, ok := args[0].AsString()
	if !ok {
		e := Err(expectedArgFmt(tag))
		return "", &e
	}
	return s, nil
}

func expectOneBool(args []Value) (bool, *Value) {
	if len(args) != 1 {
		e := Err(expectedArgFmt("bool"))
		return false, &e
	}
	b, ok := args[0].AsBool()
	if !ok {
		e := Err(expectedArgFmt("bool"))
		return false, &e
	}
	return b, nil
}

// expectOneOrTwoStrings validates the arity-1-or-2, strings-only contract
// shared by page/sub/sibling.
func expectOneOrTwoStrings(args []Value) (ref string, locale *string, errv *Value) {
	if len(args) != 1 && len(args) != 2 {
		e := Err("expected 1 or 2 string arguments")
		return "", nil, &e
	}
	ref, ok := args[0].AsString()
	if !ok {
		e := Err("expected 1 or 2 string arguments")
		return "", nil, &e
	}
	if len(args) == 2 {
		l, ok := args[1].AsString()
		if !ok {
			e := Err("expected 1 or 2 string arguments")
			return "", nil, &e
		}
		locale = &l
	}
	return ref, locale, nil
}

// --- common builtins ---

func biID(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("id") {
		return Err(errFieldAlreadySet)
	}
	d.ID = &s
	return DirectiveVal(d)
}

func biAttrs(d *Directive, args []Value) Value {
	if len(args) == 0 {
		return Err(expectedArgFmt("string"))
	}
	attrs := make([]string, 0, len(args))
	for _, a := range args {
		s, ok := a.AsString()
		if !ok {
			return Err(expectedArgFmt("string"))
		}
		attrs = append(attrs, s)
	}
	if d.FieldIsSet("attrs") {
		return Err(errFieldAlreadySet)
	}
	d.Attrs = attrs
	return DirectiveVal(d)
}

func biTitle(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("title") {
		return Err(errFieldAlreadySet)
	}
	d.Title = &s
	return DirectiveVal(d)
}

func biData(d *Directive, args []Value) Value {
	if len(args) == 0 || len(args)%2 != 0 {
		return Err(expectedArgFmt("string"))
	}
	if d.FieldIsSet("data") {
		return Err(errFieldAlreadySet)
	}
	m := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		k, ok := args[i].AsString()
		if !ok {
			return Err(expectedArgFmt("string"))
		}
		v, ok := args[i+1].AsString()
		if !ok {
			return Err(expectedArgFmt("string"))
		}
		if _, dup := m[k]; dup {
			return Err(errDuplicateKeyFmt, k)
		}
		m[k] = v
	}
	d.Data = m
	return DirectiveVal(d)
}

// --- section-only ---

// biEnd is not wired into kindBuiltins: the behavior around Section.End
// is not settled upstream, so no expression can reach this yet. Kept so
// the validator's End-dependent rule has something concrete to read.
func biEnd(d *Directive, args []Value) Value {
	b, errv := expectOneBool(args)
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("end") {
		return Err(errFieldAlreadySet)
	}
	d.End = &b
	return DirectiveVal(d)
}

// --- src-setting builtins (mutually exclusive across all kinds that have
// a src slot) ---

func biURL(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.Src != nil {
		return Err(errFieldAlreadySet)
	}
	u, err := url.Parse(s)
	if err != nil {
		return Err("%s", err.Error())
	}
	if u.Scheme() == "" {
		return Err("URLs must specify a scheme; use an asset builtin for relative paths")
	}
	d.Src = &Src{Tag: SrcURL, URL: s}
	return DirectiveVal(d)
}

func biAsset(d *Directive, args []Value) Value {
	return setSrcFromPath(d, args, SrcPageAsset, true)
}

func biSiteAsset(d *Directive, args []Value) Value {
	return setSrcFromPath(d, args, SrcSiteAsset, true)
}

func biBuildAsset(d *Directive, args []Value) Value {
	return setSrcFromPath(d, args, SrcBuildAsset, false)
}

func setSrcFromPath(d *Directive, args []Value, tag SrcTag, validate bool) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.Src != nil {
		return Err(errFieldAlreadySet)
	}
	if validate {
		if msg, bad := pathValidationError(s); bad {
			return Err("%s", msg)
		}
		s = stripTrailingSlash(s)
	}
	d.Src = &Src{Tag: tag, Ref: s}
	return DirectiveVal(d)
}

func biPage(d *Directive, args []Value) Value { return setSrcFromPage(d, args, PageAbsolute) }
func biSub(d *Directive, args []Value) Value  { return setSrcFromPage(d, args, PageSub) }
func biSibling(d *Directive, args []Value) Value {
	return setSrcFromPage(d, args, PageSibling)
}

func setSrcFromPage(d *Directive, args []Value, kind PageKind) Value {
	ref, locale, errv := expectOneOrTwoStrings(args)
	if errv != nil {
		return *errv
	}
	if d.Src != nil {
		return Err(errFieldAlreadySet)
	}
	if msg, bad := pathValidationError(ref); bad {
		return Err("%s", msg)
	}
	ref = stripTrailingSlash(ref)
	d.Src = &Src{Tag: SrcPage, PageKind: kind, Ref: ref, Locale: locale}
	return DirectiveVal(d)
}

// --- link-only ---

func biRef(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("ref") {
		return Err(errFieldAlreadySet)
	}
	d.Ref = &s
	return DirectiveVal(d)
}

func biUnsafeRef(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("ref") {
		return Err(errFieldAlreadySet)
	}
	d.Ref = &s
	d.RefUnsafe = true
	return DirectiveVal(d)
}

func biAlternative(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("alternative") {
		return Err(errFieldAlreadySet)
	}
	d.Alternative = &s
	return DirectiveVal(d)
}

func biNew(d *Directive, args []Value) Value {
	b, errv := expectOneBool(args)
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("new") {
		return Err(errFieldAlreadySet)
	}
	d.New = &b
	return DirectiveVal(d)
}

// --- image ---

func biAlt(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("alt") {
		return Err(errFieldAlreadySet)
	}
	d.Alt = &s
	return DirectiveVal(d)
}

func biLinked(d *Directive, args []Value) Value {
	b, errv := expectOneBool(args)
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("linked") {
		return Err(errFieldAlreadySet)
	}
	d.Linked = &b
	return DirectiveVal(d)
}

// --- video ---

func biLoop(d *Directive, args []Value) Value     { return setBoolField(d, args, "loop", &d.Loop) }
func biMuted(d *Directive, args []Value) Value    { return setBoolField(d, args, "muted", &d.Muted) }
func biAutoplay(d *Directive, args []Value) Value { return setBoolField(d, args, "autoplay", &d.Autoplay) }
func biControls(d *Directive, args []Value) Value { return setBoolField(d, args, "controls", &d.Controls) }
func biPip(d *Directive, args []Value) Value      { return setBoolField(d, args, "pip", &d.Pip) }

func setBoolField(d *Directive, args []Value, name string, slot **bool) Value {
	b, errv := expectOneBool(args)
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet(name) {
		return Err(errFieldAlreadySet)
	}
	*slot = &b
	return DirectiveVal(d)
}

// --- code ---

func biLanguage(d *Directive, args []Value) Value {
	s, errv := expectOneString(args, "string")
	if errv != nil {
		return *errv
	}
	if d.FieldIsSet("language") {
		return Err(errFieldAlreadySet)
	}
	d.Language = &s
	return DirectiveVal(d)
}
