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
	"testing"

	"github.com/stretchr/testify/assert"
)

// <https://github.com/golang/go/wiki/TableDrivenTests>
func TestBiID(t *testing.T) {
	for name, tc := range map[string]struct {
		Args     []Value
		Repeat   bool
		WantErr  string
		WantID   string
	}{
		"single string": {
			Args:   []Value{Str("intro")},
			WantID: "intro",
		},
		"wrong arity": {
			Args:    []Value{Str("a"), Str("b")},
			WantErr: "expected 1 string argument",
		},
		"wrong type": {
			Args:    []Value{Int(1)},
			WantErr: "expected 1 string argument",
		},
		"already set": {
			Args:    []Value{Str("intro")},
			Repeat:  true,
			WantErr: "field already set",
		},
	} {
		t.Run(name, func(t *testing.T) {
			d := NewDirective(KindSection)
			if tc.Repeat {
				_ = biID(d, []Value{Str("first")})
			}

			got := biID(d, tc.Args)

			if tc.WantErr != "" {
				assert.True(t, got.IsErr())
				assert.Equal(t, tc.WantErr, got.ErrMessage())
				return
			}

			assert.False(t, got.IsErr())
			assert.Equal(t, tc.WantID, *d.ID)
		})
	}
}

func TestBiAttrs(t *testing.T) {
	for name, tc := range map[string]struct {
		Args    []Value
		WantErr string
		Want    []string
	}{
		"one": {
			Args: []Value{Str("a")},
			Want: []string{"a"},
		},
		"many with duplicates": {
			Args: []Value{Str("a"), Str("b"), Str("a")},
			Want: []string{"a", "b", "a"},
		},
		"empty": {
			Args:    nil,
			WantErr: "expected 1 string argument",
		},
		"non-string": {
			Args:    []Value{Str("a"), Bool(true)},
			WantErr: "expected 1 string argument",
		},
	} {
		t.Run(name, func(t *testing.T) {
			d := NewDirective(KindBlock)
			got := biAttrs(d, tc.Args)

			if tc.WantErr != "" {
				assert.True(t, got.IsErr())
				assert.Equal(t, tc.WantErr, got.ErrMessage())
				return
			}

			assert.Equal(t, tc.Want, d.Attrs)
		})
	}
}

func TestBiData(t *testing.T) {
	for name, tc := range map[string]struct {
		Args    []Value
		WantErr string
		Want    map[string]string
	}{
		"one pair": {
			Args: []Value{Str("k"), Str("v")},
			Want: map[string]string{"k": "v"},
		},
		"odd count": {
			Args:    []Value{Str("k")},
			WantErr: "expected 1 string argument",
		},
		"duplicate key": {
			Args:    []Value{Str("k"), Str("v1"), Str("k"), Str("v2")},
			WantErr: "duplicate key: 'k'",
		},
	} {
		t.Run(name, func(t *testing.T) {
			d := NewDirective(KindBlock)
			got := biData(d, tc.Args)

			if tc.WantErr != "" {
				assert.True(t, got.IsErr())
				assert.Equal(t, tc.WantErr, got.ErrMessage())
				return
			}

			assert.Equal(t, tc.Want, d.Data)
		})
	}
}

func TestSrcSettersMutuallyExclusive(t *testing.T) {
	d := NewDirective(KindImage)

	got := biAsset(d, []Value{Str("pic.png")})
	assert.False(t, got.IsErr())
	assert.Equal(t, SrcPageAsset, d.Src.Tag)
	assert.Equal(t, "pic.png", d.Src.Ref)

	got = biURL(d, []Value{Str("https://example.com/pic.png")})
	assert.True(t, got.IsErr())
	assert.Equal(t, errFieldAlreadySet, got.ErrMessage())
}

func TestBiURL(t *testing.T) {
	for name, tc := range map[string]struct {
		Arg     string
		WantErr bool
	}{
		"empty":        {Arg: "", WantErr: true},
		"no scheme":    {Arg: "foo", WantErr: true},
		"has scheme":   {Arg: "https://example.com", WantErr: false},
	} {
		t.Run(name, func(t *testing.T) {
			d := NewDirective(KindLink)
			got := biURL(d, []Value{Str(tc.Arg)})

			if tc.WantErr {
				assert.True(t, got.IsErr())
				return
			}
			assert.False(t, got.IsErr())
			assert.Equal(t, SrcURL, d.Src.Tag)
		})
	}
}

func TestBiPageStripsTrailingSlash(t *testing.T) {
	d := NewDirective(KindLink)
	got := biPage(d, []Value{Str("a/b/")})
	assert.False(t, got.IsErr())
	assert.Equal(t, "a/b", d.Src.Ref)
	assert.Equal(t, PageAbsolute, d.Src.PageKind)
}

func TestBiPagePathValidation(t *testing.T) {
	for name, tc := range map[string]struct {
		Ref     string
		WantErr string
	}{
		"absolute":  {Ref: "/abs", WantErr: "path must be relative"},
		"dot":       {Ref: "a/./b", WantErr: "'.' and '..' are not allowed in paths"},
		"empty mid": {Ref: "a//b", WantErr: "empty component in path"},
	} {
		t.Run(name, func(t *testing.T) {
			d := NewDirective(KindLink)
			got := biPage(d, []Value{Str(tc.Ref)})
			assert.True(t, got.IsErr())
			assert.Equal(t, tc.WantErr, got.ErrMessage())
		})
	}
}

func TestCallBuiltinFallsBackToCommon(t *testing.T) {
	d := NewDirective(KindKatex)
	got := d.CallBuiltin("id", []Value{Str("x")})
	assert.False(t, got.IsErr())
	assert.Equal(t, "x", *d.ID)
}

func TestCallBuiltinUnknown(t *testing.T) {
	d := NewDirective(KindKatex)
	got := d.CallBuiltin("nope", []Value{Str("x")})
	assert.True(t, got.IsErr())
	assert.Equal(t, "builtin not found in 'katex'", got.ErrMessage())
}

func TestMandatoryFieldsForImage(t *testing.T) {
	d := NewDirective(KindImage)
	field, unset := d.Mandatory()
	assert.True(t, unset)
	assert.Equal(t, "src", field)

	_ = biAsset(d, []Value{Str("pic.png")})
	_, unset = d.Mandatory()
	assert.False(t, unset)
}

func TestFieldAccessOnPrimitiveAndDirective(t *testing.T) {
	assert.Equal(t, errFieldAccessOnPrimitive, Str("x").Field("y").ErrMessage())

	d := NewDirective(KindBlock)
	assert.Equal(t, errFieldAccessOnDirective, DirectiveVal(d).Field("y").ErrMessage())
}

func TestContentFieldAccessByReference(t *testing.T) {
	c := NewContent()
	d := NewDirective(KindSection)
	c.Register("intro", d)

	v := ContentVal(c).Field("intro")
	got, ok := v.AsDirective()
	assert.True(t, ok)

	_ = biID(got, []Value{Str("intro-id")})
	assert.Equal(t, "intro-id", *d.ID)
}
