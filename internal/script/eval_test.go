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

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northwood-labs/supermd/internal/directive"
)

// <https://github.com/golang/go/wiki/TableDrivenTests>
func TestEvalChainedBuiltins(t *testing.T) {
	content := directive.NewContent()
	d := directive.NewDirective(directive.KindSection)
	content.Register("intro", d)

	got := Eval(`content.intro.id("intro").attrs("a", "b")`, content)

	assert.False(t, got.IsErr())
	assert.Equal(t, "intro", *d.ID)
	assert.Equal(t, []string{"a", "b"}, d.Attrs)
}

func TestEvalUnknownField(t *testing.T) {
	content := directive.NewContent()
	got := Eval(`content.nope.id("x")`, content)
	assert.True(t, got.IsErr())
	assert.Equal(t, "unknown field 'nope'", got.ErrMessage())
}

func TestEvalFieldAccessOnDirectiveIsErr(t *testing.T) {
	content := directive.NewContent()
	d := directive.NewDirective(directive.KindSection)
	content.Register("intro", d)

	got := Eval(`content.intro.id`, content)
	assert.True(t, got.IsErr())
	assert.Equal(t, "field access on directive", got.ErrMessage())
}

func TestEvalArityErrorPropagates(t *testing.T) {
	content := directive.NewContent()
	d := directive.NewDirective(directive.KindSection)
	content.Register("intro", d)

	got := Eval(`content.intro.id("a", "b")`, content)
	assert.True(t, got.IsErr())
	assert.Equal(t, "expected 1 string argument", got.ErrMessage())
}

func TestEvalParseError(t *testing.T) {
	content := directive.NewContent()
	got := Eval(`content.intro.id(`, content)
	assert.True(t, got.IsErr())
}
