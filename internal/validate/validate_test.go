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

package validate

import (
	"testing"

	gast "github.com/yuin/goldmark/ast"
	"github.com/stretchr/testify/assert"

	"github.com/northwood-labs/supermd/internal/directive"
	"github.com/northwood-labs/supermd/internal/mdast"
)

func wrapDoc(children ...gast.Node) *gast.Document {
	doc := gast.NewDocument()
	for _, c := range children {
		doc.AppendChild(doc, c)
	}
	return doc
}

// <https://github.com/golang/go/wiki/TableDrivenTests>
func TestValidateLink(t *testing.T) {
	ref := "sec-a"

	for name, tc := range map[string]struct {
		Build   func() *directive.Directive
		WantErr string
		WantTag directive.SrcTag
	}{
		"ref without src synthesizes self_page": {
			Build: func() *directive.Directive {
				d := directive.NewDirective(directive.KindLink)
				d.Ref = &ref
				return d
			},
			WantTag: directive.SrcSelfPage,
		},
		"ref with incompatible src": {
			Build: func() *directive.Directive {
				d := directive.NewDirective(directive.KindLink)
				d.Ref = &ref
				d.Src = &directive.Src{Tag: directive.SrcURL, URL: "https://example.com"}
				return d
			},
			WantErr: "'ref' and 'alternative' can only be specified when linking to a content page",
		},
		"no src at all": {
			Build: func() *directive.Directive {
				return directive.NewDirective(directive.KindLink)
			},
			WantErr: "missing call to 'url', 'asset', …",
		},
		"plain url is fine": {
			Build: func() *directive.Directive {
				d := directive.NewDirective(directive.KindLink)
				d.Src = &directive.Src{Tag: directive.SrcURL, URL: "https://example.com"}
				return d
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			d := tc.Build()
			got := validateLink(d)

			if tc.WantErr != "" {
				assert.Equal(t, tc.WantErr, got)
				return
			}
			assert.Empty(t, got)
			if tc.WantTag != 0 || d.Src.Tag == directive.SrcSelfPage {
				assert.Equal(t, tc.WantTag, d.Src.Tag)
			}
		})
	}
}

func TestValidateBlockPlaceholderMustBeFirstChild(t *testing.T) {
	bodyPara := gast.NewParagraph()
	placeholderPara := gast.NewParagraph()
	link := gast.NewLink()
	placeholderPara.AppendChild(placeholderPara, link)

	quote := gast.NewBlockquote()
	quote.AppendChild(quote, bodyPara)
	quote.AppendChild(quote, placeholderPara)
	wrapDoc(quote)

	n := mdast.Wrap(link, nil)
	got := validateBlock(n)

	assert.Equal(t, "block definitions directly under a quote block cannot embed any text", got)
}

func TestValidateBlockFirstChildOK(t *testing.T) {
	placeholderPara := gast.NewParagraph()
	link := gast.NewLink()
	placeholderPara.AppendChild(placeholderPara, link)

	quote := gast.NewBlockquote()
	quote.AppendChild(quote, placeholderPara)
	wrapDoc(quote)

	n := mdast.Wrap(link, nil)
	got := validateBlock(n)

	assert.Empty(t, got)
}

func TestValidateSectionTopLevelParagraph(t *testing.T) {
	para := gast.NewParagraph()
	link := gast.NewLink()
	para.AppendChild(para, link)
	wrapDoc(para)

	n := mdast.Wrap(link, nil)
	d := directive.NewDirective(directive.KindSection)
	got := validateSection(n, d)

	assert.Empty(t, got)
}

func TestValidateSectionParagraphWithText(t *testing.T) {
	para := gast.NewParagraph()
	link := gast.NewLink()
	para.AppendChild(para, gast.NewText())
	para.AppendChild(para, link)
	wrapDoc(para)

	n := mdast.Wrap(link, nil)
	d := directive.NewDirective(directive.KindSection)
	got := validateSection(n, d)

	assert.Equal(t, "sections must be top level elements or be embedded in headings", got)
}

func TestValidateTextRequiresWrappedText(t *testing.T) {
	link := gast.NewLink()
	para := gast.NewParagraph()
	para.AppendChild(para, link)
	wrapDoc(para)

	n := mdast.Wrap(link, []byte(""))
	got := validateText(n)

	assert.Equal(t, "text directive must contain some text between square brackets", got)
}
