package markdown

import (
	"bytes"

	"github.com/kovetskiy/mathtex/mathtex"
	cparser "github.com/kovetskiy/mathtex/parser"
	crenderer "github.com/kovetskiy/mathtex/renderer"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// MathExtension renders $...$ and $$...$$ spans through a mathtex
// converter.
type MathExtension struct {
	Converter mathtex.Converter
}

func NewMathExtension(converter mathtex.Converter) *MathExtension {
	return &MathExtension{
		Converter: converter,
	}
}

func (e *MathExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(cparser.NewMathParser(), 150),
	))

	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(crenderer.NewMathRenderer(e.Converter), 100),
	))
}

func CompileMarkdown(markdown []byte, converter mathtex.Converter) (string, error) {
	log.Tracef(nil, "rendering markdown:\n%s", string(markdown))

	compiler := goldmark.New(
		goldmark.WithExtensions(
			extension.Footnote,
			extension.DefinitionList,
			NewMathExtension(converter),
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			html.WithXHTML(),
		))

	var buf bytes.Buffer
	err := compiler.Convert(markdown, &buf)
	if err != nil {
		return "", karma.Format(err, "unable to compile markdown")
	}

	html := buf.String()

	log.Tracef(nil, "rendered markdown to html:\n%s", html)

	return html, nil
}
