package renderer

import (
	"github.com/kovetskiy/mathtex/mathtex"
	"github.com/reconquest/pkg/log"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	cparser "github.com/kovetskiy/mathtex/parser"
)

type MathRenderer struct {
	html.Config
	Converter mathtex.Converter
}

// NewMathRenderer creates a renderer that turns math spans into MathML.
func NewMathRenderer(converter mathtex.Converter, opts ...html.Option) renderer.NodeRenderer {
	r := &MathRenderer{
		Config:    html.NewConfig(),
		Converter: converter,
	}

	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}

	return r
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *MathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(cparser.KindMathInline, r.renderInline)
	reg.Register(cparser.KindMathDisplay, r.renderDisplay)
}

func (r *MathRenderer) renderInline(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.render(w, n.(*cparser.MathInline).Equation, mathtex.StyleInline)
	}

	return ast.WalkContinue, nil
}

func (r *MathRenderer) renderDisplay(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.render(w, n.(*cparser.MathDisplay).Equation, mathtex.StyleBlock)
	}

	return ast.WalkContinue, nil
}

// render falls back to the escaped source when the equation can't be
// converted, so one bad span doesn't fail the whole page.
func (r *MathRenderer) render(w util.BufWriter, equation []byte, style mathtex.DisplayStyle) {
	markup, err := r.Converter.Convert(string(equation), style)
	if err != nil {
		log.Warningf(err, "unable to render %s math %q", style, equation)

		_, _ = w.WriteString(`<code class="math">`)
		_, _ = w.Write(util.EscapeHTML(equation))
		_, _ = w.WriteString(`</code>`)

		return
	}

	_, _ = w.WriteString(markup)
}
