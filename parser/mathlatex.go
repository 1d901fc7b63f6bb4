package parser

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MathInline is a $...$ span.
type MathInline struct {
	ast.BaseInline

	Equation []byte
}

func (n *MathInline) Inline() {}

func (n *MathInline) IsBlank(source []byte) bool {
	return util.IsBlank(n.Equation)
}

func (n *MathInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Equation": string(n.Equation),
	}, nil)
}

var KindMathInline = ast.NewNodeKind("MathInline")

func (n *MathInline) Kind() ast.NodeKind {
	return KindMathInline
}

// MathDisplay is a $$...$$ span, rendered in block style.
type MathDisplay struct {
	ast.BaseInline

	Equation []byte
}

func (n *MathDisplay) Inline() {}

func (n *MathDisplay) IsBlank(source []byte) bool {
	return util.IsBlank(n.Equation)
}

func (n *MathDisplay) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Equation": string(n.Equation),
	}, nil)
}

var KindMathDisplay = ast.NewNodeKind("MathDisplay")

func (n *MathDisplay) Kind() ast.NodeKind {
	return KindMathDisplay
}

type MathParser struct {
}

func NewMathParser() parser.InlineParser {
	return &MathParser{}
}

func (s *MathParser) Trigger() []byte {
	return []byte{'$'}
}

// Parse recognizes math spans that open and close on the same line.
// An inline span must not start or end with a space and its closing dollar
// must not be followed by a digit, so that "$5 and $10" stays text.
func (s *MathParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()

	display := len(line) > 1 && line[1] == '$'

	var start, end int

	if display {
		start = 2
		end = findDisplayEnd(line, start)
	} else {
		start = 1
		end = findInlineEnd(line, start)
	}

	if end < 0 || util.IsBlank(line[start:end]) {
		return nil
	}

	equation := line[start:end]

	block.Advance(end + start)

	if display {
		return &MathDisplay{Equation: equation}
	}

	return &MathInline{Equation: equation}
}

func findDisplayEnd(line []byte, start int) int {
	for i := start; i+1 < len(line); i++ {
		if line[i] == '\\' {
			i++
			continue
		}

		if line[i] == '$' && line[i+1] == '$' {
			return i
		}
	}

	return -1
}

func findInlineEnd(line []byte, start int) int {
	if start >= len(line) || util.IsSpace(line[start]) {
		return -1
	}

	for i := start; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '$':
			if util.IsSpace(line[i-1]) {
				return -1
			}

			if i+1 < len(line) && line[i+1] >= '0' && line[i+1] <= '9' {
				return -1
			}

			return i
		}
	}

	return -1
}
