package mathtex

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/reconquest/regexputil-go"
	"github.com/wyatt915/treeblood"
)

var (
	ErrEmptyExpression = errors.New("empty LaTeX expression")
	ErrMathError       = errors.New("LaTeX expression rendered as <merror>")
)

var (
	reStartTag = regexp.MustCompile(
		`<(?P<name>[A-Za-z][\w:.-]*)(?P<attrs>(?:\s+[^\s=/>]+\s*=\s*(?:"[^"]*"|'[^']*'))*)\s*(?P<close>/?)>`,
	)

	reAttribute = regexp.MustCompile(
		`(?P<key>[^\s=/>]+)\s*=\s*(?P<value>"[^"]*"|'[^']*')`,
	)
)

// Converter turns LaTeX into markup.
type Converter interface {
	Convert(latex string, style DisplayStyle) (string, error)
}

// MathMLConverter converts LaTeX to MathML with treeblood.
type MathMLConverter struct {
	macros map[string]string
}

func NewConverter() *MathMLConverter {
	return &MathMLConverter{}
}

func (converter *MathMLConverter) Convert(
	latex string,
	style DisplayStyle,
) (string, error) {
	if strings.TrimSpace(latex) == "" {
		return "", ErrEmptyExpression
	}

	var (
		markup string
		err    error
	)

	if style == StyleBlock {
		markup, err = treeblood.DisplayStyle(latex, converter.macros)
	} else {
		markup, err = treeblood.InlineStyle(latex, converter.macros)
	}
	if err != nil {
		return "", err
	}

	if strings.Contains(markup, "<merror") {
		return "", ErrMathError
	}

	return canonicalize(markup), nil
}

// canonicalize rewrites every start tag with its attributes sorted by name.
// treeblood emits attributes in map iteration order.
func canonicalize(markup string) string {
	return reStartTag.ReplaceAllStringFunc(markup, func(tag string) string {
		groups := reStartTag.FindStringSubmatch(tag)

		var (
			name  = regexputil.Subexp(reStartTag, groups, "name")
			attrs = regexputil.Subexp(reStartTag, groups, "attrs")
			slash = regexputil.Subexp(reStartTag, groups, "close")
		)

		pairs := []string{}
		for _, match := range reAttribute.FindAllStringSubmatch(attrs, -1) {
			pairs = append(pairs,
				regexputil.Subexp(reAttribute, match, "key")+"="+
					regexputil.Subexp(reAttribute, match, "value"),
			)
		}

		sort.Strings(pairs)

		var builder strings.Builder
		builder.WriteString("<" + name)
		for _, pair := range pairs {
			builder.WriteString(" " + pair)
		}
		builder.WriteString(slash + ">")

		return builder.String()
	})
}
