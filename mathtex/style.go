package mathtex

import (
	"github.com/kovetskiy/mathtex/types"
)

type DisplayStyle int

const (
	StyleInline DisplayStyle = iota
	StyleBlock
)

func (style DisplayStyle) String() string {
	if style == StyleBlock {
		return "block"
	}

	return "inline"
}

// ResolveStyle returns the display style of a call. An explicit argument
// always wins, even when it is not recognized; extra.style of the site
// configuration is consulted only when the argument is absent.
func ResolveStyle(arg *string, config *types.Config) DisplayStyle {
	if arg != nil {
		return parseStyle(*arg)
	}

	return DefaultStyle(config)
}

// DefaultStyle returns the style configured as extra.style, or StyleInline.
func DefaultStyle(config *types.Config) DisplayStyle {
	if config == nil {
		return StyleInline
	}

	value, ok := config.Extra["style"].(string)
	if !ok {
		return StyleInline
	}

	return parseStyle(value)
}

func parseStyle(value string) DisplayStyle {
	switch value {
	case "block", "Block":
		return StyleBlock
	default:
		return StyleInline
	}
}
