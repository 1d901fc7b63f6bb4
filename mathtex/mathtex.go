package mathtex

import (
	"fmt"

	"github.com/kovetskiy/mathtex/types"
	"github.com/kovetskiy/mathtex/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

// Name is the name the renderer is registered under in templates.
const Name = "mathtex"

// Args is the argument map of a single call. Recognized keys are `path`,
// `literal` and `style`.
type Args map[string]interface{}

// MathTeX renders LaTeX math expressions into MathML. It keeps only
// read-only references and is safe for concurrent use.
type MathTeX struct {
	config    *types.Config
	reader    vfs.Reader
	converter Converter
}

func New(config *types.Config, reader vfs.Reader, converter Converter) *MathTeX {
	return &MathTeX{
		config:    config,
		reader:    reader,
		converter: converter,
	}
}

func (mathtex *MathTeX) Call(args Args) (string, error) {
	path, err := optionalString(args, "path")
	if err != nil {
		return "", err
	}

	literal, err := optionalString(args, "literal")
	if err != nil {
		return "", err
	}

	style, err := optionalString(args, "style")
	if err != nil {
		return "", err
	}

	source, err := ResolveSource(path, literal)
	if err != nil {
		return "", err
	}

	latex, err := Materialize(source, mathtex.reader)
	if err != nil {
		return "", err
	}

	display := ResolveStyle(style, mathtex.config)

	log.Tracef(
		karma.Describe("source", describe(source)).Describe("style", display),
		"rendering math:\n%s",
		latex,
	)

	markup, err := mathtex.converter.Convert(latex, display)
	if err != nil {
		return "", &ConversionError{Err: err}
	}

	return markup, nil
}

// Func returns the template function. It accepts either a single argument
// map or alternating key/value pairs:
//
//	{{ mathtex "literal" "x^2" "style" "block" }}
func (mathtex *MathTeX) Func() func(...interface{}) (string, error) {
	return func(values ...interface{}) (string, error) {
		args, err := ParseArgs(values...)
		if err != nil {
			return "", err
		}

		return mathtex.Call(args)
	}
}

// ParseArgs builds the argument map of a template call. Keys whose value is
// nil are dropped, since templates yield nil for missing map entries.
func ParseArgs(values ...interface{}) (Args, error) {
	args := Args{}

	if len(values) == 1 {
		var given map[string]interface{}

		switch values := values[0].(type) {
		case Args:
			given = values
		case map[string]interface{}:
			given = values
		}

		if given != nil {
			for key, value := range given {
				if value != nil {
					args[key] = value
				}
			}

			return args, nil
		}
	}

	if len(values)%2 != 0 {
		return nil, &TypeError{
			Function: Name,
			Arg:      "arguments",
			Expected: "key/value pairs",
		}
	}

	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, &TypeError{
				Function: Name,
				Arg:      fmt.Sprint(values[i]),
				Expected: "a string key",
			}
		}

		if values[i+1] != nil {
			args[key] = values[i+1]
		}
	}

	return args, nil
}

func optionalString(args Args, name string) (*string, error) {
	value, ok := args[name]
	if !ok {
		return nil, nil
	}

	text, ok := value.(string)
	if !ok {
		return nil, &TypeError{
			Function: Name,
			Arg:      name,
			Expected: "a string",
		}
	}

	return &text, nil
}

func describe(source Source) string {
	switch source := source.(type) {
	case PathSource:
		return "path " + source.Path
	case LiteralSource:
		return "literal"
	default:
		return "unknown"
	}
}
