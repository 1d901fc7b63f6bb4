package mathtex

import (
	"fmt"

	"github.com/reconquest/karma-go"
)

// ArgumentError is returned when a call supplies neither or both of the
// `path` and `literal` arguments.
type ArgumentError struct {
	Function string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf(
		"`%s` requires either a `path` or a `literal` argument.",
		e.Function,
	)
}

// TypeError is returned when an argument has an unexpected type.
type TypeError struct {
	Function string
	Arg      string
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("`%s`: `%s` must be %s.", e.Function, e.Arg, e.Expected)
}

type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return karma.Describe("path", e.Path).Format(e.Err, "Failed to read file").Error()
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return karma.Format(e.Err, "Failed to convert LaTeX to MathTeX").Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
