package mathtex

import (
	"github.com/kovetskiy/mathtex/vfs"
)

// Source is the LaTeX input of a single call: either a PathSource or a
// LiteralSource.
type Source interface {
	source()
}

type PathSource struct {
	Path string
}

type LiteralSource struct {
	Text string
}

func (PathSource) source()    {}
func (LiteralSource) source() {}

// ResolveSource picks the source from the optional `path` and `literal`
// arguments. Exactly one of them must be set; supplying both is rejected
// with the same error as supplying none.
func ResolveSource(path, literal *string) (Source, error) {
	switch {
	case path != nil && literal == nil:
		return PathSource{Path: *path}, nil
	case path == nil && literal != nil:
		return LiteralSource{Text: *literal}, nil
	default:
		return nil, &ArgumentError{Function: Name}
	}
}

// Materialize returns the LaTeX text of the source, reading the file for a
// PathSource.
func Materialize(source Source, reader vfs.Reader) (string, error) {
	switch source := source.(type) {
	case PathSource:
		text, err := reader.ReadFile(source.Path)
		if err != nil {
			return "", &FileReadError{Path: source.Path, Err: err}
		}

		return text, nil
	case LiteralSource:
		return source.Text, nil
	default:
		panic("unexpected mathtex source type")
	}
}
