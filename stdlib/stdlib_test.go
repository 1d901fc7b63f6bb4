package stdlib

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kovetskiy/mathtex/mathtex"
	"github.com/kovetskiy/mathtex/types"
	"github.com/kovetskiy/mathtex/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConverter struct{}

func (stubConverter) Convert(latex string, style mathtex.DisplayStyle) (string, error) {
	return fmt.Sprintf("[%s:%s]", style, latex), nil
}

func newTestLib(t *testing.T, extra map[string]interface{}) (*Lib, string) {
	t.Helper()

	dir := t.TempDir()

	lib, err := New(&types.Config{Extra: extra}, vfs.NewDisk(dir), stubConverter{})
	require.NoError(t, err)

	return lib, dir
}

func TestExecute(t *testing.T) {
	lib, dir := newTestLib(t, map[string]interface{}{"style": "block"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "euler.tex"), []byte(`e^{i\pi}`), 0o644))

	tests := map[string]struct {
		body string
		want string
	}{
		"pairs":          {body: `a {{ mathtex "literal" "x^2" "style" "inline" }} b`, want: `a [inline:x^2] b`},
		"config default": {body: `{{ mathtex "literal" "x" }}`, want: `[block:x]`},
		"dict from data": {body: `{{ mathtex .Math }}`, want: `[inline:y]`},
		"path":           {body: `{{ mathtex "path" "euler.tex" }}`, want: `[block:e^{i\pi}]`},
		"inline template": {
			body: `{{ template "math:inline" "z" }}`,
			want: `[inline:z]`,
		},
		"block template": {
			body: `{{ template "math:block" "z" }}`,
			want: `<div class="math">[block:z]</div>`,
		},
		"file template": {
			body: `{{ template "math:file" "euler.tex" }}`,
			want: `[block:e^{i\pi}]`,
		},
		"cdata": {body: `{{ cdata "a]]>b" }}`, want: `a]]><![CDATA[]]]]><![CDATA[>b`},
	}

	data := map[string]interface{}{
		"Math": map[string]interface{}{"literal": "y", "style": "inline"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := lib.Execute(name, []byte(tt.body), data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(actual))
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	lib, _ := newTestLib(t, nil)

	_, err := lib.Execute("empty", []byte(`{{ mathtex }}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to execute template")
	assert.Contains(t, err.Error(), "`mathtex` requires either a `path` or a `literal` argument.")

	_, err = lib.Execute("missing", []byte(`{{ mathtex "path" "missing.tex" }}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read file")

	_, err = lib.Execute("broken", []byte(`{{ mathtex `), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse template")
}

func TestExecute_DoesNotLeakPages(t *testing.T) {
	lib, _ := newTestLib(t, nil)

	_, err := lib.Execute("page", []byte(`{{ mathtex "literal" "a" }}`), nil)
	require.NoError(t, err)

	assert.Nil(t, lib.Templates.Lookup("page"))
}
