package stdlib

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/kovetskiy/mathtex/mathtex"
	"github.com/kovetskiy/mathtex/types"
	"github.com/kovetskiy/mathtex/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

type Lib struct {
	MathTeX   *mathtex.MathTeX
	Templates *template.Template

	// Stash, when set, receives mathtex output during Execute and the page
	// gets placeholders instead. Restore puts the markup back.
	Stash *Stash
}

func New(
	config *types.Config,
	reader vfs.Reader,
	converter mathtex.Converter,
) (*Lib, error) {
	var (
		lib Lib
		err error
	)

	lib.MathTeX = mathtex.New(config, reader, converter)

	lib.Templates, err = templates(lib.render)
	if err != nil {
		return nil, err
	}

	return &lib, nil
}

// Execute parses body as a template named name on top of the library
// templates and executes it with data.
func (lib *Lib) Execute(name string, body []byte, data interface{}) ([]byte, error) {
	facts := karma.Describe("name", name)

	templates, err := lib.Templates.Clone()
	if err != nil {
		return nil, facts.Format(err, "unable to clone templates")
	}

	page, err := templates.New(name).Parse(string(body))
	if err != nil {
		return nil, facts.Format(err, "unable to parse template")
	}

	var buffer bytes.Buffer

	err = page.Execute(&buffer, data)
	if err != nil {
		return nil, facts.Format(err, "unable to execute template")
	}

	log.Tracef(facts, "executed template:\n%s", buffer.String())

	return buffer.Bytes(), nil
}

func (lib *Lib) render(values ...interface{}) (string, error) {
	markup, err := lib.MathTeX.Func()(values...)
	if err != nil {
		return "", err
	}

	if lib.Stash != nil {
		return lib.Stash.Put(markup), nil
	}

	return markup, nil
}

func templates(
	render func(...interface{}) (string, error),
) (*template.Template, error) {
	text := func(line ...string) string {
		return strings.Join(line, ``)
	}

	templates := template.New(`stdlib`).Funcs(
		template.FuncMap{
			mathtex.Name: render,

			// The only way to escape CDATA end marker ']]>' is to split it
			// into two CDATA sections.
			"cdata": func(data string) string {
				return strings.ReplaceAll(
					data,
					"]]>",
					"]]><![CDATA[]]]]><![CDATA[>",
				)
			},
		},
	)

	var err error

	for name, body := range map[string]string{
		// {{ template "math:inline" "x^2" }}
		`math:inline`: text(
			`{{ mathtex "literal" . "style" "inline" }}`,
		),

		`math:block`: text(
			`<div class="math">`,
			/**/ `{{ mathtex "literal" . "style" "block" }}`,
			`</div>`,
		),

		// {{ template "math:file" "equations/euler.tex" }}
		`math:file`: text(
			`{{ mathtex "path" . }}`,
		),
	} {
		templates, err = templates.New(name).Parse(body)
		if err != nil {
			return nil, karma.
				Describe("template", body).
				Format(
					err,
					"unable to parse template",
				)
		}
	}

	return templates, nil
}
