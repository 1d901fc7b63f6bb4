package main

import (
	"context"
	"os"

	"github.com/kovetskiy/mathtex/util"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	version     = "1.0.0"
	usage       = "A tool for rendering LaTeX math in markdown pages to MathML."
	description = `mathtex renders markdown pages as templates. Pages call the mathtex function with either a path or a literal LaTeX expression, plus an optional style (inline or block):

  {{ mathtex "literal" "x^2" "style" "block" }}
  {{ mathtex "path" "equations/euler.tex" }}

Calls without a style argument use extra.style of the configuration file, or inline.`
)

func main() {
	cmd := &cli.Command{
		Name:                  "mathtex",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		Flags:                 util.Flags,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Action:                util.RunMathTeX,
	}

	if err := cmd.Run(context.TODO(), os.Args); err != nil {
		log.Fatal(err)
	}
}
