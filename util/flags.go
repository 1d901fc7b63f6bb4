package util

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var filename string

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:      "files",
		Aliases:   []string{"f"},
		Value:     "",
		Usage:     "render specified markdown file(s). Supports file globbing patterns (needs to be quoted).",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("MATHTEX_FILES"), altsrctoml.TOML("files", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "continue-on-error",
		Value:   false,
		Usage:   "don't exit if an error occurs while processing a file, continue processing remaining files.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("MATHTEX_CONTINUE_ON_ERROR"), altsrctoml.TOML("continue-on-error", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "compile-only",
		Value:   false,
		Usage:   "print resulting HTML to stdout instead of writing .html files.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("MATHTEX_COMPILE_ONLY"), altsrctoml.TOML("compile-only", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "markdown",
		Value:   true,
		Usage:   "compile the rendered template as markdown. Disable to keep the template output as is.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("MATHTEX_MARKDOWN"), altsrctoml.TOML("markdown", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "style",
		Value:   "",
		Usage:   "default display style for mathtex calls without a style argument. Overrides extra.style of the config file. Possible values: inline, block.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("MATHTEX_STYLE"), altsrctoml.TOML("style", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:      "base-dir",
		Value:     "",
		Usage:     "resolve mathtex path arguments relative to this directory (default: directory of the processed file).",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("MATHTEX_BASE_DIR"), altsrctoml.TOML("base-dir", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:  "color",
		Value: "auto",
		Usage: "display logs in color. Possible values: auto, never.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("MATHTEX_COLOR"),
			altsrctoml.TOML("color", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("MATHTEX_LOG_LEVEL"), altsrctoml.TOML("log-level", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       ConfigFilePath(),
		Usage:       "use the specified configuration file. Its [extra] table is the site configuration.",
		TakesFile:   true,
		Sources:     cli.NewValueSourceChain(cli.EnvVar("MATHTEX_CONFIG")),
		Destination: &filename,
	},
}
