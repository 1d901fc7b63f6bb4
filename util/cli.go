package util

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovetskiy/lorg"
	"github.com/kovetskiy/mathtex/config"
	"github.com/kovetskiy/mathtex/markdown"
	"github.com/kovetskiy/mathtex/mathtex"
	"github.com/kovetskiy/mathtex/stdlib"
	"github.com/kovetskiy/mathtex/types"
	"github.com/kovetskiy/mathtex/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

func RunMathTeX(ctx context.Context, cmd *cli.Command) error {
	if err := SetLogLevel(cmd); err != nil {
		return err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.String("style") != "" {
		cfg = config.WithStyle(cfg, cmd.String("style"))
	}

	log.Debugf(nil, "default math style: %s", mathtex.DefaultStyle(cfg))

	files, err := doublestar.FilepathGlob(cmd.String("files"))
	if err != nil {
		return karma.Describe("pattern", cmd.String("files")).
			Format(err, "unable to match files")
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched: %q", cmd.String("files"))
	}

	renderConfig := types.RenderConfig{
		Markdown:    cmd.Bool("markdown"),
		CompileOnly: cmd.Bool("compile-only"),
		BaseDir:     cmd.String("base-dir"),
	}

	converter := mathtex.NewConverter()
	fatalErrorHandler := NewErrorHandler(cmd.Bool("continue-on-error"))

	for _, file := range files {
		log.Infof(
			nil,
			"processing %s",
			file,
		)

		html, err := RenderFile(file, cfg, converter, renderConfig)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to render file %q", file)
			continue
		}

		if renderConfig.CompileOnly {
			fmt.Println(html)
			continue
		}

		target := strings.TrimSuffix(file, filepath.Ext(file)) + ".html"

		err = os.WriteFile(target, []byte(html), 0o644)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to write file %q", target)
			continue
		}

		log.Infof(nil, "rendered %s", target)
	}

	if fatalErrorHandler.Failures > 0 {
		return fmt.Errorf(
			"%d of %d files failed to render",
			fatalErrorHandler.Failures,
			len(files),
		)
	}

	return nil
}

// RenderFile executes file as a template with the mathtex library and
// optionally compiles the result as markdown. All files of a run share cfg.
func RenderFile(
	file string,
	cfg *types.Config,
	converter mathtex.Converter,
	renderConfig types.RenderConfig,
) (string, error) {
	body, err := os.ReadFile(file)
	if err != nil {
		return "", karma.Format(err, "unable to read file %q", file)
	}

	body = bytes.ReplaceAll(body, []byte("\r\n"), []byte("\n"))

	baseDir := renderConfig.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(file)
	}

	lib, err := stdlib.New(cfg, vfs.NewDisk(baseDir), converter)
	if err != nil {
		return "", err
	}

	if renderConfig.Markdown {
		lib.Stash = stdlib.NewStash()
	}

	page, err := lib.Execute(file, body, map[string]interface{}{
		"Extra": cfg.Extra,
		"File":  file,
	})
	if err != nil {
		return "", err
	}

	if !renderConfig.Markdown {
		return string(page), nil
	}

	html, err := markdown.CompileMarkdown(page, converter)
	if err != nil {
		return "", err
	}

	return lib.Stash.Restore(html), nil
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(fp, "mathtex.toml")
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")

	for _, level := range []lorg.Level{
		lorg.LevelTrace,
		lorg.LevelDebug,
		lorg.LevelInfo,
		lorg.LevelWarning,
		lorg.LevelError,
		lorg.LevelFatal,
	} {
		if strings.ToUpper(logLevel) == level.String() {
			log.SetLevel(level)
			return nil
		}
	}

	return fmt.Errorf("unknown log level: %s", logLevel)
}
