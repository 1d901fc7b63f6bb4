package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kovetskiy/mathtex/types"
	"github.com/reconquest/karma-go"
	"gopkg.in/yaml.v3"
)

// Load reads the site configuration. A missing file yields an empty
// configuration. Files ending with .yaml or .yml are decoded as YAML,
// everything else as TOML.
func Load(path string) (*types.Config, error) {
	config := &types.Config{}

	if path == "" {
		return config, nil
	}

	facts := karma.Describe("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, facts.Format(err, "unable to read config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		_, err = toml.Decode(string(data), config)
	}
	if err != nil {
		return nil, facts.Format(err, "unable to decode config")
	}

	return config, nil
}

// WithStyle returns a copy of config whose extra.style is set to style.
// The original configuration is left untouched.
func WithStyle(config *types.Config, style string) *types.Config {
	extra := map[string]interface{}{}
	if config != nil {
		for key, value := range config.Extra {
			extra[key] = value
		}
	}

	extra["style"] = style

	return &types.Config{Extra: extra}
}
