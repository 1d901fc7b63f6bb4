package types

// Config is the site-wide configuration shared by every render of a pass.
// It is read-only once loaded.
type Config struct {
	Extra map[string]interface{} `toml:"extra" yaml:"extra"`
}

type RenderConfig struct {
	Markdown    bool
	CompileOnly bool
	BaseDir     string
}
