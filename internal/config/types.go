// Package config loads formview settings from defaults, a YAML file, the
// environment and command-line flags.
package config

// Defaults.
const (
	DefaultForm         = "./Form.xml"
	DefaultLogLevel     = "info"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "1C 8.3 Managed Form"
	DefaultWindowScale  = 1.0
	DefaultWindowBorder = 8

	// EnvPrefix prefixes every environment variable; "__" separates
	// nesting levels, e.g. FORMVIEW_WINDOW__WIDTH.
	EnvPrefix = "FORMVIEW_"
)

// ConfigFileNames are looked up in the working directory when no config
// file is given explicitly.
var ConfigFileNames = []string{"formview.yaml", "formview.yml"}

// Config is the full set of settings.
type Config struct {
	Form     string       `koanf:"form"`
	LogLevel string       `koanf:"log_level"`
	Watch    bool         `koanf:"watch"`
	Window   WindowConfig `koanf:"window"`
	Term     TermConfig   `koanf:"term"`
}

// WindowConfig describes the raylib window.
type WindowConfig struct {
	Width     int     `koanf:"width"`
	Height    int     `koanf:"height"`
	Title     string  `koanf:"title"`
	Resizable bool    `koanf:"resizable"`
	Scale     float64 `koanf:"scale"`
	Border    int     `koanf:"border"`
}

// TermConfig controls the terminal renderer.
type TermConfig struct {
	// Width caps output width; 0 leaves it unbounded.
	Width int `koanf:"width"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"form":             DefaultForm,
		"log_level":        DefaultLogLevel,
		"watch":            false,
		"window.width":     DefaultWindowWidth,
		"window.height":    DefaultWindowHeight,
		"window.title":     DefaultWindowTitle,
		"window.resizable": true,
		"window.scale":     DefaultWindowScale,
		"window.border":    DefaultWindowBorder,
		"term.width":       0,
	}
}
