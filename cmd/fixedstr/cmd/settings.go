package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/abeimler/fixed-size-string/core/config"
	"github.com/abeimler/fixed-size-string/internal/scenario"
)

const envPrefix = "FIXEDSTR"

// Configuration keys
const (
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
	keyDefaultUnit     = "defaults.unit"
	keyDefaultCapacity = "defaults.capacity"
	keyRenderColor     = "render.color"
)

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "info",
			"format": "console",
		},
		"defaults": map[string]interface{}{
			"unit":     scenario.UnitNarrow,
			"capacity": 16,
		},
	}
}

func rules() config.ValidationRules {
	return config.ValidationRules{
		keyLogLevel:        {OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		keyLogFormat:       {OneOf: []string{"console", "text", "json", "logfmt"}},
		keyDefaultUnit:     {OneOf: scenario.Default().Units()},
		keyDefaultCapacity: {Type: "int", Min: config.IntPtr(1)},
		keyRenderColor:     {Type: "bool"},
	}
}

// loadConfig loads path, or discovers a config file when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  defaults(),
		})
	}
	opts := config.DefaultDiscoveryOptions()
	opts.EnvPrefix = envPrefix
	opts.Defaults = defaults()
	return config.Discover(opts)
}

// colorEnabled follows render.color if set, otherwise NO_COLOR and whether
// out is a terminal
func colorEnabled(cfg *config.Config, out io.Writer) bool {
	if cfg.Has(keyRenderColor) {
		return cfg.GetBool(keyRenderColor)
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
