// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for a configuration file when
//              none is given explicitly.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	// Required makes a missing file an error instead of an empty config
	Required bool
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for fixedstr.{toml,yaml,yml}.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "fixedstr"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"fixedstr", ".fixedstr"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "FIXEDSTR",
	}
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, fsserror.Wrap(err, "found config file "+path+" but failed to load").
			WithDetail("config_path", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fsserrors.NotFound(fsserrors.ModuleConfig, "discover", "configuration file").
		WithDetail("search_paths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
