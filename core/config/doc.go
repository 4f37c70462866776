// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML configuration for the
//              fixedstr tools.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config loads TOML and YAML configuration.

Values are addressed with dot paths ("log.level"). When an environment prefix
is set, FIXEDSTR_LOG_LEVEL overrides log.level. Missing keys fall back to the
default passed to the getter.

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	level := cfg.GetString("log.level", "info")

	result := cfg.Validate(config.ValidationRules{
		"log.level":         {OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"defaults.capacity": {Type: "int", Min: config.IntPtr(1)},
	})
	if err := result.Err(); err != nil {
		return err
	}

Decode is exported for callers that unmarshal their own documents (scenario
files) with the same format detection.
*/
package config
