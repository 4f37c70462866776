// File: validation.go
// Title: Configuration Validation
// Description: Rule-based validation of configuration values: required keys,
//              value types, integer bounds and enumerations.
// Author: abeimler
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Environment overrides are type checked as well

package config

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int", "bool"
	Type string
	Min  *int
	Max  *int
	// OneOf restricts string values, compared case-insensitively
	OneOf []string
}

// ValidationRules maps configuration keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []*fsserror.Error
}

// Err returns the first validation error wrapped as INVALID_CONFIG, or nil
func (r *ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message()
	}
	return fsserror.Wrap(r.Errors[0], "invalid configuration: "+strings.Join(msgs, "; ")).
		WithCode(fsserror.CodeInvalidConfig).
		WithSeverity(fsserror.SeverityHigh)
}

// IntPtr is a helper for ValidationRule bounds
func IntPtr(n int) *int { return &n }

// Validate checks every rule; keys are visited in sorted order
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) *fsserror.Error {
	if !c.Has(key) {
		if rule.Required {
			return fsserrors.NewErrorBuilder(fsserrors.ModuleConfig).
				Operation("validate_"+key).
				Messagef("required field %s is missing", key).
				Code(fsserror.CodeRequiredField).
				Detail("field", key).
				Build()
		}
		return nil
	}

	c.mu.RLock()
	raw := c.getValue(key)
	envValue, envSet := c.getEnvValue(key)
	c.mu.RUnlock()

	switch rule.Type {
	case "int":
		if envSet {
			if _, err := strconv.Atoi(envValue); err != nil {
				return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, envValue,
					"environment variable "+c.EnvKey(key)+" must be an integer")
			}
		} else if _, ok := toInt(raw); !ok {
			return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, raw, "must be an integer")
		}
		n := c.GetInt(key)
		if rule.Min != nil && n < *rule.Min {
			return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, n, fmt.Sprintf("must be >= %d", *rule.Min))
		}
		if rule.Max != nil && n > *rule.Max {
			return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, n, fmt.Sprintf("must be <= %d", *rule.Max))
		}
	case "bool":
		if envSet {
			if _, err := strconv.ParseBool(envValue); err != nil {
				return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, envValue,
					"environment variable "+c.EnvKey(key)+" must be a boolean")
			}
		} else if _, ok := raw.(bool); !ok && raw != nil {
			return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, raw, "must be a boolean")
		}
	case "string", "":
		s := c.GetString(key)
		if len(rule.OneOf) > 0 && !slices.ContainsFunc(rule.OneOf, func(o string) bool {
			return strings.EqualFold(o, s)
		}) {
			return fsserrors.ValidationFailed(fsserrors.ModuleConfig, key, s,
				"must be one of "+strings.Join(rule.OneOf, ", "))
		}
	}
	return nil
}
