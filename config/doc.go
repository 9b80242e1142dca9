// Package config handles application configuration loading and validation.
//
// Configuration is optional: every value has a usable default and can be
// overridden by CLI flags. When a YAML file is present it is validated with
// struct tags before use.
package config
