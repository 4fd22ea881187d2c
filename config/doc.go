// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Feed-group endpoint URLs, static table paths and store credentials can all
// be overridden through environment variables.
package config
