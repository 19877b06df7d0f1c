// Package config handles loading and validating the telegraph configuration.
package config
