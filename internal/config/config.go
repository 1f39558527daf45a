// Package config provides Viper-backed configuration helpers for the CLI.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDataset  = "dataset"
	KeyOutput   = "output"
	KeyLogLevel = "log_level"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// DatasetPath returns the configured dataset file path, checking the
// GAMEDEX_DATASET environment variable when no flag or config entry is set.
func DatasetPath() string {
	if path := viper.GetString(KeyDataset); path != "" {
		return path
	}
	return os.Getenv("GAMEDEX_DATASET")
}

// OutputFormat returns the configured output format, defaulting to empty
// (auto-detection by the output package).
func OutputFormat() string {
	return GetString(KeyOutput)
}
