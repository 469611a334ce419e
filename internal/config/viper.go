// Package config provides helpers for reading configuration from Viper and the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
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

// GetDuration reads a duration from Viper, returning fallback when unset or invalid.
func GetDuration(key string, fallback time.Duration) time.Duration {
	if !viper.IsSet(key) {
		return fallback
	}
	d := viper.GetDuration(key)
	if d <= 0 {
		return fallback
	}
	return d
}

// GetAPIKey returns the API key stored under key. When required is true a
// missing key is an error.
func GetAPIKey(key string, required bool) (string, error) {
	apiKey := GetString(key)
	if apiKey == "" && required {
		return "", fmt.Errorf("environment variable %s not set", key)
	}
	return apiKey, nil
}
