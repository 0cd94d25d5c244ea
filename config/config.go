// Package config reads runtime configuration from the environment
package config

import "os"

// GetEnv returns the value of an environment variable, or fallback when unset
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
