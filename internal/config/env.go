// Package config provides shared configuration utilities.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is unset or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	return parseEnv(key, fallback, strconv.Atoi)
}

// GetEnvUint64 is like GetEnvInt for unsigned 64-bit values (seeds).
func GetEnvUint64(key string, fallback uint64) uint64 {
	return parseEnv(key, fallback, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := parse(value)
	if err != nil {
		return fallback
	}
	return v
}
