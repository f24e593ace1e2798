package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// NormalizeSeatNumber trims and uppercases a seat number string
func NormalizeSeatNumber(seat string) string {
	return strings.ToUpper(strings.TrimSpace(seat))
}
