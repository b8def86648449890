package utils

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitTrim splits each value on sep, trims the parts and drops the empty ones.
// Repeated query parameters and comma separated lists end up in one slice.
func SplitTrim(values []string, sep string) []string {
	var parts []string
	for _, v := range values {
		for _, p := range strings.Split(v, sep) {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return RemoveEmptyStrings(parts)
}
