package helpers

import "strings"

// NullableString returns nil for blank input so optional text columns are stored as NULL.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
