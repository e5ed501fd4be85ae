package helper

import "strings"

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringPtr(s string) *string {
	return &s
}

// TrimmedPtr trims an optional input. A value that trims to empty stays a
// non-nil empty string so callers can tell "cleared" from "not sent".
func TrimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func BoolPtrValue(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
