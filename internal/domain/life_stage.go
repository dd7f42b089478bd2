package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LifeStagePlaceholder is displayed when a product carries no life-stage value.
const LifeStagePlaceholder = "-"

// LifeStageLabel maps a raw life-stage value to its display label. Recognized
// tokens map case-insensitively to fixed labels; any other non-empty value is
// shown with its first character uppercased.
func LifeStageLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return LifeStagePlaceholder
	}

	switch strings.ToLower(trimmed) {
	case "puppy-kitten":
		return "Puppy / Kitten"
	case "adult":
		return "Adult"
	case "senior":
		return "Senior"
	}

	return titleFirst(trimmed)
}

func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
