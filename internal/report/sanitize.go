package report

import (
	"strings"
	"unicode"
)

// unnamedClient replaces names that sanitize to nothing usable.
const unnamedClient = "unnamed"

// reservedChars are rejected in file names on at least one supported OS.
const reservedChars = `<>:"/\|?*`

// SanitizeName turns a client name into a single safe file-name component.
// Path separators, reserved characters and control characters become '_';
// surrounding spaces and dots are trimmed. An empty result, "." or ".."
// becomes "unnamed".
//
// Distinct names can map to the same component ("a/b" and "a:b"); the
// resulting reports overwrite each other just as duplicate names do.
func SanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(reservedChars, r) {
			return '_'
		}
		return r
	}, name)

	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return unnamedClient
	}
	return cleaned
}
