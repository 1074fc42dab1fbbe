package makefile

import (
	"path"
	"strings"
	"unicode/utf16"
)

// SanitizeBasename returns the last element of p with every character
// outside [a-z0-9_.-] replaced by '_'. Uppercase letters are replaced too.
// Characters outside the Basic Multilingual Plane take two UTF-16 code units
// and become two underscores.
func SanitizeBasename(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}

	base := path.Base(p)
	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		if safeRune(r) {
			b.WriteRune(r)
			continue
		}
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		b.WriteString(strings.Repeat("_", n))
	}
	return b.String()
}

func safeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	}
	return false
}
