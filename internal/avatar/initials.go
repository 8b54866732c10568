package avatar

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is drawn when the source text is empty.
const Placeholder = "-"

// ExtractInitials returns the label drawn inside the avatar: the first n
// runes of s. n == FullText keeps s whole, as does an n longer than s.
func ExtractInitials(s string, n int) string {
	if s == "" {
		return Placeholder
	}
	if utf8.RuneCountInString(s) < n {
		return s
	}
	if n == FullText {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// displayText applies the caps transform after truncation, so the length
// limit counts source runes and not case-mapped ones.
func displayText(cfg Config) string {
	text := ExtractInitials(cfg.Text, cfg.InitialsLength)
	if cfg.AllCaps {
		text = cases.Upper(language.Und).String(text)
	}
	return text
}
