package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	if utf8.RuneCountInString(text) <= maxWidth {
		return text, false
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	return string(runes[:maxWidth-ellipsisLen]) + cfg.Ellipsis, true
}

// TruncateKeepSuffix truncates text so that text+suffix fits maxWidth,
// shortening only the text. Used for labels like "Documentation (12)".
// Falls back to TruncateText on the combined string when even the suffix
// and ellipsis don't fit.
func TruncateKeepSuffix(text, suffix string, maxWidth int, cfg TextConfig) (string, bool) {
	combined := text + suffix
	if utf8.RuneCountInString(combined) <= maxWidth {
		return combined, false
	}

	available := maxWidth - utf8.RuneCountInString(suffix)
	if available <= utf8.RuneCountInString(cfg.Ellipsis) {
		return TruncateText(combined, maxWidth, cfg)
	}

	truncated, _ := TruncateText(text, available, cfg)
	return truncated + suffix, true
}
