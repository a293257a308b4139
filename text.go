package justext

import (
	"regexp"
	"strings"
	"unicode"
)

// whitespaceRun matches runs of Unicode white space: RE2's \s, vertical
// tab, NEL and the Zs/Zl/Zp separators.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)

// NormalizeWhitespace replaces every run of white space with a single
// space, or with a single line feed if the run contains '\r' or '\n'.
func NormalizeWhitespace(text string) string {
	return whitespaceRun.ReplaceAllStringFunc(text, func(run string) string {
		if strings.ContainsAny(run, "\r\n") {
			return "\n"
		}
		return " "
	})
}

// IsBlank reports whether text is empty or contains only white space.
func IsBlank(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
