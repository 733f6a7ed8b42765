package markup

import "strings"

// MarkdownV1Specials are the characters Telegram's legacy Markdown mode
// treats as formatting directives inside message text.
const MarkdownV1Specials = "[]_*"

// Escape backslash-prefixes every occurrence of the runes in chars, so
// provider-supplied text cannot be misread as markup by the renderer.
// The escape set is a parameter so the dialect can change without touching
// call sites.
func Escape(s, chars string) string {
	if s == "" || chars == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
