package text

import "regexp"

var markdownPatterns = []*regexp.Regexp{
	// # Heading
	regexp.MustCompile(`(?m)^#{1,6}\s+.+$`),

	// ``` or ~~~
	regexp.MustCompile("(?m)^(```|~~~)"),

	// - item, * item, + item, 1. item
	regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+.+$`),

	// [text](url), ![alt](url)
	regexp.MustCompile(`!?\[([^\]]+)\]\(([^)]+)\)`),

	// > quote
	regexp.MustCompile(`(?m)^>\s+.+$`),

	// ---, ***, ___
	regexp.MustCompile(`(?m)^\s*(-{3,}|\*{3,}|_{3,})\s*$`),

	// **bold**, __bold__, `code`
	regexp.MustCompile("(\\*\\*|__)[^*_\\n]+(\\*\\*|__)|`[^`\\n]+`"),
}

// IsMarkdown reports whether text shows at least two distinct markdown
// features. A single stray # or - does not count.
func IsMarkdown(text string) bool {
	if len(text) == 0 {
		return false
	}

	indicators := 0

	for _, p := range markdownPatterns {
		if p.MatchString(text) {
			indicators++
		}

		if indicators >= 2 {
			return true
		}
	}

	return false
}
