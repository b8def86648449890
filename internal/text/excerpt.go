package text

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	imagePattern      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headerPattern     = regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]*`)
	blockquotePattern = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	emphasisPattern   = regexp.MustCompile(`(\*{1,3}|_{1,3}|~~)`)
	codePattern       = regexp.MustCompile("`+")
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// PlainText strips markdown markers and HTML tags and collapses whitespace.
func PlainText(content string) string {
	s := imagePattern.ReplaceAllString(content, "")
	s = linkPattern.ReplaceAllString(s, "$1")
	s = headerPattern.ReplaceAllString(s, "")
	s = blockquotePattern.ReplaceAllString(s, "")
	s = emphasisPattern.ReplaceAllString(s, "")
	s = codePattern.ReplaceAllString(s, "")
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Excerpt derives a plain-text summary of at most maxLength characters,
// ellipsis included. Truncation happens on a word boundary.
func Excerpt(content string, maxLength int) string {
	if maxLength <= len(Ellipsis) {
		maxLength = DefaultExcerptLength
	}

	plain := []rune(PlainText(content))
	if len(plain) <= maxLength {
		return string(plain)
	}

	cut := maxLength - len(Ellipsis)
	head := plain[:cut]

	if !unicode.IsSpace(plain[cut]) {
		if i := lastSpace(head); i > 0 {
			head = head[:i]
		}
	}

	trimmed := strings.TrimRightFunc(string(head), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	if trimmed == "" {
		trimmed = string(head)
	}

	return trimmed + Ellipsis
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
