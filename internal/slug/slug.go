// Package slug derives unique, URL-safe identifiers from article titles.
package slug

import (
	"strconv"
	"strings"

	gslug "github.com/gosimple/slug"
)

const (
	// MaxBaseLength bounds the base slug before any numeric suffix is added.
	MaxBaseLength = 80
	fallback      = "article"
)

// Base lowercases and transliterates the title into hyphen-separated URL-safe tokens.
func Base(title string) string {
	s := gslug.Make(title)
	if len(s) > MaxBaseLength {
		s = s[:MaxBaseLength]
		if i := strings.LastIndexByte(s, '-'); i > 0 {
			s = s[:i]
		}
	}
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}
	return s
}

// Allocate returns the base slug for title, suffixed with -1, -2, ... until it
// is absent from existing. The result depends only on title and the set.
func Allocate(title string, existing []string) string {
	base := Base(title)
	if len(existing) == 0 {
		return base
	}

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}
	for n := 1; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
