package domain

import "strings"

const (
	DefaultMaxTags      = 10
	DefaultMaxTagLength = 50
)

type TagStat struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
	Views int64  `json:"views"`
	Likes int64  `json:"likes"`
}

// TagLimits bounds normalized tag lists. MaxTags <= 0 keeps every tag.
type TagLimits struct {
	MaxTags   int
	MaxLength int
}

var DefaultTagLimits = TagLimits{
	MaxTags:   DefaultMaxTags,
	MaxLength: DefaultMaxTagLength,
}

// Normalize trims and lowercases every tag, drops blank and oversized ones,
// removes duplicates keeping the first occurrence and caps the result.
func (l TagLimits) Normalize(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, r := range raw {
		tag := strings.ToLower(strings.TrimSpace(r))
		if tag == "" || len([]rune(tag)) > l.MaxLength {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == l.MaxTags {
			break
		}
	}

	return tags
}

func NormalizeTags(raw []string) []string {
	return DefaultTagLimits.Normalize(raw)
}

// NormalizeFilterTags cleans tags used for matching. Unlike NormalizeTags it
// does not cap the count, so a filter never silently drops tags.
func NormalizeFilterTags(raw []string) []string {
	return TagLimits{MaxLength: DefaultMaxTagLength}.Normalize(raw)
}
