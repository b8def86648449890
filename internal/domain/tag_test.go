package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "dedupes case-insensitively and drops blank and oversized",
			raw:  []string{"A", "a", " b ", "", strings.Repeat("c", 51)},
			want: []string{"a", "b"},
		},
		{
			name: "keeps a tag of exactly max length",
			raw:  []string{strings.Repeat("d", 50)},
			want: []string{strings.Repeat("d", 50)},
		},
		{
			name: "nil input",
			raw:  nil,
			want: []string{},
		},
		{
			name: "whitespace only",
			raw:  []string{"   ", "\t"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.raw))
		})
	}
}

func TestNormalizeTags_CapsAtTen(t *testing.T) {
	var raw []string
	for i := 0; i < 15; i++ {
		raw = append(raw, fmt.Sprintf("tag-%d", i))
	}

	got := NormalizeTags(raw)

	assert.Len(t, got, 10)
	assert.Equal(t, "tag-0", got[0])
	assert.Equal(t, "tag-9", got[9])
}

func TestNormalizeTags_DuplicatesDoNotCountTowardsCap(t *testing.T) {
	raw := []string{"go", "GO", "Go"}
	for i := 0; i < 10; i++ {
		raw = append(raw, fmt.Sprintf("t%d", i))
	}

	got := NormalizeTags(raw)

	assert.Len(t, got, 10)
	assert.Equal(t, "go", got[0])
	assert.Equal(t, "t8", got[9])
}

func TestNormalizeFilterTags_KeepsEveryTag(t *testing.T) {
	raw := []string{" GO ", "go"}
	for i := 0; i < 14; i++ {
		raw = append(raw, fmt.Sprintf("t%d", i))
	}
	raw = append(raw, strings.Repeat("x", DefaultMaxTagLength+1))

	got := NormalizeFilterTags(raw)

	assert.Len(t, got, 15)
	assert.Equal(t, "go", got[0])
	assert.Equal(t, "t13", got[14])
}

func TestArticle_PublishStampsOnce(t *testing.T) {
	var a Article
	first := mustTime(t, "2025-01-01T10:00:00Z")
	later := mustTime(t, "2025-02-01T10:00:00Z")

	a.Publish(first)
	a.Published = false
	a.Publish(later)

	assert.True(t, a.Published)
	if assert.NotNil(t, a.PublishedAt) {
		assert.True(t, a.PublishedAt.Equal(first))
	}
}
