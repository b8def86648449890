package slug

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Hello World!", want: "hello-world"},
		{title: "  Go   Concurrency: Patterns & Pitfalls ", want: "go-concurrency-patterns-and-pitfalls"},
		{title: "Naïve Café", want: "naive-cafe"},
		{title: "!!!", want: "article"},
		{title: "", want: "article"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Base(tt.title))
		})
	}
}

func TestBase_TruncatesOnHyphen(t *testing.T) {
	title := strings.Repeat("word ", 40)

	got := Base(title)

	assert.LessOrEqual(t, len(got), MaxBaseLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasSuffix(got, "word"))
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		existing []string
		want     string
	}{
		{name: "no collision", title: "Hello World!", existing: nil, want: "hello-world"},
		{name: "base taken", title: "Hello World!", existing: []string{"hello-world"}, want: "hello-world-1"},
		{name: "base and first suffix taken", title: "Hello World!", existing: []string{"hello-world", "hello-world-1"}, want: "hello-world-2"},
		{name: "gap is filled", title: "Hello World!", existing: []string{"hello-world", "hello-world-2"}, want: "hello-world-1"},
		{name: "unrelated slugs ignored", title: "Hello World!", existing: []string{"hello", "world"}, want: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allocate(tt.title, tt.existing))
		})
	}
}

func TestAllocate_NeverReturnsExistingSlug(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	titles := []string{"Hello World", "Go", "Release Notes", "!!!", "a b c"}

	for i := 0; i < 200; i++ {
		title := titles[rnd.Intn(len(titles))]
		base := Base(title)

		var existing []string
		for j := 0; j < rnd.Intn(20); j++ {
			if rnd.Intn(3) == 0 {
				existing = append(existing, base)
			} else {
				existing = append(existing, fmt.Sprintf("%s-%d", base, rnd.Intn(15)))
			}
		}

		got := Allocate(title, existing)

		assert.NotContains(t, existing, got, "title=%q existing=%v", title, existing)
		assert.Equal(t, got, Allocate(title, existing), "allocation must be deterministic")
	}
}
