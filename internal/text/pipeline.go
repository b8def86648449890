// Package text turns raw author input into the stored representations of an
// article: sanitized plain text, rendered HTML, an excerpt and a read time.
package text

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	DefaultExcerptLength  = 160
	DefaultWordsPerMinute = 200
	Ellipsis              = "..."
)

type Config struct {
	ExcerptLength  int
	WordsPerMinute int
}

func DefaultConfig() Config {
	return Config{
		ExcerptLength:  DefaultExcerptLength,
		WordsPerMinute: DefaultWordsPerMinute,
	}
}

type Pipeline struct {
	cfg    Config
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewPipeline(cfg Config) *Pipeline {
	if cfg.ExcerptLength <= len(Ellipsis) {
		cfg.ExcerptLength = DefaultExcerptLength
	}
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = DefaultWordsPerMinute
	}

	return &Pipeline{
		cfg: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Sanitize trims a plain-text field and strips angle brackets. It is not an
// HTML sanitizer; rendered content goes through Render instead.
func Sanitize(raw string) string {
	return strings.TrimSpace(strings.NewReplacer("<", "", ">", "").Replace(raw))
}

// Render converts markdown to HTML and strips anything scriptable from the result.
func (p *Pipeline) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return p.policy.Sanitize(buf.String()), nil
}

func (p *Pipeline) Excerpt(content string) string {
	return Excerpt(content, p.cfg.ExcerptLength)
}

func (p *Pipeline) ReadTime(content string) int {
	return ReadTime(content, p.cfg.WordsPerMinute)
}
