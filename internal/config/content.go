package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/detach"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/text"
	"gopkg.in/yaml.v3"
)

// Content holds the tunables of the text pipeline, tag normalization and
// detached side effects.
type Content struct {
	ExcerptLength   int           `yaml:"excerpt_length"`
	WordsPerMinute  int           `yaml:"words_per_minute"`
	MaxTags         int           `yaml:"max_tags"`
	MaxTagLength    int           `yaml:"max_tag_length"`
	DetachedTimeout time.Duration `yaml:"detached_timeout"`
}

func DefaultContent() Content {
	return Content{
		ExcerptLength:   text.DefaultExcerptLength,
		WordsPerMinute:  text.DefaultWordsPerMinute,
		MaxTags:         domain.DefaultMaxTags,
		MaxTagLength:    domain.DefaultMaxTagLength,
		DetachedTimeout: detach.DefaultTimeout,
	}
}

func (c Content) Validate() error {
	if c.ExcerptLength <= len(text.Ellipsis) {
		return fmt.Errorf("excerpt_length must be greater than %d", len(text.Ellipsis))
	}
	if c.WordsPerMinute <= 0 {
		return fmt.Errorf("words_per_minute must be positive")
	}
	if c.MaxTags <= 0 || c.MaxTagLength <= 0 {
		return fmt.Errorf("tag limits must be positive")
	}
	if c.DetachedTimeout <= 0 {
		return fmt.Errorf("detached_timeout must be positive")
	}
	return nil
}

func (c Content) TextConfig() text.Config {
	return text.Config{ExcerptLength: c.ExcerptLength, WordsPerMinute: c.WordsPerMinute}
}

func (c Content) TagLimits() domain.TagLimits {
	return domain.TagLimits{MaxTags: c.MaxTags, MaxLength: c.MaxTagLength}
}

type YAMLContentLoader struct {
	reader io.Reader
}

func NewYAMLContentLoader(reader io.Reader) *YAMLContentLoader {
	return &YAMLContentLoader{
		reader: reader,
	}
}

// Load decodes the document over the defaults, so omitted keys keep their default.
func (cl *YAMLContentLoader) Load() (*Content, error) {
	cfg := DefaultContent()
	decoder := yaml.NewDecoder(cl.reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode content config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadContent reads the file at path, falling back to the defaults when path is empty.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		cfg := DefaultContent()
		return &cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := NewYAMLContentLoader(f).Load()
	if err != nil {
		return nil, err
	}
	slog.Info("Content config loaded", "path", path)
	return cfg, nil
}
