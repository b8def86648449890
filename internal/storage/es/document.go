package es

import (
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// ArticleDocument is the search-side projection of a published article.
type ArticleDocument struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt"`
	Content      string     `json:"content"`
	AuthorID     string     `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	AuthorHandle string     `json:"author_handle"`
	Tags         []string   `json:"tags"`
	Featured     bool       `json:"featured"`
	ReadTime     int        `json:"read_time"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	IndexedAt    time.Time  `json:"indexed_at"`
}

type IndexBuilder struct {
	analyzer string
}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{analyzer: "article_analyzer"}
}

func (b *IndexBuilder) mapToESDocument(article domain.Article, now time.Time) ArticleDocument {
	tags := article.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleDocument{
		ID:           article.ID.String(),
		Slug:         article.Slug,
		Title:        article.Title,
		Excerpt:      article.Excerpt,
		Content:      article.Content,
		AuthorID:     article.Author.ID.String(),
		AuthorName:   article.Author.DisplayName,
		AuthorHandle: article.Author.Handle,
		Tags:         tags,
		Featured:     article.Featured,
		ReadTime:     article.ReadTime,
		CreatedAt:    article.CreatedAt,
		UpdatedAt:    article.UpdatedAt,
		PublishedAt:  article.PublishedAt,
		IndexedAt:    now,
	}
}

func (b *IndexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				b.analyzer: types.StandardAnalyzer{
					Stopwords: []string{"_english_"},
				},
			},
		},
	}
}

func (b *IndexBuilder) buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":            types.NewKeywordProperty(),
			"slug":          types.NewKeywordProperty(),
			"title":         b.createTextPropertyWithKeyword(b.analyzer),
			"excerpt":       b.createTextProperty(b.analyzer),
			"content":       b.createTextProperty(b.analyzer),
			"author_id":     types.NewKeywordProperty(),
			"author_name":   b.createTextPropertyWithKeyword(""),
			"author_handle": types.NewKeywordProperty(),
			"tags":          types.NewKeywordProperty(),
			"featured":      types.NewBooleanProperty(),
			"read_time":     types.NewIntegerNumberProperty(),
			"created_at":    types.NewDateProperty(),
			"updated_at":    types.NewDateProperty(),
			"published_at":  types.NewDateProperty(),
			"indexed_at":    types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func (b *IndexBuilder) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
