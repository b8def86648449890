package pg

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/types/query"
)

var sortColumns = map[query.SortField]string{
	query.SortCreatedAt:   "a.created_at",
	query.SortUpdatedAt:   "a.updated_at",
	query.SortViews:       "a.view_count",
	query.SortLikes:       "a.like_count",
	query.SortPublishedAt: "a.published_at",
}

// sqlBuilder collects positional arguments while conditions are appended.
type sqlBuilder struct {
	conds []string
	args  []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *sqlBuilder) where(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *sqlBuilder) whereClause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// buildFilter compiles the filter into a WHERE clause over "articles a".
func buildFilter(f query.ArticleFilter) *sqlBuilder {
	b := &sqlBuilder{}

	if f.Search != "" {
		p := b.arg(containsPattern(f.Search))
		b.where(fmt.Sprintf("(a.title ILIKE %[1]s OR a.excerpt ILIKE %[1]s OR a.content ILIKE %[1]s)", p))
	}
	if len(f.Tags) > 0 {
		b.where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM article_tags t WHERE t.article_id = a.id AND t.tag = ANY(%s::text[]))",
			b.arg(f.Tags),
		))
	}
	if f.Author != "" {
		b.where("a.author_handle ILIKE " + b.arg(containsPattern(f.Author)))
	}
	if f.AuthorID != nil {
		b.where("a.author_id = " + b.arg(*f.AuthorID))
	}
	if f.Featured != nil {
		b.where("a.featured = " + b.arg(*f.Featured))
	}
	if f.Trending != nil {
		b.where("a.trending = " + b.arg(*f.Trending))
	}
	if f.Published != nil {
		b.where("a.published = " + b.arg(*f.Published))
	}
	return b
}

// buildOrderBy mirrors query.Sort.Compare: unpublished rows come first in
// ascending publishedAt order and the id breaks remaining ties.
func buildOrderBy(s query.Sort) string {
	parts := make([]string, 0, len(s)+1)
	for _, k := range s {
		col, ok := sortColumns[k.Field]
		if !ok {
			col = sortColumns[query.DefaultSortField]
		}
		dir := "DESC"
		nulls := " NULLS LAST"
		if k.Order == query.Asc {
			dir = "ASC"
			nulls = " NULLS FIRST"
		}
		if k.Field != query.SortPublishedAt {
			nulls = ""
		}
		parts = append(parts, col+" "+dir+nulls)
	}
	parts = append(parts, "a.id ASC")
	return " ORDER BY " + strings.Join(parts, ", ")
}
