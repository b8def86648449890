package dto

import (
	"github.com/DjordjeVuckovic/news-press/internal/types/query"
	"github.com/DjordjeVuckovic/news-press/pkg/pagination"
	"github.com/DjordjeVuckovic/news-press/pkg/utils"
)

// ListArticlesRequest is bound from the query string of GET /articles.
// Tags may be repeated or comma separated.
type ListArticlesRequest struct {
	Page      int      `query:"page" validate:"omitempty,min=1"`
	Limit     int      `query:"limit" validate:"omitempty,min=1"`
	Search    string   `query:"search" validate:"omitempty,max=200"`
	Tags      []string `query:"tags"`
	Author    string   `query:"author"`
	Featured  *bool    `query:"featured"`
	Trending  *bool    `query:"trending"`
	Published *bool    `query:"published"`
	SortBy    string   `query:"sortBy" validate:"omitempty,oneof=createdAt updatedAt views likes publishedAt"`
	SortOrder string   `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

func (r ListArticlesRequest) ToQuery() query.ArticleQuery {
	tags := utils.SplitTrim(r.Tags, ",")
	return query.ArticleQuery{
		Filter: query.ArticleFilter{
			Search:    r.Search,
			Tags:      tags,
			Author:    r.Author,
			Featured:  r.Featured,
			Trending:  r.Trending,
			Published: r.Published,
		},
		SortField:  query.SortField(r.SortBy),
		SortOrder:  query.SortOrder(r.SortOrder),
		Pagination: pagination.OffsetRequest{Page: r.Page, Limit: r.Limit},
	}
}
