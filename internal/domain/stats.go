package domain

type ArticleCounts struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
}

type EngagementTotals struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// ArticleStats is a snapshot of the corpus, or of a single author's articles.
type ArticleStats struct {
	TotalArticles     int64     `json:"totalArticles"`
	PublishedArticles int64     `json:"publishedArticles"`
	DraftArticles     int64     `json:"draftArticles"`
	TotalViews        int64     `json:"totalViews"`
	TotalLikes        int64     `json:"totalLikes"`
	TotalComments     int64     `json:"totalComments"`
	AvgReadTime       int       `json:"avgReadTime"`
	TopTags           []TagStat `json:"topTags"`
	RecentArticles    []Article `json:"recentArticles"`
}
