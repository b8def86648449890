package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-press/internal/service"
	"github.com/labstack/echo/v4"
)

// StatsRouter serves the author, tag and corpus aggregate endpoints.
type StatsRouter struct {
	e   *echo.Echo
	svc *service.Service
}

func NewStatsRouter(e *echo.Echo, svc *service.Service) *StatsRouter {
	return &StatsRouter{
		e:   e,
		svc: svc,
	}
}

func (r *StatsRouter) Bind() {
	r.e.GET("/authors/:id/articles", r.authorArticles)
	r.e.GET("/authors/:id/stats", r.authorStats)
	r.e.GET("/tags/popular", r.popularTags)
	r.e.GET("/stats", r.stats)
}

func (r *StatsRouter) authorArticles(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	published, err := queryBool(c, "published")
	if err != nil {
		return err
	}
	articles, err := r.svc.ByAuthor(c.Request().Context(), &id, published)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// authorStats godoc
// @Summary Aggregate stats of one author's articles
// @Tags stats
// @Produce json
// @Param id path string true "Author id"
// @Success 200 {object} domain.ArticleStats
// @Router /authors/{id}/stats [get]
func (r *StatsRouter) authorStats(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	stats, err := r.svc.UserArticleStats(c.Request().Context(), &id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (r *StatsRouter) popularTags(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	tags, err := r.svc.PopularTags(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// stats godoc
// @Summary Aggregate stats of the whole corpus
// @Tags stats
// @Produce json
// @Success 200 {object} domain.ArticleStats
// @Router /stats [get]
func (r *StatsRouter) stats(c echo.Context) error {
	stats, err := r.svc.ArticleStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
