package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/dto"
	"github.com/DjordjeVuckovic/news-press/internal/service"
	"github.com/labstack/echo/v4"
)

type ArticleRouter struct {
	e   *echo.Echo
	svc *service.Service
}

func NewArticleRouter(e *echo.Echo, svc *service.Service) *ArticleRouter {
	return &ArticleRouter{
		e:   e,
		svc: svc,
	}
}

func (r *ArticleRouter) Bind() {
	g := r.e.Group("/articles")
	g.GET("", r.list)
	g.POST("", r.create)
	g.GET("/trending", r.trending)
	g.GET("/featured", r.featured)
	g.GET("/:idOrSlug", r.get)
	g.PATCH("/:id", r.update)
	g.DELETE("/:id", r.delete)
	g.POST("/:id/like", r.toggleLike)
	g.POST("/:id/bookmark", r.toggleBookmark)
	g.GET("/:id/comments", r.listComments)
	g.POST("/:id/comments", r.addComment)
}

// list godoc
// @Summary List articles
// @Description Paginated catalog with text, tag, author and flag filters. Drafts are hidden unless published=false.
// @Tags articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Substring of title, excerpt or content"
// @Param tags query string false "Comma separated tags"
// @Param author query string false "Substring of the author handle"
// @Param sortBy query string false "createdAt, updatedAt, views, likes or publishedAt"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} pagination.OffsetResult[domain.ArticleView]
// @Failure 400 {object} map[string]string
// @Router /articles [get]
func (r *ArticleRouter) list(c echo.Context) error {
	var req dto.ListArticlesRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("limit", &req.Limit).
		String("search", &req.Search).
		Strings("tags", &req.Tags).
		String("author", &req.Author).
		String("sortBy", &req.SortBy).
		String("sortOrder", &req.SortOrder).
		BindError()
	if err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	if req.Featured, err = queryBool(c, "featured"); err != nil {
		return err
	}
	if req.Trending, err = queryBool(c, "trending"); err != nil {
		return err
	}
	if req.Published, err = queryBool(c, "published"); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	viewerID, err := viewer(c)
	if err != nil {
		return err
	}
	res, err := r.svc.List(c.Request().Context(), req.ToQuery(), viewerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Author id"
// @Param article body dto.CreateArticleRequest true "Article"
// @Success 201 {object} domain.ArticleView
// @Failure 400 {object} map[string]string
// @Router /articles [post]
func (r *ArticleRouter) create(c echo.Context) error {
	var req dto.CreateArticleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	author, err := caller(c)
	if err != nil {
		return err
	}
	article, err := r.svc.Create(c.Request().Context(), req.ToInput(), author)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

func (r *ArticleRouter) trending(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	articles, err := r.svc.Trending(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

func (r *ArticleRouter) featured(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	articles, err := r.svc.Featured(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// get godoc
// @Summary Get an article by id or slug
// @Description Records a view for the caller, anonymous when no X-User-Id is sent.
// @Tags articles
// @Produce json
// @Param idOrSlug path string true "Article id or slug"
// @Success 200 {object} domain.ArticleView
// @Failure 404 {object} map[string]string
// @Router /articles/{idOrSlug} [get]
func (r *ArticleRouter) get(c echo.Context) error {
	viewerID, err := viewer(c)
	if err != nil {
		return err
	}
	article, err := r.svc.GetByIDOrSlug(c.Request().Context(), c.Param("idOrSlug"), viewerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// update godoc
// @Summary Partially update an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param X-User-Id header string true "Caller id, must be the author"
// @Param patch body dto.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} domain.ArticleView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /articles/{id} [patch]
func (r *ArticleRouter) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateArticleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	who, err := caller(c)
	if err != nil {
		return err
	}
	article, err := r.svc.Update(c.Request().Context(), id, req.ToPatch(), who)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

func (r *ArticleRouter) delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	who, err := caller(c)
	if err != nil {
		return err
	}
	if err := r.svc.Delete(c.Request().Context(), id, who); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *ArticleRouter) toggleLike(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	who, err := caller(c)
	if err != nil {
		return err
	}
	res, err := r.svc.ToggleLike(c.Request().Context(), id, who.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (r *ArticleRouter) toggleBookmark(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	who, err := caller(c)
	if err != nil {
		return err
	}
	res, err := r.svc.ToggleBookmark(c.Request().Context(), id, who.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
