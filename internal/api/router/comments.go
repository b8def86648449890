package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-press/internal/dto"
	"github.com/DjordjeVuckovic/news-press/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// listComments godoc
// @Summary List comment threads of an article
// @Description Top-level comments newest first, each with its replies oldest first.
// @Tags comments
// @Produce json
// @Param id path string true "Article id"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} pagination.OffsetResult[domain.CommentThread]
// @Router /articles/{id}/comments [get]
func (r *ArticleRouter) listComments(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	res, err := r.svc.ListComments(c.Request().Context(), id, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// addComment godoc
// @Summary Comment on an article or reply to a top-level comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param X-User-Id header string true "Author id"
// @Param X-User-Name header string true "Author display name"
// @Param comment body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /articles/{id}/comments [post]
func (r *ArticleRouter) addComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	author, err := caller(c)
	if err != nil {
		return err
	}

	in := service.CommentInput{Content: req.Content}
	if req.ParentID != nil {
		parent := uuid.MustParse(*req.ParentID)
		in.ParentID = &parent
	}
	comment, err := r.svc.AddComment(c.Request().Context(), id, in, author)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}
