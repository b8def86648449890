package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Identity headers are set by the upstream gateway after authentication.
const (
	HeaderUserID     = "X-User-Id"
	HeaderUserName   = "X-User-Name"
	HeaderUserHandle = "X-User-Handle"
)

// caller returns the identity of the request. A missing id yields a zero
// identity which the service rejects where one is required.
func caller(c echo.Context) (domain.Identity, error) {
	id, err := viewer(c)
	if err != nil || id == nil {
		return domain.Identity{}, err
	}
	return domain.Identity{
		ID:          *id,
		DisplayName: strings.TrimSpace(c.Request().Header.Get(HeaderUserName)),
		Handle:      strings.TrimSpace(c.Request().Header.Get(HeaderUserHandle)),
	}, nil
}

// viewer returns the optional caller id for read endpoints.
func viewer(c echo.Context) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid "+HeaderUserID+" header", err)
	}
	return &id, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap(fmt.Sprintf("invalid %s", name), err)
	}
	return id, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperr.NewValidation(name + " must be a boolean")
	}
	return &b, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	var v int
	if err := echo.QueryParamsBinder(c).Int(name, &v).BindError(); err != nil {
		return 0, apperr.NewValidation(name + " must be an integer")
	}
	return v, nil
}

// bind decodes and validates a request body. Decoding failures surface as
// validation errors rather than echo's plain HTTP errors.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewValidationWrap("malformed request body", err)
	}
	return c.Validate(req)
}
