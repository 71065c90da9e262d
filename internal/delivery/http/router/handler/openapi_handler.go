package handler

import (
	"log/slog"
	"net/http"

	"kolotebe/config"
	"kolotebe/internal/delivery/http/response"
	"kolotebe/internal/openapi"
	"kolotebe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OpenAPIHandler serves the generated API documents.
type OpenAPIHandler struct {
	userUc  usecase.UserUsecase
	baseURL string
	logger  *slog.Logger
}

// NewOpenAPIHandler is the constructor for OpenAPIHandler, injected by Fx.
func NewOpenAPIHandler(userUc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *OpenAPIHandler {
	baseURL := ""
	if cfg.App != nil {
		baseURL = cfg.App.BaseURL
	}

	return &OpenAPIHandler{
		userUc:  userUc,
		baseURL: baseURL,
		logger:  logger,
	}
}

// PublicDocument serves the read-only API document. No authentication.
func (h *OpenAPIHandler) PublicDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, openapi.PublicDocument(h.baseURL))
}

// InternalDocument serves the full API document. The caller's role is
// re-queried so a revoked developer loses access without a new token.
func (h *OpenAPIHandler) InternalDocument(c echo.Context) error {
	email, ok := currentEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	capabilities, err := h.userUc.CheckRole(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	if !capabilities.IsDeveloper {
		return response.Forbidden(c, "DEVELOPER_ROLE_REQUIRED", "Internal API documentation requires the developer role")
	}

	return c.JSON(http.StatusOK, openapi.Document(h.baseURL))
}
