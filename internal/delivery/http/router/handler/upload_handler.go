package handler

import (
	"log/slog"
	"net/http"

	"kolotebe/internal/delivery/http/response"
	"kolotebe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for file upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadImage handles a multipart image upload under the "file" field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if _, ok := currentUserID(c); !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
		Size:        fileHeader.Size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, uploadResponse{
		Key: output.Key,
		URL: output.URL,
	}, "File uploaded successfully")
}
