package handler

import (
	"log/slog"
	"net/http"

	"kolotebe/internal/delivery/http/response"
	"kolotebe/internal/domain/entity"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for catalog and copy handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type addBookRequest struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	ISBN            string `json:"isbn"`
	Genre           string `json:"genre"`
	PublicationYear *int   `json:"publicationYear"`
	Description     string `json:"description"`
	CoverImage      string `json:"coverImage"`
	Condition       string `json:"condition" validate:"required"`
	Notes           string `json:"notes"`
}

type addBookResponse struct {
	BookID     uuid.UUID `json:"bookId"`
	BookCopyID uuid.UUID `json:"bookCopyId"`
	Created    bool      `json:"created"`
}

// AddBook handles adding a book together with the caller's physical copy.
func (h *BookHandler) AddBook(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req addBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddBook(c.Request().Context(), &usecase.AddBookInput{
		OwnerID:         userID,
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
		Description:     req.Description,
		CoverImage:      req.CoverImage,
		Condition:       entity.Condition(req.Condition),
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, addBookResponse{
		BookID:     output.BookID,
		BookCopyID: output.BookCopyID,
		Created:    output.Created,
	}, "Book added successfully")
}

// SearchBooks handles the catalog search request.
func (h *BookHandler) SearchBooks(c echo.Context) error {
	query := c.QueryParam("search")
	if query == "" {
		// Older clients send ?q=
		query = c.QueryParam("q")
	}

	books, err := h.uc.SearchBooks(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookViews(books), "")
}

// GetBook handles the book detail request.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	book, err := h.uc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookView(book), "")
}

// ListMyCopies handles listing the caller's own copies.
func (h *BookHandler) ListMyCopies(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	copies, err := h.uc.ListMyCopies(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookCopyViews(copies), "")
}
