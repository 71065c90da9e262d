package handler

import (
	"log/slog"
	"net/http"

	"kolotebe/internal/delivery/http/response"
	"kolotebe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the authenticated user's own profile
// handlers.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Image    *string `json:"image"`
}

type transfersResponse struct {
	Incoming []*TransferView `json:"incoming"`
	Outgoing []*TransferView `json:"outgoing"`
}

// GetProfile handles the caller's profile request.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileView{
		User:           toUserView(output.User),
		Balance:        output.Balance,
		BookCopies:     output.BookCopies,
		ActiveListings: output.ActiveListings,
	}, "")
}

// UpdateProfile handles a partial profile update.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:   userID,
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Phone:    req.Phone,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile updated successfully")
}

// ListTransactions handles the caller's Kolocoin ledger request.
func (h *UserHandler) ListTransactions(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	transactions, err := h.uc.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionViews(transactions), "")
}

// ListTransfers handles the caller's transfer history request.
func (h *UserHandler) ListTransfers(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	output, err := h.uc.ListTransfers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transfersResponse{
		Incoming: toTransferViews(output.Incoming),
		Outgoing: toTransferViews(output.Outgoing),
	}, "")
}
