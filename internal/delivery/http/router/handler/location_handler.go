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

// LocationHandler holds dependencies for saved address handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createLocationRequest struct {
	Type       string `json:"type" validate:"required"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}

type updateLocationRequest struct {
	Type       *string `json:"type"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
	IsDefault  *bool   `json:"isDefault"`
}

// ListLocations handles listing the caller's saved addresses.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	locations, err := h.uc.ListLocations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationViews(locations), "")
}

// CreateLocation handles saving a new address.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.CreateLocation(c.Request().Context(), &usecase.CreateLocationInput{
		UserID:     userID,
		Type:       entity.LocationType(req.Type),
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLocationView(location), "Location created successfully")
}

// UpdateLocation handles a partial update of a saved address.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	input := &usecase.UpdateLocationInput{
		UserID:     userID,
		LocationID: locationID,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}
	if req.Type != nil {
		locationType := entity.LocationType(*req.Type)
		input.Type = &locationType
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationView(location), "Location updated successfully")
}

// DeleteLocation handles soft-deleting a saved address.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
	}

	if err := h.uc.DeleteLocation(c.Request().Context(), userID, locationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": locationID.String()}, "Location deleted successfully")
}
