package handler

import (
	"log/slog"
	"net/http"

	"kolotebe/internal/delivery/http/response"
	"kolotebe/internal/domain/entity"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for listing handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

type createListingRequest struct {
	BookCopyID      uuid.UUID `json:"bookCopyId" validate:"required"`
	Description     string    `json:"description"`
	Photos          []string  `json:"photos"`
	TransferTypes   []string  `json:"transferTypes" validate:"required,min=1"`
	DeliveryMethods []string  `json:"deliveryMethods" validate:"required,min=1"`
	PickupLocation  string    `json:"pickupLocation"`
}

type updateListingRequest struct {
	Description     *string   `json:"description"`
	Photos          *[]string `json:"photos"`
	TransferTypes   *[]string `json:"transferTypes"`
	DeliveryMethods *[]string `json:"deliveryMethods"`
	PickupLocation  *string   `json:"pickupLocation"`
	Status          *string   `json:"status"`
}

// CreateListing handles publishing a book copy as a listing.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), &usecase.CreateListingInput{
		UserID:          userID,
		BookCopyID:      req.BookCopyID,
		Description:     req.Description,
		Photos:          req.Photos,
		TransferTypes:   toTransferTypes(req.TransferTypes),
		DeliveryMethods: toDeliveryMethods(req.DeliveryMethods),
		PickupLocation:  req.PickupLocation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toListingView(listing), "Listing created successfully")
}

// ListListings handles the public listing feed with optional filters.
func (h *ListingHandler) ListListings(c echo.Context) error {
	filter := repository.ListingFilter{
		Genre:          c.QueryParam("genre"),
		TransferType:   entity.TransferType(c.QueryParam("transferType")),
		DeliveryMethod: entity.DeliveryMethod(c.QueryParam("deliveryMethod")),
		Search:         c.QueryParam("search"),
	}

	listings, err := h.uc.ListActive(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingViews(listings), "")
}

// GetListing handles the listing detail request. Anonymous callers get
// isOwner=false; the owner gets isOwner=true.
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	output, err := h.uc.GetListing(c.Request().Context(), listingID, optionalUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingDetailView(output), "")
}

// UpdateListing handles a partial listing update by its owner.
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	input := &usecase.UpdateListingInput{
		UserID:         userID,
		ListingID:      listingID,
		Description:    req.Description,
		Photos:         req.Photos,
		PickupLocation: req.PickupLocation,
	}
	if req.TransferTypes != nil {
		transferTypes := toTransferTypes(*req.TransferTypes)
		input.TransferTypes = &transferTypes
	}
	if req.DeliveryMethods != nil {
		deliveryMethods := toDeliveryMethods(*req.DeliveryMethods)
		input.DeliveryMethods = &deliveryMethods
	}
	if req.Status != nil {
		status := entity.ListingStatus(*req.Status)
		input.Status = &status
	}

	listing, err := h.uc.UpdateListing(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingView(listing), "Listing updated successfully")
}

// DeleteListing handles a soft delete by the listing owner.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	if err := h.uc.DeleteListing(c.Request().Context(), userID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": listingID.String()}, "Listing deleted successfully")
}

// GetListingQR renders the listing share URL as a PNG QR code.
func (h *ListingHandler) GetListingQR(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	pngBytes, err := h.uc.GenerateListingQR(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

func toTransferTypes(values []string) []entity.TransferType {
	transferTypes := make([]entity.TransferType, 0, len(values))
	for _, v := range values {
		transferTypes = append(transferTypes, entity.TransferType(v))
	}

	return transferTypes
}

func toDeliveryMethods(values []string) []entity.DeliveryMethod {
	deliveryMethods := make([]entity.DeliveryMethod, 0, len(values))
	for _, v := range values {
		deliveryMethods = append(deliveryMethods, entity.DeliveryMethod(v))
	}

	return deliveryMethods
}
