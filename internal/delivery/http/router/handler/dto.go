package handler

import (
	"time"

	"kolotebe/internal/domain/entity"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
)

// View models returned by the API. Entities are never marshalled directly so
// internal fields such as the password hash stay out of responses.

// UserView is the public shape of a user account.
type UserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Bio           string    `json:"bio,omitempty"`
	Location      string    `json:"location,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	PhoneVerified bool      `json:"phoneVerified"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserSummaryView is the reduced owner shape embedded in books and listings.
type UserSummaryView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image,omitempty"`
}

// BookView is the public shape of a catalog book.
type BookView struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	ISBN            string          `json:"isbn,omitempty"`
	Genre           string          `json:"genre,omitempty"`
	PublicationYear *int            `json:"publicationYear,omitempty"`
	Description     string          `json:"description,omitempty"`
	CoverImage      string          `json:"coverImage,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	Copies          []*BookCopyView `json:"copies,omitempty"`
}

// BookCopyView is the public shape of a physical copy.
type BookCopyView struct {
	ID          uuid.UUID           `json:"id"`
	BookID      uuid.UUID           `json:"bookId"`
	Condition   string              `json:"condition"`
	Notes       string              `json:"notes,omitempty"`
	IsAvailable bool                `json:"isAvailable"`
	CreatedAt   time.Time           `json:"createdAt"`
	Book        *BookView           `json:"book,omitempty"`
	Owner       *UserSummaryView    `json:"owner,omitempty"`
	Listing     *ListingSummaryView `json:"listing,omitempty"`
}

// ListingSummaryView is the reduced listing shape embedded in copies.
type ListingSummaryView struct {
	ID     uuid.UUID `json:"id"`
	Slug   string    `json:"slug"`
	Status string    `json:"status"`
}

// ListingView is the public shape of a listing.
type ListingView struct {
	ID              uuid.UUID        `json:"id"`
	BookCopyID      uuid.UUID        `json:"bookCopyId"`
	Slug            string           `json:"slug"`
	Description     string           `json:"description,omitempty"`
	Photos          []string         `json:"photos"`
	TransferTypes   []string         `json:"transferTypes"`
	DeliveryMethods []string         `json:"deliveryMethods"`
	PickupLocation  string           `json:"pickupLocation,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	BookCopy        *BookCopyView    `json:"bookCopy,omitempty"`
	Owner           *UserSummaryView `json:"owner,omitempty"`
	IsOwner         *bool            `json:"isOwner,omitempty"`
}

// TransactionView is the public shape of a Kolocoin ledger entry.
type TransactionView struct {
	ID          uuid.UUID  `json:"id"`
	Amount      int        `json:"amount"`
	Type        string     `json:"type"`
	TransferID  *uuid.UUID `json:"transferId,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TransferView is the public shape of a book transfer.
type TransferView struct {
	ID             uuid.UUID        `json:"id"`
	ListingID      uuid.UUID        `json:"listingId"`
	TransferType   string           `json:"transferType"`
	DeliveryMethod string           `json:"deliveryMethod"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	Listing        *ListingView     `json:"listing,omitempty"`
	Requester      *UserSummaryView `json:"requester,omitempty"`
	Owner          *UserSummaryView `json:"owner,omitempty"`
}

// LocationView is the public shape of a saved address.
type LocationView struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Street     string    `json:"street,omitempty"`
	City       string    `json:"city,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	Country    string    `json:"country,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProfileView combines the account with balance and aggregate counts.
type ProfileView struct {
	User           *UserView `json:"user"`
	Balance        int       `json:"balance"`
	BookCopies     int64     `json:"bookCopies"`
	ActiveListings int64     `json:"activeListings"`
}

func toUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role.String(),
		Bio:           user.Bio,
		Location:      user.Location,
		Phone:         user.Phone,
		PhoneVerified: user.PhoneVerified,
		Image:         user.Image,
		CreatedAt:     user.CreatedAt,
	}
}

func toUserSummaryView(user *entity.User) *UserSummaryView {
	if user == nil {
		return nil
	}

	return &UserSummaryView{
		ID:    user.ID,
		Name:  user.Name,
		Image: user.Image,
	}
}

func toBookView(book *entity.Book) *BookView {
	if book == nil {
		return nil
	}

	view := &BookView{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		Genre:           book.Genre,
		PublicationYear: book.PublicationYear,
		Description:     book.Description,
		CoverImage:      book.CoverImage,
		CreatedAt:       book.CreatedAt,
	}
	for _, bookCopy := range book.Copies {
		view.Copies = append(view.Copies, toBookCopyView(bookCopy))
	}

	return view
}

func toBookViews(books []*entity.Book) []*BookView {
	views := make([]*BookView, 0, len(books))
	for _, book := range books {
		views = append(views, toBookView(book))
	}

	return views
}

func toBookCopyView(bookCopy *entity.BookCopy) *BookCopyView {
	if bookCopy == nil {
		return nil
	}

	view := &BookCopyView{
		ID:          bookCopy.ID,
		BookID:      bookCopy.BookID,
		Condition:   bookCopy.Condition.String(),
		Notes:       bookCopy.Notes,
		IsAvailable: bookCopy.IsAvailable,
		CreatedAt:   bookCopy.CreatedAt,
		Book:        toBookView(bookCopy.Book),
		Owner:       toUserSummaryView(bookCopy.Owner),
	}
	if bookCopy.Listing != nil {
		view.Listing = &ListingSummaryView{
			ID:     bookCopy.Listing.ID,
			Slug:   bookCopy.Listing.Slug,
			Status: string(bookCopy.Listing.Status),
		}
	}

	return view
}

func toBookCopyViews(copies []*entity.BookCopy) []*BookCopyView {
	views := make([]*BookCopyView, 0, len(copies))
	for _, bookCopy := range copies {
		views = append(views, toBookCopyView(bookCopy))
	}

	return views
}

func toListingView(listing *entity.Listing) *ListingView {
	if listing == nil {
		return nil
	}

	transferTypes := make([]string, 0, len(listing.TransferTypes))
	for _, t := range listing.TransferTypes {
		transferTypes = append(transferTypes, string(t))
	}
	deliveryMethods := make([]string, 0, len(listing.DeliveryMethods))
	for _, d := range listing.DeliveryMethods {
		deliveryMethods = append(deliveryMethods, string(d))
	}

	return &ListingView{
		ID:              listing.ID,
		BookCopyID:      listing.BookCopyID,
		Slug:            listing.Slug,
		Description:     listing.Description,
		Photos:          listing.Photos,
		TransferTypes:   transferTypes,
		DeliveryMethods: deliveryMethods,
		PickupLocation:  listing.PickupLocation,
		Status:          string(listing.Status),
		CreatedAt:       listing.CreatedAt,
		BookCopy:        toBookCopyView(listing.BookCopy),
		Owner:           toUserSummaryView(listing.User),
	}
}

func toListingViews(listings []*entity.Listing) []*ListingView {
	views := make([]*ListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, toListingView(listing))
	}

	return views
}

func toListingDetailView(output *usecase.ListingDetailOutput) *ListingView {
	view := toListingView(output.Listing)
	isOwner := output.IsOwner
	view.IsOwner = &isOwner

	return view
}

func toTransactionViews(transactions []*entity.BalanceTransaction) []*TransactionView {
	views := make([]*TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		views = append(views, &TransactionView{
			ID:          transaction.ID,
			Amount:      transaction.Amount,
			Type:        string(transaction.Type),
			TransferID:  transaction.TransferID,
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt,
		})
	}

	return views
}

func toTransferViews(transfers []*entity.BookTransfer) []*TransferView {
	views := make([]*TransferView, 0, len(transfers))
	for _, transfer := range transfers {
		views = append(views, &TransferView{
			ID:             transfer.ID,
			ListingID:      transfer.ListingID,
			TransferType:   string(transfer.TransferType),
			DeliveryMethod: string(transfer.DeliveryMethod),
			Status:         string(transfer.Status),
			CreatedAt:      transfer.CreatedAt,
			Listing:        toListingView(transfer.Listing),
			Requester:      toUserSummaryView(transfer.Requester),
			Owner:          toUserSummaryView(transfer.Owner),
		})
	}

	return views
}

func toLocationView(location *entity.UserLocation) *LocationView {
	if location == nil {
		return nil
	}

	return &LocationView{
		ID:         location.ID,
		Type:       string(location.Type),
		Street:     location.Street,
		City:       location.City,
		PostalCode: location.PostalCode,
		Country:    location.Country,
		IsDefault:  location.IsDefault,
		CreatedAt:  location.CreatedAt,
	}
}

func toLocationViews(locations []*entity.UserLocation) []*LocationView {
	views := make([]*LocationView, 0, len(locations))
	for _, location := range locations {
		views = append(views, toLocationView(location))
	}

	return views
}
