// Command seed populates a development database with a couple of accounts,
// a small book catalog and active listings so the API is usable right after
// startup. It is idempotent: rerunning it leaves existing rows untouched.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"kolotebe/config"
	"kolotebe/internal/domain/entity"
	"kolotebe/internal/infra/auth"
	"kolotebe/internal/infra/persistence/model"
	"kolotebe/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// Every seeded listing offers the same transfer and delivery options. The
// values are built from the entity constants so they stay inside the enums
// the API validates against.
var (
	seedTransferTypes   = pq.StringArray{string(entity.TransferTypeFree), string(entity.TransferTypeForKolocoins)}
	seedDeliveryMethods = pq.StringArray{string(entity.DeliverySelfPickup), string(entity.DeliveryNovaPoshta)}
)

type seedBook struct {
	title     string
	author    string
	isbn      string
	genre     string
	year      int
	condition entity.Condition
	slug      string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("seeding completed")
}

func run(logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.BookModel{},
		&model.BookCopyModel{},
		&model.ListingModel{},
		&model.UserBalanceModel{},
		&model.BalanceTransactionModel{},
		&model.BookTransferModel{},
		&model.UserLocationModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	hasher := auth.NewBcryptHasher(cfg)
	passwordHash, err := hasher.Hash("password123")
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	admin, err := seedUser(db, "john.rusakov@gmail.com", "John Rusakov", passwordHash, entity.RoleAdmin)
	if err != nil {
		return err
	}

	reader, err := seedUser(db, "test@example.com", "Test Reader", passwordHash, entity.RoleUser)
	if err != nil {
		return err
	}

	logger.Info("seeded users",
		slog.String("admin", admin.Email),
		slog.String("reader", reader.Email))

	if err := seedBalance(db, admin.ID, 10); err != nil {
		return err
	}
	if err := seedBalance(db, reader.ID, 5); err != nil {
		return err
	}

	books := []seedBook{
		{
			title:     "Kobzar",
			author:    "Taras Shevchenko",
			isbn:      "9789660375437",
			genre:     "Poetry",
			year:      1840,
			condition: entity.ConditionGood,
			slug:      "kobzar-taras-shevchenko",
		},
		{
			title:     "The Master and Margarita",
			author:    "Mikhail Bulgakov",
			isbn:      "9780143108276",
			genre:     "Fiction",
			year:      1967,
			condition: entity.ConditionLikeNew,
			slug:      "the-master-and-margarita-mikhail-bulgakov",
		},
		{
			title:     "Harry Potter and the Philosopher's Stone",
			author:    "J. K. Rowling",
			isbn:      "9780747532699",
			genre:     "Fantasy",
			year:      1997,
			condition: entity.ConditionFair,
			slug:      "harry-potter-and-the-philosophers-stone-j-k-rowling",
		},
		{
			title:     "1984",
			author:    "George Orwell",
			isbn:      "9780451524935",
			genre:     "Dystopia",
			year:      1949,
			condition: entity.ConditionNew,
			slug:      "1984-george-orwell",
		},
	}

	// Alternate copy ownership between the two accounts so both profiles
	// have something to show.
	owners := []*model.UserModel{admin, reader}
	listings := make([]*model.ListingModel, 0, len(books))
	for idx, book := range books {
		owner := owners[idx%len(owners)]
		listing, err := seedListing(db, owner, book)
		if err != nil {
			return err
		}
		listings = append(listings, listing)
	}

	if err := seedTransfers(db, listings, admin, reader); err != nil {
		return err
	}

	if err := seedLocation(db, admin.ID, entity.LocationTypeHome, "Khreshchatyk St, 1", "Kyiv", "01001", true); err != nil {
		return err
	}
	if err := seedLocation(db, reader.ID, entity.LocationTypeWork, "Rynok Square, 14", "Lviv", "79008", true); err != nil {
		return err
	}

	return nil
}

// seedTransfers records one transfer request in each direction so the
// transfer history endpoint returns data out of the box. It goes through the
// transfer repository rather than raw models, the same path the application
// uses to read them back.
func seedTransfers(db *gorm.DB, listings []*model.ListingModel, admin, reader *model.UserModel) error {
	if len(listings) < 2 {
		return nil
	}

	ctx := context.Background()
	transferRepo := postgres.NewTransferRepository(db)

	outgoing, err := transferRepo.FindOutgoing(ctx, reader.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing transfers")
	}
	if len(outgoing) > 0 {
		return nil
	}

	transfers := []*entity.BookTransfer{
		{
			ListingID:      listings[0].ID,
			RequesterID:    reader.ID,
			OwnerID:        admin.ID,
			TransferType:   entity.TransferTypeForKolocoins,
			DeliveryMethod: entity.DeliveryNovaPoshta,
			Status:         entity.TransferStatusRequested,
		},
		{
			ListingID:      listings[1].ID,
			RequesterID:    admin.ID,
			OwnerID:        reader.ID,
			TransferType:   entity.TransferTypeFree,
			DeliveryMethod: entity.DeliverySelfPickup,
			Status:         entity.TransferStatusDelivered,
		},
	}

	for _, transfer := range transfers {
		if err := transferRepo.Create(ctx, transfer); err != nil {
			return errors.Wrap(err, "failed to seed transfer")
		}
	}

	return nil
}

func seedUser(db *gorm.DB, email, name, passwordHash string, role entity.Role) (*model.UserModel, error) {
	user := model.UserModel{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         string(role),
	}

	err := db.Where(model.UserModel{Email: email}).
		Attrs(user).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed user %s", email)
	}

	return &user, nil
}

func seedBalance(db *gorm.DB, userID uuid.UUID, amount int) error {
	balance := model.UserBalanceModel{}

	err := db.Where("user_id = ?", userID).
		Attrs(map[string]any{"user_id": userID, "balance": amount}).
		FirstOrCreate(&balance).Error

	return errors.Wrapf(err, "failed to seed balance for user %s", userID.String())
}

func seedListing(db *gorm.DB, owner *model.UserModel, book seedBook) (*model.ListingModel, error) {
	bookRow := model.BookModel{}
	isbn := book.isbn
	year := book.year

	err := db.Where(model.BookModel{Title: book.title, Author: book.author}).
		Attrs(model.BookModel{
			Title:           book.title,
			Author:          book.author,
			ISBN:            &isbn,
			Genre:           book.genre,
			PublicationYear: &year,
		}).
		FirstOrCreate(&bookRow).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed book %q", book.title)
	}

	copyRow := model.BookCopyModel{}
	err = db.Where(model.BookCopyModel{BookID: bookRow.ID, OwnerID: owner.ID}).
		Attrs(model.BookCopyModel{
			BookID:      bookRow.ID,
			OwnerID:     owner.ID,
			Condition:   string(book.condition),
			IsAvailable: true,
		}).
		FirstOrCreate(&copyRow).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed copy of %q", book.title)
	}

	listing := model.ListingModel{}
	err = db.Where(model.ListingModel{BookCopyID: copyRow.ID}).
		Attrs(model.ListingModel{
			BookCopyID:      copyRow.ID,
			UserID:          owner.ID,
			Slug:            book.slug,
			Description:     fmt.Sprintf("%s by %s, looking for a new reader.", book.title, book.author),
			TransferTypes:   seedTransferTypes,
			DeliveryMethods: seedDeliveryMethods,
			PickupLocation:  "Kyiv",
			Status:          string(entity.ListingStatusActive),
		}).
		FirstOrCreate(&listing).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed listing for %q", book.title)
	}

	return &listing, nil
}

func seedLocation(db *gorm.DB, userID uuid.UUID, locType entity.LocationType, street, city, postalCode string, isDefault bool) error {
	location := model.UserLocationModel{}

	err := db.Where("user_id = ? AND street = ?", userID, street).
		Attrs(map[string]any{
			"user_id":     userID,
			"type":        string(locType),
			"street":      street,
			"city":        city,
			"postal_code": postalCode,
			"country":     "Ukraine",
			"is_default":  isDefault,
		}).
		FirstOrCreate(&location).Error

	return errors.Wrapf(err, "failed to seed location %q", street)
}
