package main

import (
	"kolotebe/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.BookModel{},
		model.BookCopyModel{},
		model.ListingModel{},
		model.UserBalanceModel{},
		model.BalanceTransactionModel{},
		model.BookTransferModel{},
		model.UserLocationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
