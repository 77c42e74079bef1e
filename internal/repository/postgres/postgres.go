package postgres

import (
	"database/sql"

	"irentstuff-transactions/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.PurchaseRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		RentalRepository:   NewRentalRepository(db),
		PurchaseRepository: NewPurchaseRepository(db),
	}
}
