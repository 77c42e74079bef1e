package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/repository"
)

const rentalColumns = `rental_id, owner_id, renter_id, item_id, start_date, end_date, status, price_per_day, deposit, created_at, updated_at`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var start, end time.Time
	err := row.Scan(&rt.ID, &rt.OwnerID, &rt.RenterID, &rt.ItemID, &start, &end, &rt.Status, &rt.PricePerDay, &rt.Deposit, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rt.StartDate = start.Format("2006-01-02")
	rt.EndDate = end.Format("2006-01-02")
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (owner_id, renter_id, item_id, start_date, end_date, status, price_per_day, deposit, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING rental_id`
	return r.db.QueryRowContext(ctx, query, rt.OwnerID, rt.RenterID, rt.ItemID, rt.StartDate, rt.EndDate, rt.Status, rt.PricePerDay, rt.Deposit, time.Now(), time.Now()).Scan(&rt.ID)
}

func (r *rentalRepository) GetByItemAndID(ctx context.Context, itemID, rentalID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE item_id = $1 AND rental_id = $2`
	return scanRental(r.db.QueryRowContext(ctx, query, itemID, rentalID))
}

func (r *rentalRepository) ListByItem(ctx context.Context, itemID int32, latestOnly bool) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE item_id = $1`
	if latestOnly {
		query += ` ORDER BY created_at DESC LIMIT 1`
	}
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) ListConflicting(ctx context.Context, itemID int32, excluded []domain.Status) ([]domain.Rental, error) {
	placeholders := make([]string, len(excluded))
	args := []interface{}{itemID}
	for i, status := range excluded {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, status)
	}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE item_id = $1 AND status NOT IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID string, asOwner bool) ([]domain.Rental, error) {
	column := "renter_id"
	if asOwner {
		column = "owner_id"
	}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE ` + column + ` = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, itemID, rentalID int32, status domain.Status) error {
	query := `UPDATE rentals SET status = $1, updated_at = $2 WHERE rental_id = $3 AND item_id = $4`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), rentalID, itemID)
	return err
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
