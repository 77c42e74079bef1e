package postgres

import (
	"context"
	"database/sql"
	"time"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/repository"
)

const purchaseColumns = `purchase_id, owner_id, buyer_id, item_id, status, purchase_price, purchase_date, created_at, updated_at`

type purchaseRepository struct {
	db *sql.DB
}

func NewPurchaseRepository(db *sql.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	p := &domain.Purchase{}
	var purchaseDate sql.NullTime
	err := row.Scan(&p.ID, &p.OwnerID, &p.BuyerID, &p.ItemID, &p.Status, &p.PurchasePrice, &purchaseDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if purchaseDate.Valid {
		formatted := purchaseDate.Time.Format("2006-01-02")
		p.PurchaseDate = &formatted
	}
	return p, nil
}

func (r *purchaseRepository) Create(ctx context.Context, p *domain.Purchase) error {
	query := `INSERT INTO purchases (owner_id, buyer_id, item_id, status, purchase_price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING purchase_id`
	return r.db.QueryRowContext(ctx, query, p.OwnerID, p.BuyerID, p.ItemID, p.Status, p.PurchasePrice, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *purchaseRepository) GetByItemAndID(ctx context.Context, itemID, purchaseID int32) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE item_id = $1 AND purchase_id = $2`
	return scanPurchase(r.db.QueryRowContext(ctx, query, itemID, purchaseID))
}

func (r *purchaseRepository) ListByUser(ctx context.Context, userID string, asOwner bool) ([]domain.Purchase, error) {
	column := "buyer_id"
	if asOwner {
		column = "owner_id"
	}
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE ` + column + ` = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, *p)
	}
	return purchases, rows.Err()
}

func (r *purchaseRepository) UpdateStatus(ctx context.Context, itemID, purchaseID int32, status domain.Status, setPurchaseDate bool) error {
	query := `UPDATE purchases SET status = $1, updated_at = $2 WHERE purchase_id = $3 AND item_id = $4`
	if setPurchaseDate {
		query = `UPDATE purchases SET status = $1, updated_at = $2, purchase_date = NOW() WHERE purchase_id = $3 AND item_id = $4`
	}
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), purchaseID, itemID)
	return err
}
