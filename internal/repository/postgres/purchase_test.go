package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var purchaseRows = []string{"purchase_id", "owner_id", "buyer_id", "item_id", "status", "purchase_price", "purchase_date", "created_at", "updated_at"}

func TestPurchaseRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPurchaseRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		purchase := &domain.Purchase{
			OwnerID:       "owner1",
			BuyerID:       "buyer1",
			ItemID:        7,
			Status:        domain.StatusOffered,
			PurchasePrice: 250,
		}

		mock.ExpectQuery("INSERT INTO purchases").
			WithArgs(purchase.OwnerID, purchase.BuyerID, purchase.ItemID, purchase.Status, purchase.PurchasePrice, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"purchase_id"}).AddRow(4))

		err := repo.Create(ctx, purchase)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), purchase.ID)
	})
}

func TestPurchaseRepository_GetByItemAndID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPurchaseRepository(db)
	ctx := context.Background()

	t.Run("Pending purchase has no purchase date", func(t *testing.T) {
		rows := sqlmock.NewRows(purchaseRows).
			AddRow(4, "owner1", "buyer1", 7, "offered", 250.0, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM purchases WHERE item_id = \\$1 AND purchase_id = \\$2").
			WithArgs(int32(7), int32(4)).
			WillReturnRows(rows)

		purchase, err := repo.GetByItemAndID(ctx, 7, 4)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), purchase.ID)
		assert.Equal(t, domain.StatusOffered, purchase.Status)
		assert.Nil(t, purchase.PurchaseDate)
	})

	t.Run("Sold purchase carries the formatted date", func(t *testing.T) {
		purchaseDate := time.Date(2024, 4, 12, 15, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows(purchaseRows).
			AddRow(4, "owner1", "buyer1", 7, "sold", 250.0, purchaseDate, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM purchases WHERE item_id = \\$1 AND purchase_id = \\$2").
			WithArgs(int32(7), int32(4)).
			WillReturnRows(rows)

		purchase, err := repo.GetByItemAndID(ctx, 7, 4)
		assert.NoError(t, err)
		assert.NotNil(t, purchase.PurchaseDate)
		assert.Equal(t, "2024-04-12", *purchase.PurchaseDate)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM purchases WHERE item_id = \\$1 AND purchase_id = \\$2").
			WithArgs(int32(7), int32(99)).
			WillReturnError(sql.ErrNoRows)

		purchase, err := repo.GetByItemAndID(ctx, 7, 99)
		assert.Nil(t, purchase)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestPurchaseRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPurchaseRepository(db)
	ctx := context.Background()

	t.Run("As buyer", func(t *testing.T) {
		rows := sqlmock.NewRows(purchaseRows).
			AddRow(1, "owner1", "buyer1", 7, "offered", 250.0, nil, time.Now(), time.Now()).
			AddRow(2, "owner2", "buyer1", 8, "sold", 90.0, time.Now(), time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM purchases WHERE buyer_id = \\$1").
			WithArgs("buyer1").
			WillReturnRows(rows)

		purchases, err := repo.ListByUser(ctx, "buyer1", false)
		assert.NoError(t, err)
		assert.Len(t, purchases, 2)
	})

	t.Run("As owner", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM purchases WHERE owner_id = \\$1").
			WithArgs("owner1").
			WillReturnRows(sqlmock.NewRows(purchaseRows))

		purchases, err := repo.ListByUser(ctx, "owner1", true)
		assert.NoError(t, err)
		assert.Empty(t, purchases)
	})
}

func TestPurchaseRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPurchaseRepository(db)
	ctx := context.Background()

	t.Run("Without purchase date", func(t *testing.T) {
		mock.ExpectExec("UPDATE purchases SET status = \\$1, updated_at = \\$2 WHERE purchase_id = \\$3 AND item_id = \\$4").
			WithArgs(domain.StatusConfirmed, sqlmock.AnyArg(), int32(4), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 7, 4, domain.StatusConfirmed, false)
		assert.NoError(t, err)
	})

	t.Run("Completing stamps purchase_date", func(t *testing.T) {
		mock.ExpectExec("UPDATE purchases SET status = \\$1, updated_at = \\$2, purchase_date = NOW\\(\\) WHERE purchase_id = \\$3 AND item_id = \\$4").
			WithArgs(domain.StatusSold, sqlmock.AnyArg(), int32(4), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 7, 4, domain.StatusSold, true)
		assert.NoError(t, err)
	})
}
