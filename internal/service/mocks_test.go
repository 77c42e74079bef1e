package service_test

import (
	"context"

	"irentstuff-transactions/internal/client"
	"irentstuff-transactions/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRentalRepo) GetByItemAndID(ctx context.Context, itemID, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, itemID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByItem(ctx context.Context, itemID int32, latestOnly bool) ([]domain.Rental, error) {
	args := m.Called(ctx, itemID, latestOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListConflicting(ctx context.Context, itemID int32, excluded []domain.Status) ([]domain.Rental, error) {
	args := m.Called(ctx, itemID, excluded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByUser(ctx context.Context, userID string, asOwner bool) ([]domain.Rental, error) {
	args := m.Called(ctx, userID, asOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) UpdateStatus(ctx context.Context, itemID, rentalID int32, status domain.Status) error {
	args := m.Called(ctx, itemID, rentalID, status)
	return args.Error(0)
}

type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) Create(ctx context.Context, p *domain.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepo) GetByItemAndID(ctx context.Context, itemID, purchaseID int32) (*domain.Purchase, error) {
	args := m.Called(ctx, itemID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) ListByUser(ctx context.Context, userID string, asOwner bool) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID, asOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) UpdateStatus(ctx context.Context, itemID, purchaseID int32, status domain.Status, setPurchaseDate bool) error {
	args := m.Called(ctx, itemID, purchaseID, status, setPurchaseDate)
	return args.Error(0)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type MockItemsGateway struct {
	mock.Mock
}

func (m *MockItemsGateway) GetItem(ctx context.Context, itemID int32) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemsGateway) UpdateAvailability(ctx context.Context, token string, itemID int32, availability domain.Availability) error {
	args := m.Called(ctx, token, itemID, availability)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, token string, msg *client.AdminMessage) error {
	args := m.Called(ctx, token, msg)
	return args.Error(0)
}
