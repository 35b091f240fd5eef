package mocks

import (
	"context"
	"time"

	"github.com/ridloal/pos-desktop/internal/pos/domain"
	"github.com/stretchr/testify/mock"
)

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) CreateSaleWithItems(ctx context.Context, sale *domain.Sale, items []domain.SaleItem) error {
	args := m.Called(ctx, sale, items)
	if sale != nil && args.Error(0) == nil {
		sale.ID = 1 // ID dan date diset oleh mock, meniru engine
		sale.Date = time.Now().UTC()
	}
	return args.Error(0)
}

func (m *MockSaleRepository) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]domain.SaleSummary), args.Error(1)
	}
	return nil, args.Error(1)
}
