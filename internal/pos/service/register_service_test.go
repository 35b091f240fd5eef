package service

import (
	"context"
	"testing"

	"github.com/ridloal/pos-desktop/internal/pos/domain"
	"github.com/ridloal/pos-desktop/internal/pos/repository"
	"github.com/ridloal/pos-desktop/internal/pos/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterService_CreateSale(t *testing.T) {
	mockRepo := new(mocks.MockSaleRepository)
	svc := NewRegisterService(mockRepo)
	ctx := context.TODO()

	received := decimal.NewFromFloat(20)
	change := decimal.NewFromFloat(0.02)
	req := domain.CreateSaleRequest{
		Total:          decimal.NewFromFloat(19.98),
		PaymentMethod:  domain.PaymentCash,
		ReceivedAmount: &received,
		Change:         &change,
		Items: []domain.CreateSaleItemRequest{
			{ProductID: 1, Quantity: 2, Price: decimal.NewFromFloat(9.99)},
		},
	}

	t.Run("Successful cash sale", func(t *testing.T) {
		mockRepo.On("CreateSaleWithItems", ctx,
			mock.MatchedBy(func(s *domain.Sale) bool {
				return s.Total.Equal(req.Total) &&
					s.PaymentMethod == domain.PaymentCash &&
					s.ReceivedAmount.Valid && s.ReceivedAmount.Decimal.Equal(received) &&
					s.ChangeAmount.Valid && s.ChangeAmount.Decimal.Equal(change)
			}),
			mock.MatchedBy(func(items []domain.SaleItem) bool {
				return len(items) == 1 && items[0].ProductID == 1 && items[0].Quantity == 2
			}),
		).Return(nil).Once()

		sale, err := svc.CreateSale(ctx, req)
		assert.NoError(t, err)
		assert.NotNil(t, sale)
		assert.Equal(t, int64(1), sale.ID) // ID dari mock
		assert.False(t, sale.Date.IsZero())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Card sale leaves received and change empty", func(t *testing.T) {
		cardReq := req
		cardReq.PaymentMethod = domain.PaymentCard
		cardReq.ReceivedAmount = nil
		cardReq.Change = nil

		mockRepo.On("CreateSaleWithItems", ctx,
			mock.MatchedBy(func(s *domain.Sale) bool {
				return s.PaymentMethod == domain.PaymentCard &&
					!s.ReceivedAmount.Valid && !s.ChangeAmount.Valid
			}),
			mock.AnythingOfType("[]domain.SaleItem"),
		).Return(nil).Once()

		sale, err := svc.CreateSale(ctx, cardReq)
		assert.NoError(t, err)
		assert.NotNil(t, sale)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty cart is rejected", func(t *testing.T) {
		emptyReq := req
		emptyReq.Items = nil

		sale, err := svc.CreateSale(ctx, emptyReq)
		assert.Nil(t, sale)
		assert.ErrorIs(t, err, ErrEmptyCart)
		mockRepo.AssertNotCalled(t, "CreateSaleWithItems")
	})

	t.Run("Unknown payment method is rejected", func(t *testing.T) {
		badReq := req
		badReq.PaymentMethod = "crypto"

		sale, err := svc.CreateSale(ctx, badReq)
		assert.Nil(t, sale)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
		mockRepo.AssertNotCalled(t, "CreateSaleWithItems")
	})

	t.Run("Aborted transaction passes through for the handler to map", func(t *testing.T) {
		mockRepo.On("CreateSaleWithItems", ctx,
			mock.AnythingOfType("*domain.Sale"),
			mock.AnythingOfType("[]domain.SaleItem"),
		).Return(repository.ErrTransactionAborted).Once()

		sale, err := svc.CreateSale(ctx, req)
		assert.Nil(t, sale)
		assert.ErrorIs(t, err, repository.ErrTransactionAborted)
		mockRepo.AssertExpectations(t)
	})
}

func TestRegisterService_ListSales(t *testing.T) {
	mockRepo := new(mocks.MockSaleRepository)
	svc := NewRegisterService(mockRepo)
	ctx := context.TODO()

	stored := []domain.SaleSummary{
		{Sale: domain.Sale{ID: 2, PaymentMethod: domain.PaymentCash}, Products: "Widget", Quantities: "2"},
		{Sale: domain.Sale{ID: 1, PaymentMethod: domain.PaymentCard}, Products: "Gadget", Quantities: "1"},
	}
	mockRepo.On("ListSales", ctx).Return(stored, nil).Once()

	sales, err := svc.ListSales(ctx)
	assert.NoError(t, err)
	assert.Equal(t, stored, sales)
	mockRepo.AssertExpectations(t)
}
