package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ridloal/pos-desktop/internal/pos/domain"
	"github.com/ridloal/pos-desktop/internal/pos/repository"
	"github.com/ridloal/pos-desktop/internal/pos/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInventoryService_AddProduct(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	// cronSpec kosong: watcher tidak jalan selama unit test
	svc := NewInventoryService(mockRepo, 5, "")
	ctx := context.TODO()

	req := domain.CreateProductRequest{
		Name:     "Widget",
		SKU:      "W1",
		Price:    decimal.NewFromFloat(9.99),
		Stock:    10,
		Category: "misc",
	}

	t.Run("Successful creation", func(t *testing.T) {
		mockRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Name == "Widget" && p.SKU == "W1" && p.Status == domain.StatusActive
		})).Return(nil).Once()

		product, err := svc.AddProduct(ctx, req)
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, int64(1), product.ID) // ID diset oleh mock
		assert.Equal(t, 10, product.Stock)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate sku passes through unchanged", func(t *testing.T) {
		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
			Return(repository.ErrDuplicateSku).Once()

		product, err := svc.AddProduct(ctx, req)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrDuplicateSku)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Negative price is rejected before hitting the store", func(t *testing.T) {
		badReq := req
		badReq.Price = decimal.NewFromFloat(-1)

		product, err := svc.AddProduct(ctx, badReq)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrInvalidProduct)
		mockRepo.AssertNotCalled(t, "CreateProduct")
	})
}

func TestInventoryService_ListProducts(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	svc := NewInventoryService(mockRepo, 5, "")
	ctx := context.TODO()

	t.Run("Returns the repository result", func(t *testing.T) {
		stored := []domain.Product{
			{ID: 1, Name: "Widget", SKU: "W1", Stock: 10, Status: domain.StatusActive},
		}
		mockRepo.On("ListActiveProducts", ctx).Return(stored, nil).Once()

		products, err := svc.ListProducts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, stored, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		repoErr := errors.New("disk I/O error")
		mockRepo.On("ListActiveProducts", ctx).Return(nil, repoErr).Once()

		products, err := svc.ListProducts(ctx)
		assert.Nil(t, products)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}

func TestInventoryService_CheckSku(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	svc := NewInventoryService(mockRepo, 5, "")
	ctx := context.TODO()

	mockRepo.On("SkuExists", ctx, "W1").Return(true, nil).Once()
	mockRepo.On("SkuExists", ctx, "NOPE").Return(false, nil).Once()

	exists, err := svc.CheckSku(ctx, "W1")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.CheckSku(ctx, "NOPE")
	assert.NoError(t, err)
	assert.False(t, exists)
	mockRepo.AssertExpectations(t)
}
