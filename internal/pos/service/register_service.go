package service

import (
	"context"
	"errors"

	"github.com/ridloal/pos-desktop/internal/platform/logger"
	"github.com/ridloal/pos-desktop/internal/pos/domain"
	"github.com/ridloal/pos-desktop/internal/pos/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart            = errors.New("sale must contain at least one item")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)

type RegisterService interface {
	CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.SaleSummary, error)
}

type registerServiceImpl struct {
	saleRepo repository.SaleRepository
}

func NewRegisterService(saleRepo repository.SaleRepository) RegisterService {
	return &registerServiceImpl{saleRepo: saleRepo}
}

// CreateSale mencatat satu transaksi kasir. Total dan change dari payment modal
// dipercaya apa adanya; engine tidak menghitung ulang dan tidak mengecek stok.
func (s *registerServiceImpl) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.Sale, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.PaymentMethod != domain.PaymentCash && req.PaymentMethod != domain.PaymentCard {
		return nil, ErrInvalidPaymentMethod
	}

	sale := &domain.Sale{
		Total:          req.Total,
		PaymentMethod:  req.PaymentMethod,
		ReceivedAmount: nullDecimalFrom(req.ReceivedAmount),
		ChangeAmount:   nullDecimalFrom(req.Change),
	}

	items := make([]domain.SaleItem, len(req.Items))
	for i, itemReq := range req.Items {
		items[i] = domain.SaleItem{
			ProductID: itemReq.ProductID,
			Quantity:  itemReq.Quantity,
			Price:     itemReq.Price, // snapshot harga dari cart
		}
	}

	if err := s.saleRepo.CreateSaleWithItems(ctx, sale, items); err != nil {
		logger.Error("CreateSale: failed to record sale", err)
		return nil, err
	}
	return sale, nil
}

func (s *registerServiceImpl) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	return s.saleRepo.ListSales(ctx)
}

func nullDecimalFrom(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
