package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridloal/pos-desktop/internal/platform/logger"
	"github.com/ridloal/pos-desktop/internal/pos/domain"
	"github.com/ridloal/pos-desktop/internal/pos/repository"
	"github.com/robfig/cron/v3"
)

var ErrInvalidProduct = errors.New("invalid product data")

type InventoryService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AddProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	CheckSku(ctx context.Context, sku string) (bool, error)
}

type inventoryServiceImpl struct {
	repo              repository.ProductRepository
	scheduler         *cron.Cron
	lowStockThreshold int
}

// NewInventoryService membuat service inventory. cronSpec kosong menonaktifkan
// low-stock watcher (dipakai di unit test).
func NewInventoryService(repo repository.ProductRepository, lowStockThreshold int, cronSpec string) InventoryService {
	s := &inventoryServiceImpl{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
	}
	if cronSpec != "" {
		s.initScheduler(cronSpec)
	}
	return s
}

func (s *inventoryServiceImpl) initScheduler(spec string) {
	s.scheduler = cron.New(cron.WithSeconds())
	s.scheduler.AddFunc(spec, func() {
		// context.Background() karena ini background job
		s.reportLowStock(context.Background())
	})
	s.scheduler.Start()
	logger.Info(fmt.Sprintf("Low stock watcher initialized with spec '%s' and threshold %d", spec, s.lowStockThreshold))
}

// reportLowStock menulis peringatan untuk produk aktif yang stoknya sudah di
// bawah ambang. Hanya logging; layar inventory tetap sumber kebenaran kasir.
func (s *inventoryServiceImpl) reportLowStock(ctx context.Context) {
	products, err := s.repo.ListLowStockProducts(ctx, s.lowStockThreshold)
	if err != nil {
		logger.Error("reportLowStock: failed to list low stock products", err)
		return
	}
	for _, p := range products {
		logger.Warn(fmt.Sprintf("Low stock: product %q (sku %s) has %d left", p.Name, p.SKU, p.Stock))
	}
}

func (s *inventoryServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListActiveProducts(ctx)
}

func (s *inventoryServiceImpl) AddProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}

	product := &domain.Product{
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Status:   domain.StatusActive,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if !errors.Is(err, repository.ErrDuplicateSku) {
			logger.Error("AddProduct: failed to create product", err)
		}
		return nil, err
	}
	return product, nil
}

func (s *inventoryServiceImpl) CheckSku(ctx context.Context, sku string) (bool, error) {
	return s.repo.SkuExists(ctx, sku)
}
