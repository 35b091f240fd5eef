package repository

import (
	"context"
	"database/sql"

	"github.com/ridloal/pos-desktop/internal/platform/logger"
	"github.com/ridloal/pos-desktop/internal/pos/domain"
)

type ProductRepository interface {
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)
	SkuExists(ctx context.Context, sku string) (bool, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	ListLowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error)
}

type sqliteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(db *sql.DB) ProductRepository {
	return &sqliteProductRepository{db: db}
}

func (r *sqliteProductRepository) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, sku, price, stock, category, status FROM products WHERE status = 'active'`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListActiveProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *sqliteProductRepository) ListLowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error) {
	query := `SELECT id, name, sku, price, stock, category, status FROM products
              WHERE status = 'active' AND stock <= ?`
	rows, err := r.db.QueryContext(ctx, query, threshold)
	if err != nil {
		logger.Error("ListLowStockProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		var sku, category sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &sku, &p.Price, &p.Stock, &category, &p.Status); err != nil {
			logger.Error("scanProducts: scan failed", err)
			return nil, err
		}
		p.SKU = sku.String
		p.Category = category.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("scanProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

// SkuExists mengecek sku di semua produk, aktif maupun tidak.
func (r *sqliteProductRepository) SkuExists(ctx context.Context, sku string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE sku = ?`, sku).Scan(&count)
	if err != nil {
		logger.Error("SkuExists: query failed", err)
		return false, err
	}
	return count > 0, nil
}

// CreateProduct melakukan pre-check sku lalu insert. Pre-check bukan proteksi
// atomik terhadap insert concurrent; UNIQUE constraint di store adalah penjaga
// terakhir dan pelanggarannya dinormalisasi ke ErrDuplicateSku yang sama.
func (r *sqliteProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.SKU != "" {
		exists, err := r.SkuExists(ctx, product.SKU)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateSku
		}
	}

	if product.Status == "" {
		product.Status = domain.StatusActive // Default
	}

	query := `INSERT INTO products (name, sku, price, stock, category, status)
              VALUES (?, ?, ?, ?, ?, ?)`

	var sku, category sql.NullString
	if product.SKU != "" {
		sku = sql.NullString{String: product.SKU, Valid: true}
	}
	if product.Category != "" {
		category = sql.NullString{String: product.Category, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, product.Name, sku, product.Price, product.Stock, category, product.Status)
	if err != nil {
		if isUniqueViolation(err) {
			// Kalah race dengan insert lain yang lolos pre-check duluan
			return ErrDuplicateSku
		}
		logger.Error("CreateProduct: failed to insert product", err)
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		logger.Error("CreateProduct: failed to read assigned id", err)
		return err
	}
	product.ID = id
	return nil
}
