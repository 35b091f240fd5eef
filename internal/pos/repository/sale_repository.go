package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ridloal/pos-desktop/internal/platform/logger"
	"github.com/ridloal/pos-desktop/internal/pos/domain"
)

type SaleRepository interface {
	CreateSaleWithItems(ctx context.Context, sale *domain.Sale, items []domain.SaleItem) error
	ListSales(ctx context.Context) ([]domain.SaleSummary, error)
}

// Tanggal disimpan sebagai teks UTC dengan milidetik fixed-width supaya
// ORDER BY date tetap benar secara leksikografis.
const saleDateLayout = "2006-01-02 15:04:05.000"

type sqliteSaleRepository struct {
	db *sql.DB
}

func NewSQLiteSaleRepository(db *sql.DB) SaleRepository {
	return &sqliteSaleRepository{db: db}
}

// CreateSaleWithItems menyimpan sale header, item-itemnya, dan pengurangan stok
// dalam satu transaksi. Gagal di langkah mana pun (misal product_id tidak ada)
// berarti rollback total; tidak ada efek parsial yang terlihat.
//
// Catatan: engine tidak memvalidasi quantity <= stok dan tidak menghitung ulang
// total dari item. Kasir (pemanggil) yang bertanggung jawab; stok bisa menjadi
// negatif kalau kasir mengirim quantity melebihi stok.
func (r *sqliteSaleRepository) CreateSaleWithItems(ctx context.Context, sale *domain.Sale, items []domain.SaleItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("CreateSaleWithItems: failed to begin tx", err)
		return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}
	defer tx.Rollback() // Rollback jika tidak di-commit

	// 1. Simpan sale header
	sale.Date = time.Now().UTC().Truncate(time.Millisecond)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO sales (date, total, payment_method, received_amount, change_amount)
         VALUES (?, ?, ?, ?, ?)`,
		sale.Date.Format(saleDateLayout), sale.Total, sale.PaymentMethod, sale.ReceivedAmount, sale.ChangeAmount)
	if err != nil {
		logger.Error("CreateSaleWithItems: failed to insert sale", err)
		return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}
	if sale.ID, err = res.LastInsertId(); err != nil {
		logger.Error("CreateSaleWithItems: failed to read assigned sale id", err)
		return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}

	// 2. Simpan sale items
	itemStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sale_items (sale_id, product_id, quantity, price) VALUES (?, ?, ?, ?)`)
	if err != nil {
		logger.Error("CreateSaleWithItems: failed to prepare item statement", err)
		return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}
	defer itemStmt.Close()

	for i := range items {
		items[i].SaleID = sale.ID
		itemRes, err := itemStmt.ExecContext(ctx, items[i].SaleID, items[i].ProductID, items[i].Quantity, items[i].Price)
		if err != nil {
			if isForeignKeyViolation(err) {
				logger.Error(fmt.Sprintf("CreateSaleWithItems: cart references unknown product %d", items[i].ProductID), err)
			} else {
				logger.Error("CreateSaleWithItems: failed to insert sale item", err)
			}
			return fmt.Errorf("%w: %v", ErrTransactionAborted, err) // Rollback akan terjadi
		}
		if items[i].ID, err = itemRes.LastInsertId(); err != nil {
			logger.Error("CreateSaleWithItems: failed to read assigned item id", err)
			return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
		}

		// 3. Kurangi stok produk, tanpa cek ketersediaan
		upd, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - ? WHERE id = ?`,
			items[i].Quantity, items[i].ProductID)
		if err != nil {
			logger.Error("CreateSaleWithItems: failed to update stock", err)
			return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
		}
		if affected, _ := upd.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: product %d does not exist", ErrTransactionAborted, items[i].ProductID)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("CreateSaleWithItems: commit failed", err)
		return fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}
	return nil
}

// ListSales mengembalikan semua sale, terbaru dulu, dengan nama produk dan
// quantity yang digabung posisional untuk layar riwayat. Read-only.
func (r *sqliteSaleRepository) ListSales(ctx context.Context) ([]domain.SaleSummary, error) {
	query := `
        SELECT s.id, s.date, s.total, s.payment_method, s.received_amount, s.change_amount,
            GROUP_CONCAT(p.name) AS products,
            GROUP_CONCAT(si.quantity) AS quantities
        FROM sales s
        LEFT JOIN sale_items si ON s.id = si.sale_id
        LEFT JOIN products p ON si.product_id = p.id
        GROUP BY s.id
        ORDER BY s.date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListSales: query failed", err)
		return nil, err
	}
	defer rows.Close()

	sales := []domain.SaleSummary{}
	for rows.Next() {
		var s domain.SaleSummary
		var products, quantities sql.NullString
		// Kolom DATETIME dikembalikan driver sebagai time.Time, scan langsung
		if err := rows.Scan(&s.ID, &s.Date, &s.Total, &s.PaymentMethod,
			&s.ReceivedAmount, &s.ChangeAmount, &products, &quantities); err != nil {
			logger.Error("ListSales: scan failed", err)
			return nil, err
		}
		s.Products = products.String
		s.Quantities = quantities.String
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListSales: rows iteration error", err)
		return nil, err
	}
	return sales, nil
}
