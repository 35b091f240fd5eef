package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

type Sale struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	// Received/change hanya terisi untuk pembayaran cash
	ReceivedAmount decimal.NullDecimal `json:"received_amount"`
	ChangeAmount   decimal.NullDecimal `json:"change_amount"`
}

type SaleItem struct {
	ID        int64           `json:"id"`
	SaleID    int64           `json:"-"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // snapshot harga saat transaksi, bukan harga produk sekarang
}

// SaleSummary adalah baris untuk layar riwayat penjualan: sale plus nama produk
// dan quantity yang digabung posisional (GROUP_CONCAT), hanya untuk display.
type SaleSummary struct {
	Sale
	Products   string `json:"products"`
	Quantities string `json:"quantities"`
}

type CreateSaleItemRequest struct {
	ProductID int64           `json:"id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// Payload dari payment modal. Total dan change dihitung oleh kasir (shell);
// engine mempercayainya apa adanya.
type CreateSaleRequest struct {
	Total          decimal.Decimal         `json:"total"`
	PaymentMethod  PaymentMethod           `json:"payment_method" binding:"required"`
	ReceivedAmount *decimal.Decimal        `json:"received_amount"`
	Change         *decimal.Decimal        `json:"change"`
	Items          []CreateSaleItemRequest `json:"items" binding:"required,dive"`
}

type CreateSaleResponse struct {
	Sale
}
