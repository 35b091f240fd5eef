package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Skema mengikuti layout file pos.db yang sama antara mode development dan
// production: tiga tabel, sku unik, foreign key dari sale_items.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		sku TEXT UNIQUE,
		price DECIMAL(10,2) NOT NULL,
		stock INTEGER NOT NULL,
		category TEXT,
		status TEXT DEFAULT 'active'
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date DATETIME DEFAULT CURRENT_TIMESTAMP,
		total DECIMAL(10,2) NOT NULL,
		payment_method TEXT NOT NULL,
		received_amount DECIMAL(10,2),
		change_amount DECIMAL(10,2)
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sale_id INTEGER,
		product_id INTEGER,
		quantity INTEGER NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (sale_id) REFERENCES sales(id),
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`,
}

// EnsureSchema membuat tabel jika belum ada. Idempotent, dipanggil setiap
// startup; data yang sudah ada tidak disentuh.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
