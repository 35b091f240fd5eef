package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // embedded SQLite driver
)

const busyTimeoutMs = 5000

// Connect membuka file database sqlite lokal.
// foreign_keys harus ON supaya sale_items benar-benar menolak product_id yang
// tidak ada. Pool dibatasi satu koneksi: satu proses, satu writer.
func Connect(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", path, busyTimeoutMs)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.Ping(); err != nil {
		db.Close() // Close connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully opened the database at " + path)
	return db, nil
}
