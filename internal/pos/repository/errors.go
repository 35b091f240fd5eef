package repository

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicateSku dikembalikan add-product, baik dari pre-check maupun dari
	// pelanggaran UNIQUE constraint di store. Dua jalur, satu error.
	ErrDuplicateSku = errors.New("a product with this sku already exists")

	// ErrTransactionAborted: create-sale gagal di tengah jalan dan sudah di-rollback
	// seluruhnya, tidak ada state parsial yang tersisa.
	ErrTransactionAborted = errors.New("sale transaction aborted and rolled back")
)

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}
