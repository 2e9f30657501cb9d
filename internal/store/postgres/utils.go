package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func applyPagination(db *gorm.DB, size, offset int) *gorm.DB {
	if size > 0 {
		db = db.Limit(size)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}
