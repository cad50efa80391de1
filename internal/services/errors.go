package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNoSuchJobReference is returned by Submit when the EOI names a listing that does not exist.
	ErrNoSuchJobReference = errors.New("no such job reference")
	ErrInvalidCredentials = errors.New("invalid user name or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrUserExists         = errors.New("user already exists")
)

const pgForeignKeyViolation = "23503"

// isForeignKeyViolation recognises a missing parent row across both dialects.
// TranslateError covers most cases; the driver errors are checked in case the
// dialect leaves them untranslated.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
