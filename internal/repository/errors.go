package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"fyyur/internal/database"
	"fyyur/internal/domain"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translate maps driver and ORM failures onto domain error kinds. Anything it
// does not recognise is wrapped as-is and treated as an internal fault upstream.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConflict) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation || pgErr.Code == pgUniqueViolation
	}
	s := err.Error()
	return strings.Contains(s, "FOREIGN KEY constraint failed") ||
		strings.Contains(s, "UNIQUE constraint failed")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere. Case folding
// happens in SQL on both sides, see nameContains.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// nameContains folds the column and the pattern the same way. PostgreSQL's
// LOWER is Unicode aware; on SQLite the registered fold function is used.
func nameContains(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return `LOWER(name) LIKE LOWER(?) ESCAPE '\'`
	}
	return database.FoldFunc + `(name) LIKE ` + database.FoldFunc + `(?) ESCAPE '\'`
}
