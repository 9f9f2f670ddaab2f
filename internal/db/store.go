package db

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/PayRam/go-jobly/errors"
	"github.com/PayRam/go-jobly/internal/sqlgen"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Store executes parameterized statements. Args are always bound, never
// interpolated into the SQL text.
type Store interface {
	// Query runs a row-returning statement and scans the rows into dest.
	// It returns the number of rows scanned.
	Query(ctx context.Context, dest interface{}, query *sqlgen.Query) (int64, error)
	// Exec runs a statement and returns the number of rows affected.
	Exec(ctx context.Context, query *sqlgen.Query) (int64, error)
}

type gormStore struct {
	DB *gorm.DB
}

var _ Store = &gormStore{}

func NewStore(db *gorm.DB) Store {
	return &gormStore{DB: db}
}

func (s *gormStore) Query(ctx context.Context, dest interface{}, query *sqlgen.Query) (int64, error) {
	tx := s.DB.WithContext(ctx).Raw(query.SQL, query.Args...).Scan(dest)
	if tx.Error != nil {
		return 0, classify(tx.Error)
	}
	return tx.RowsAffected, nil
}

func (s *gormStore) Exec(ctx context.Context, query *sqlgen.Query) (int64, error) {
	tx := s.DB.WithContext(ctx).Exec(query.SQL, query.Args...)
	if tx.Error != nil {
		return 0, classify(tx.Error)
	}
	return tx.RowsAffected, nil
}

// classify turns driver constraint failures into ConstraintErrors and passes
// everything else through.
func classify(err error) error {
	if kind, ok := constraintKind(err); ok {
		return apperrors.NewConstraintError(kind, err)
	}
	return err
}

func constraintKind(err error) (apperrors.ConstraintKind, bool) {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Unique, true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ForeignKey, true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return apperrors.Unique, true
		case sqlite3.ErrConstraintForeignKey:
			return apperrors.ForeignKey, true
		case sqlite3.ErrConstraintNotNull:
			return apperrors.NotNull, true
		default:
			return apperrors.Check, true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		switch pgErr.Code {
		case "23505":
			return apperrors.Unique, true
		case "23503":
			return apperrors.ForeignKey, true
		case "23502":
			return apperrors.NotNull, true
		default:
			return apperrors.Check, true
		}
	}

	return "", false
}
