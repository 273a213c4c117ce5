package infra

import (
	"context"
	"errors"
	"strings"

	"booking-ops-portal/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

// WrapRepoErr classifies err by its PostgreSQL error code and wraps it.
func WrapRepoErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	return RepositoryError{Kind: Classify(err), msg: msg, err: errs.Wrap(err, msg)}
}

// WrapKind wraps err under a caller-chosen kind, for failures that do not come from PostgreSQL.
func WrapKind(kind RepositoryErrorKind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return RepositoryError{Kind: kind, msg: msg, err: errs.Wrap(err, msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindUndefinedFunction  RepositoryErrorKind = "UNDEFINED_FUNCTION"
	KindSchemaHazard       RepositoryErrorKind = "SCHEMA_HAZARD"
	KindPermissionDenied   RepositoryErrorKind = "PERMISSION_DENIED"
	KindTimeout            RepositoryErrorKind = "TIMEOUT"
	KindRemoteFailure      RepositoryErrorKind = "REMOTE_FAILURE"
)

const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUndefinedColumn     = "42703"
	pgCodeUndefinedTable      = "42P01"
	pgCodeUndefinedFunction   = "42883"
	pgCodeInsufficientPriv    = "42501"
	pgCodeQueryCanceled       = "57014"
)

// Historically a view/policy referenced a removed "venue" column; the backend
// then surfaces the error with varying codes, so the message is checked too.
const schemaHazardMarker = "venue"

func Classify(err error) RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		if strings.Contains(strings.ToLower(err.Error()), schemaHazardMarker) {
			return KindSchemaHazard
		}
		return KindDBFailure
	}

	switch pgErr.Code {
	case pgCodeUniqueViolation:
		return KindDuplicateKey
	case pgCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgCodeUndefinedFunction:
		return KindUndefinedFunction
	case pgCodeUndefinedColumn, pgCodeUndefinedTable:
		return KindSchemaHazard
	case pgCodeInsufficientPriv:
		return KindPermissionDenied
	case pgCodeQueryCanceled:
		return KindTimeout
	}
	if strings.Contains(strings.ToLower(pgErr.Message), schemaHazardMarker) {
		return KindSchemaHazard
	}
	return KindDBFailure
}

// IsProcedureMissingMessage recognizes the "function not found" answers some
// backends return in-band instead of raising 42883.
func IsProcedureMissingMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "function") && (strings.Contains(m, "not found") || strings.Contains(m, "does not exist"))
}
