package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

// Op tells the translator which statement failed; a foreign-key violation means
// "missing parent" on write but "still referenced" on delete.
type Op string

const (
	OpSelect Op = "select"
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// StorageError is the driver-neutral view of a Postgres error.
type StorageError struct {
	Op         Op
	Code       string // SQLSTATE
	Constraint string
	Column     string
	Table      string
	Detail     string
}

type sqlState struct {
	kind    domain.ErrKind
	code    string
	message string
	field   string
}

// SQLSTATE -> application error. Read-only after init.
var sqlStates = map[string]sqlState{
	"23505": {domain.KindConflict, "unique_violation", "Unique constraint failed", ""},
	"23502": {domain.KindValidation, "not_null_violation", "Null constraint violation", ""},
	"23514": {domain.KindValidation, "check_violation", "Value out of allowed range", ""},
	"22001": {domain.KindValidation, "value_too_long", "The provided value for the column is too long", ""},
	"22003": {domain.KindValidation, "numeric_out_of_range", "Numeric value out of range", ""},
	"22P02": {domain.KindValidation, "invalid_value", "Invalid value for the column type", ""},
	"22007": {domain.KindValidation, "invalid_datetime", "Invalid datetime format", ""},
	"22008": {domain.KindValidation, "datetime_overflow", "Datetime field overflow", ""},
	"40001": {domain.KindConflict, "serialization_failure", "Transaction conflict, please retry", ""},
	"40P01": {domain.KindConflict, "deadlock_detected", "Transaction conflict, please retry", ""},
	"53300": {domain.KindInfrastructure, "too_many_connections", "Too many database connections opened", ""},
	"57P01": {domain.KindInfrastructure, "database_unavailable", "Database server is shutting down", ""},
	"57014": {domain.KindInternal, "query_canceled", "Operation timed out", ""},
	"42P01": {domain.KindInternal, "undefined_table", "The table does not exist in the current database", ""},
	"42703": {domain.KindInternal, "undefined_column", "The column does not exist in the current database", ""},
	"28P01": {domain.KindInfrastructure, "authentication_failed", "Authentication failed against database server", ""},
	"3D000": {domain.KindInfrastructure, "database_not_found", "Database does not exist", ""},
}

// SQLSTATE class fallbacks (first two chars) for codes not listed above.
var sqlStateClasses = map[string]sqlState{
	"08": {domain.KindInfrastructure, "connection_error", "Can't reach database server", ""},
	"22": {domain.KindValidation, "data_exception", "Invalid data for the column", ""},
	"23": {domain.KindConflict, "integrity_violation", "Integrity constraint violated", ""},
	"53": {domain.KindInfrastructure, "insufficient_resources", "Database is out of resources", ""},
}

// Named unique constraints that deserve their own message.
var uniqueConstraints = map[string]sqlState{
	"users_username_key":    {domain.KindConflict, "username_taken", "Username already exists", "username"},
	"users_email_key":       {domain.KindConflict, "email_taken", "Email already exists", "email"},
	"categories_name_key":   {domain.KindConflict, "category_exists", "Category already exists", "name"},
	"participants_pkey":     {domain.KindConflict, "already_participating", "User is already participating in this event", "event_id"},
	"event_categories_pkey": {domain.KindConflict, "category_already_linked", "Category already linked to event", "categories"},
}

var (
	fkOnWrite  = sqlState{domain.KindValidation, "reference_not_found", "Foreign key constraint failed, referenced record does not exist", ""}
	fkOnDelete = sqlState{domain.KindConflict, "foreign_key_violation", "Foreign key constraint failed, record is still referenced", ""}
	unknown    = sqlState{domain.KindInternal, "storage_error", "internal error", ""}
)

func lookup(se StorageError) (sqlState, bool) {
	if se.Code == "23505" {
		if s, ok := uniqueConstraints[se.Constraint]; ok {
			return s, true
		}
	}
	if se.Code == "23503" {
		if se.Op == OpDelete {
			return fkOnDelete, false
		}
		return fkOnWrite, false
	}
	if s, ok := sqlStates[se.Code]; ok {
		return s, false
	}
	if len(se.Code) == 5 {
		if s, ok := sqlStateClasses[se.Code[:2]]; ok {
			return s, false
		}
	}
	return unknown, false
}

// Translate maps a storage error to the application taxonomy. It is pure: the
// same input always yields an equal output and nothing is logged or mutated.
func Translate(se StorageError) *domain.Error {
	s, exact := lookup(se)

	msg := s.message
	target := se.Constraint
	if target == "" {
		target = se.Column
	}
	if !exact && target != "" && s.kind != domain.KindInternal {
		msg = msg + " : " + target
	}

	out := domain.New(s.kind, s.code, msg)
	if s.kind == domain.KindInternal {
		// never leak schema details on 5xx
		return out
	}

	meta := map[string]string{}
	if s.field != "" {
		meta["field"] = s.field
	}
	if se.Constraint != "" {
		meta["constraint"] = se.Constraint
	}
	if se.Column != "" {
		meta["column"] = se.Column
	}
	if se.Table != "" {
		meta["table"] = se.Table
	}
	if len(meta) > 0 {
		out.Meta = meta
	}
	return out
}

// AsStorageError extracts the SQLSTATE view from either driver's error type.
func AsStorageError(op Op, err error) (StorageError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return StorageError{
			Op:         op,
			Code:       pgErr.Code,
			Constraint: pgErr.ConstraintName,
			Column:     pgErr.ColumnName,
			Table:      pgErr.TableName,
			Detail:     pgErr.Detail,
		}, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return StorageError{
			Op:         op,
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Column:     pqErr.Column,
			Table:      pqErr.Table,
			Detail:     pqErr.Detail,
		}, true
	}
	return StorageError{}, false
}

// MapError is what every repository method returns through.
func MapError(op Op, entity string, err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound(entity)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.Wrap(domain.KindInfrastructure, "storage_timeout", "database operation timed out", err)
	}
	if se, ok := AsStorageError(op, err); ok {
		out := Translate(se)
		out.Cause = err
		return out
	}
	return domain.ErrInternal(err)
}
