package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned whenever a resource, or any ancestor named in its
	// path, cannot be resolved. Callers cannot tell a missing id from an id that
	// belongs to a different parent.
	ErrNotFound = errors.New("not found")

	// ErrProtected is returned when deleting a resource that other resources still reference
	ErrProtected = errors.New("resource is still referenced")
)

// ValidationError collects field-level problems with a request. Nothing is
// written when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// FieldError builds a ValidationError with a single field message
func FieldError(field, message string) *ValidationError {
	v := NewValidationError()
	v.Add(field, message)
	return v
}

// Add records a message for field, keeping the first one reported
func (v *ValidationError) Add(field, message string) {
	if _, exists := v.Fields[field]; !exists {
		v.Fields[field] = message
	}
}

func (v *ValidationError) Empty() bool {
	return len(v.Fields) == 0
}

// OrNil returns v as an error only when it holds at least one field
func (v *ValidationError) OrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v.Fields[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// protectedError names the relation that blocked a delete
func protectedError(resource, dependents string) error {
	return fmt.Errorf("%w: %s is referenced by %s", ErrProtected, resource, dependents)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// translateWriteError maps store constraint failures on create/update to the
// same errors the application-level checks produce.
func translateWriteError(err error, uniqueField string) error {
	switch {
	case err == nil:
		return nil
	case isDuplicateKey(err):
		return FieldError(uniqueField, "already exists")
	case isForeignKeyViolation(err):
		return FieldError(uniqueField, "references a resource that does not exist")
	default:
		return err
	}
}

// translateDeleteError maps a store-level foreign key failure on delete to ErrProtected
func translateDeleteError(err error, resource string) error {
	if err != nil && isForeignKeyViolation(err) {
		return protectedError(resource, "other resources")
	}
	return err
}
