// Package sqlerr specifically handles database driver errors.
//
// It classifies raw Postgres errors by SQLSTATE, defines the outcomes a
// repository call can end in (not found, storage failure) and converts
// them into user-friendly HTTP errors.
package sqlerr

import "strings"

// Code is a coarse category for a Postgres SQLSTATE.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	SyntaxError         Code = "syntax_error"
	InvalidInput        Code = "invalid_text_representation"
	ConnectionFailure   Code = "connection_failure"
	QueryCanceled       Code = "query_canceled"
)

// Severity mirrors the Postgres message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized Postgres error.
//
// DatabaseCode keeps the raw SQLSTATE; Code is the mapped category.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return e.Severity.String() + ": " + e.Message + " (SQLSTATE " + e.DatabaseCode + ")"
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}

func (s Severity) String() string {
	return string(s)
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "42601":
		return SyntaxError
	case "22P02":
		return InvalidInput
	case "57014":
		return QueryCanceled
	}

	// Class 08 is "connection exception".
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionFailure
	}

	return Other
}

// MapSeverity maps the Postgres severity string to a Severity.
// Unknown values are treated as errors.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	}
	return SeverityError
}
