// Package repository handles all interactions with the database.
//
// Every operation builds one statement with its bound values, runs it
// through an Executor and maps the column-keyed rows to model records.
// Outcomes are uniform:
//   - single-row lookups return sqlerr.ErrNotFound on zero rows
//   - listings return an empty, non-nil slice on zero rows
//   - inserts return the stored row, including its generated id
//   - executor faults are returned as *sqlerr.StorageError
package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

// Row is one result row keyed by column name.
type Row = map[string]any

// Executor runs a statement against its ordered bound values.
//
// *database.Database is the production implementation.
type Executor interface {
	Query(ctx context.Context, sql string, args ...any) ([]Row, error)
}

var errNoRowReturned = errors.New("statement returned no row")

var decimalType = reflect.TypeOf(decimal.Decimal{})

// toDecimalHook converts numeric column values into decimal.Decimal.
func toDecimalHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case pgtype.Numeric:
		return numericToDecimal(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		return decimal.NewFromString(v)
	}
	return data, nil
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.Int == nil {
		return decimal.Zero, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, errors.New("numeric value is not finite")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

func decodeRow[T any](row Row) (*T, error) {
	out := new(T)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: toDecimalHook,
		Result:     out,
		TagName:    "mapstructure",
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(row); err != nil {
		return nil, fmt.Errorf("decoding row: %w", err)
	}
	return out, nil
}

// queryOne resolves to the first row, or to a not-found outcome for table.
func queryOne[T any](ctx context.Context, exec Executor, op, table, sql string, args ...any) (*T, error) {
	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, &sqlerr.StorageError{Op: op, Err: err}
	}
	if len(rows) == 0 {
		return nil, sqlerr.NotFound(table)
	}

	record, err := decodeRow[T](rows[0])
	if err != nil {
		return nil, &sqlerr.StorageError{Op: op, Err: err}
	}
	return record, nil
}

// queryAll resolves to every row in the order the store returned them.
func queryAll[T any](ctx context.Context, exec Executor, op, sql string, args ...any) ([]*T, error) {
	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, &sqlerr.StorageError{Op: op, Err: err}
	}

	records := make([]*T, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRow[T](row)
		if err != nil {
			return nil, &sqlerr.StorageError{Op: op, Err: err}
		}
		records = append(records, record)
	}
	return records, nil
}

// insertOne resolves to the row an INSERT ... RETURNING statement produced.
func insertOne[T any](ctx context.Context, exec Executor, op, sql string, args ...any) (*T, error) {
	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, &sqlerr.StorageError{Op: op, Err: err}
	}
	if len(rows) == 0 {
		return nil, &sqlerr.StorageError{Op: op, Err: errNoRowReturned}
	}

	record, err := decodeRow[T](rows[0])
	if err != nil {
		return nil, &sqlerr.StorageError{Op: op, Err: err}
	}
	return record, nil
}
