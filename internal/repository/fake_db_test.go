package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"job-portal/internal/database"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: got %d want %d", len(dest), len(r.vals))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan dest %d is not a pointer", i)
		}
		target := dv.Elem()
		if r.vals[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(r.vals[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan type mismatch at %d: %s into %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	idx  int
	err  error

	closed bool
}

func (r *fakeRows) Close() { r.closed = true }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.idx-1].Scan(dest...) }
func (r *fakeRows) Err() error             { return r.err }

type recordedCall struct {
	query string
	args  []any
}

// fakeDB returns canned results and records every statement it receives.
type fakeDB struct {
	calls []recordedCall

	row      fakeRow
	rows     *fakeRows
	queryErr error
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }
func (db *fakeDB) SQLDB() *sql.DB                 { return nil }

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.calls = append(db.calls, recordedCall{query: query, args: args})
	return 1, nil
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	db.calls = append(db.calls, recordedCall{query: query, args: args})
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	if db.rows == nil {
		return &fakeRows{}, nil
	}
	return db.rows, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	db.calls = append(db.calls, recordedCall{query: query, args: args})
	return db.row
}
