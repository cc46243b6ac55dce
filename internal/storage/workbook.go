// Package storage keeps a spreadsheet-shaped workbook in a local SQLite
// file. Workbook implements sheets.Store, so the sync layer can run
// against it instead of a remote spreadsheet.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"levelup/internal/sheets"
)

// Workbook stores one cell per row of the cells table. Reads follow the
// remote API: rows run from the range start to the last non-empty row, and
// each row stops at its last non-empty cell.
type Workbook struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ sheets.Store = (*Workbook)(nil)

func NewWorkbook(db *sql.DB, logger *slog.Logger) *Workbook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbook{db: db, logger: logger}
}

// OpenWorkbook opens the SQLite file at path and migrates it.
func OpenWorkbook(ctx context.Context, path string, logger *slog.Logger) (*Workbook, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWorkbook(db, logger), nil
}

func (w *Workbook) Close() error {
	return w.db.Close()
}

func (w *Workbook) Probe(ctx context.Context) error {
	var n int
	if err := w.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cells`).Scan(&n); err != nil {
		return storeErr("probe", err)
	}
	w.logger.Debug("workbook probe", "cells", n)
	return nil
}

func (w *Workbook) Read(ctx context.Context, rng string) ([][]string, error) {
	r, err := sheets.ParseRange(rng)
	if err != nil {
		return nil, err
	}

	query := `SELECT row, col, value FROM cells WHERE tab = ? AND row >= ? AND col >= ?`
	args := []any{r.Tab, r.StartRow, r.StartCol}
	if r.EndRow != 0 {
		query += ` AND row <= ?`
		args = append(args, r.EndRow)
	}
	if r.EndCol != 0 {
		query += ` AND col <= ?`
		args = append(args, r.EndCol)
	}
	query += ` ORDER BY row, col`

	rows, err := w.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("cells read", err)
	}
	defer rows.Close()

	out := [][]string{}
	for rows.Next() {
		var row, col int
		var value string
		if err := rows.Scan(&row, &col, &value); err != nil {
			return nil, storeErr("cells scan", err)
		}
		ri, ci := row-r.StartRow, col-r.StartCol
		for len(out) <= ri {
			out = append(out, []string{})
		}
		for len(out[ri]) <= ci {
			out[ri] = append(out[ri], "")
		}
		out[ri][ci] = value
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("cells rows", err)
	}
	w.logger.Debug("workbook read", "range", rng, "rows", len(out))
	return out, nil
}

// Write overwrites the cells addressed by rows, anchored at the range start.
// Cells outside a bounded range are ignored; empty values clear the cell.
func (w *Workbook) Write(ctx context.Context, rng string, values [][]string) error {
	r, err := sheets.ParseRange(rng)
	if err != nil {
		return err
	}
	err = WithTx(ctx, w.db, func(tx *sql.Tx) error {
		for i, row := range values {
			for j, v := range row {
				if err := putCell(ctx, tx, r, r.StartRow+i, r.StartCol+j, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return storeErr("cells write", err)
	}
	w.logger.Debug("workbook write", "range", rng, "rows", len(values))
	return nil
}

// Append writes row on the first row below the last non-empty row of the
// range's columns.
func (w *Workbook) Append(ctx context.Context, rng string, row []string) error {
	r, err := sheets.ParseRange(rng)
	if err != nil {
		return err
	}
	var target int
	err = WithTx(ctx, w.db, func(tx *sql.Tx) error {
		query := `SELECT COALESCE(MAX(row), 0) FROM cells WHERE tab = ? AND col >= ?`
		args := []any{r.Tab, r.StartCol}
		if r.EndCol != 0 {
			query += ` AND col <= ?`
			args = append(args, r.EndCol)
		}
		var last int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
			return fmt.Errorf("last row: %w", err)
		}
		target = max(last+1, r.StartRow)
		open := sheets.Range{Tab: r.Tab, StartCol: r.StartCol, StartRow: target, EndCol: r.EndCol}
		for j, v := range row {
			if err := putCell(ctx, tx, open, target, r.StartCol+j, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storeErr("cells append", err)
	}
	w.logger.Debug("workbook append", "range", rng, "row", target)
	return nil
}

func putCell(ctx context.Context, tx *sql.Tx, r sheets.Range, row, col int, value string) error {
	if !r.Contains(row, col) {
		return nil
	}
	if value == "" {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE tab = ? AND row = ? AND col = ?`, r.Tab, row, col); err != nil {
			return fmt.Errorf("clear %s!%s%d: %w", r.Tab, sheets.ColumnName(col), row, err)
		}
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cells (tab, row, col, value) VALUES (?, ?, ?, ?)
		ON CONFLICT(tab, row, col) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, r.Tab, row, col, value)
	if err != nil {
		return fmt.Errorf("put %s!%s%d: %w", r.Tab, sheets.ColumnName(col), row, err)
	}
	return nil
}

// storeErr tags a database failure as a connection error while keeping
// the cause (including context errors) reachable through errors.Is.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, sheets.ErrConnection, err)
}
