package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the cell table. Every tab shares it; a cell that was
// never written, or was written empty, has no row.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cells (
			tab TEXT NOT NULL,
			row INTEGER NOT NULL,
			col INTEGER NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (tab, row, col)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cells_tab_row ON cells(tab, row);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
