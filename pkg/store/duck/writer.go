// Package duck persists per-symbol tick datasets into a single DuckDB
// container file, one table per symbol. The table layout matches deep.Tick
// field for field; the symbol is the table's identity, not a column.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/peter-kozarec/deeptick/pkg/deep"
)

type Writer struct {
	dataSourceName string
	db             *sql.DB
}

func NewWriter(dataSourceName string) *Writer {
	return &Writer{
		dataSourceName: dataSourceName,
	}
}

func (w *Writer) Open() error {
	db, err := sql.Open("duckdb", w.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open container %q: %w", w.dataSourceName, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("unable to open container %q: %w", w.dataSourceName, err)
	}
	w.db = db
	return nil
}

func (w *Writer) Close() {
	_ = w.db.Close()
}

// WriteSymbol creates the symbol's dataset and appends its ticks inside one
// transaction, preserving their order.
func (w *Writer) WriteSymbol(ctx context.Context, symbol string, ticks []deep.Tick) error {
	table := quoteIdent(symbol)

	create := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		message_type UTINYINT NOT NULL,
		message_subtype UTINYINT NOT NULL,
		ts UBIGINT NOT NULL,
		size UINTEGER NOT NULL,
		price UBIGINT NOT NULL,
		price_multiplier UBIGINT NOT NULL,
		packet_number UBIGINT NOT NULL,
		message_sequence_number UBIGINT NOT NULL
	);`, table)

	if _, err := w.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("unable to create dataset for %s: %w", symbol, err)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin write for %s: %w", symbol, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s VALUES (?, ?, ?, ?, ?, ?, ?, ?);`, table))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("unable to prepare insert for %s: %w", symbol, err)
	}

	for _, tick := range ticks {
		if _, err := stmt.ExecContext(ctx,
			tick.MessageType,
			tick.MessageSubtype,
			tick.Timestamp,
			tick.Size,
			tick.Price,
			tick.PriceMultiplier,
			tick.PacketIndex,
			tick.SequenceNumber,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("unable to write tick for %s: %w", symbol, err)
		}
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("unable to finish insert for %s: %w", symbol, err)
	}
	return tx.Commit()
}

func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
