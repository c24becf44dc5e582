package duck

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/peter-kozarec/deeptick/pkg/deep"
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open container %q: %w", r.dataSourceName, err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadTicks streams the symbol's dataset in stored order through handler.
func (r *Reader) LoadTicks(ctx context.Context, symbol string, handler func(tick deep.Tick) error) error {
	query := fmt.Sprintf(`
	SELECT message_type, message_subtype, ts, size, price, price_multiplier,
	       packet_number, message_sequence_number
	FROM %s;`, quoteIdent(symbol))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying dataset %s: %w", symbol, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var tick deep.Tick
		if err := rows.Scan(
			&tick.MessageType,
			&tick.MessageSubtype,
			&tick.Timestamp,
			&tick.Size,
			&tick.Price,
			&tick.PriceMultiplier,
			&tick.PacketIndex,
			&tick.SequenceNumber,
		); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		if err := handler(tick); err != nil {
			return fmt.Errorf("error processing tick: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
