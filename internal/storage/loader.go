package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// defaultBatchSize bounds memory per insert round-trip.
const defaultBatchSize = 500

// LoadTable writes a cleaned table into the repository in batches and
// returns the number of rows written. Absent cells are loaded as NULL.
func LoadTable(ctx context.Context, repo Repository, t records.Table, logger *zap.Logger) (int64, error) {
	if len(t.Columns) == 0 {
		return 0, fmt.Errorf("storage: table has no columns")
	}

	var total int64
	batch := make([][]any, 0, defaultBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := repo.InsertRows(ctx, t.Columns, batch)
		total += n
		if err != nil {
			return err
		}
		if logger != nil {
			logger.Debug("flushed batch", zap.Int("rows", len(batch)), zap.Int64("total", total))
		}
		batch = batch[:0]
		return nil
	}

	for _, r := range t.Rows {
		row := make([]any, len(t.Columns))
		for i, col := range t.Columns {
			if r.Present(col) {
				row[i] = r.String(col)
			}
		}
		batch = append(batch, row)
		if len(batch) >= defaultBatchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}
