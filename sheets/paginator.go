package sheets

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/certd/table"
)

// firstDataRow is the row right after the header.
const firstDataRow = 2

// Paginator reads whole tables in batches of rows.
type Paginator struct {
	fetcher   RangeFetcher
	batchSize int
	maxRows   int
	pause     time.Duration
	sleep     func(time.Duration)
	logger    log.FieldLogger
}

// NewPaginator creates a paginator. maxRows bounds tables whose size isn't known.
// pause is waited between two batches of the same table.
func NewPaginator(fetcher RangeFetcher, batchSize, maxRows int, pause time.Duration) *Paginator {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Paginator{
		fetcher:   fetcher,
		batchSize: batchSize,
		maxRows:   maxRows,
		pause:     pause,
		sleep:     time.Sleep,
		logger:    log.WithField("component", "paginator"),
	}
}

// FetchTable reads batches until a short or empty batch is returned, or the last row is reached.
// Nothing is returned if any of the batches fails.
func (p *Paginator) FetchTable(ctx context.Context, info table.Info) (*table.Table, error) {
	lastRow := p.maxRows
	if info.RowCount > 0 {
		lastRow = info.RowCount
	}
	var rows []table.Row
	start := firstDataRow
	for start <= lastRow {
		end := start + p.batchSize - 1
		if end > lastRow {
			end = lastRow
		}
		batch, err := p.fetcher.FetchRange(ctx, info.ID, RowRange{From: start, To: end})
		if err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
		if len(batch) < p.batchSize {
			break
		}
		start = end + 1
		if start <= lastRow && p.pause > 0 {
			p.sleep(p.pause)
		}
	}
	p.logger.
		WithFields(log.Fields{"table": info.ID.String(), "rows": len(rows)}).
		Debug("Fetched table")
	return &table.Table{ID: info.ID, Rows: rows}, nil
}
