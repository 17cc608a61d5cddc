package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sp0x/certd/table"
)

const (
	firstColumn = "A"
	lastColumn  = "G"
)

// RowRange is an inclusive, 1-based range of rows. A To of 0 means up to the end of the table.
type RowRange struct {
	From int
	To   int
}

// A1 formats the range for the given table, restricted to the record columns.
func (r RowRange) A1(tableName string) string {
	if r.To <= 0 {
		return fmt.Sprintf("%s!%s%d:%s", quoteTableName(tableName), firstColumn, r.From, lastColumn)
	}
	return fmt.Sprintf("%s!%s%d:%s%d", quoteTableName(tableName), firstColumn, r.From, lastColumn, r.To)
}

// quoteTableName quotes sheet names that can't appear bare in A1 notation.
func quoteTableName(name string) string {
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}

// RangeFetcher reads a range of rows from a table.
type RangeFetcher interface {
	FetchRange(ctx context.Context, id table.ID, rng RowRange) ([]table.Row, error)
}

// Fetcher reads row ranges through the API, retrying transient failures.
type Fetcher struct {
	api     API
	retrier *Retrier
	logger  log.FieldLogger
}

func NewFetcher(api API, retrier *Retrier) *Fetcher {
	return &Fetcher{
		api:     api,
		retrier: retrier,
		logger:  log.WithField("component", "fetcher"),
	}
}

// FetchRange reads the rows of a range. The remote may return fewer rows than requested.
// A range starting at row 1 includes the header row, which is dropped.
// Ranges of tables that don't exist yield no rows and no error.
func (f *Fetcher) FetchRange(ctx context.Context, id table.ID, rng RowRange) ([]table.Row, error) {
	a1 := rng.A1(id.Name)
	var values *sheetsapi.ValueRange
	err := f.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		values, err = f.api.Values(ctx, id.Resource, a1)
		return err
	})
	if err != nil {
		if f.retrier.classify(err) == EmptyResult {
			f.logger.
				WithFields(log.Fields{"resource": id.Resource, "range": a1}).
				Debugf("Range not found, treating as empty: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't fetch %s from %s: %w", a1, id.Resource, err)
	}
	rows, err := toRows(id, values, rng.From)
	if err != nil {
		return nil, err
	}
	f.logger.
		WithFields(log.Fields{"resource": id.Resource, "range": a1, "rows": len(rows)}).
		Debug("Fetched range")
	return rows, nil
}

func toRows(id table.ID, values *sheetsapi.ValueRange, firstRow int) ([]table.Row, error) {
	if values == nil || len(values.Values) == 0 {
		return nil, nil
	}
	raw := values.Values
	if firstRow == 1 {
		raw = raw[1:]
		firstRow++
	}
	rows := make([]table.Row, 0, len(raw))
	for i, cells := range raw {
		var row table.Row
		for col, v := range cells {
			if col >= table.ColumnCount {
				break
			}
			s, ok := cellString(v)
			if !ok {
				return nil, &MalformedResponseError{
					Resource: id.Resource,
					Table:    id.Name,
					Row:      firstRow + i,
					Column:   col + 1,
					Reason:   fmt.Sprintf("unexpected cell value of type %T", v),
				}
			}
			row[col] = s
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString renders a scalar cell value. Non scalar values are rejected.
func cellString(v interface{}) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", true
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(value), true
	case json.Number:
		return value.String(), true
	}
	return "", false
}
