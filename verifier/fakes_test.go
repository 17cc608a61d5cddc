package verifier

import (
	"context"
	"time"

	"github.com/sp0x/certd/config"
	"github.com/sp0x/certd/table"
)

type fakeLister struct {
	tables map[string][]table.Info
}

func (f *fakeLister) ListTables(_ context.Context, resource string) []table.Info {
	return f.tables[resource]
}

type fakeFetcher struct {
	rows  map[table.ID][]table.Row
	fail  map[table.ID]error
	calls []table.ID
}

func (f *fakeFetcher) FetchTable(_ context.Context, info table.Info) (*table.Table, error) {
	f.calls = append(f.calls, info.ID)
	if err, ok := f.fail[info.ID]; ok {
		return nil, err
	}
	return &table.Table{ID: info.ID, Rows: f.rows[info.ID]}, nil
}

func testOptions() *config.Options {
	return &config.Options{
		Resources:    []string{"sheet-id"},
		Tables:       []string{"Sheet1"},
		Discover:     true,
		BatchSize:    1000,
		MaxRows:      100000,
		MaxAttempts:  1,
		CacheTTL:     time.Minute,
		MinKeyLength: 1,
		Locale:       LocaleEnglish,
	}
}

func newTestVerifier(opts *config.Options, lister TableLister, fetcher TableFetcher) (*Verifier, *[]time.Duration) {
	var pauses []time.Duration
	v := newVerifier(opts, lister, fetcher)
	v.sleep = func(d time.Duration) { pauses = append(pauses, d) }
	return v, &pauses
}
