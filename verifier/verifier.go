package verifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/certd/cache"
	"github.com/sp0x/certd/config"
	"github.com/sp0x/certd/requests"
	"github.com/sp0x/certd/search"
	"github.com/sp0x/certd/sheets"
	"github.com/sp0x/certd/table"
)

// TableLister finds the tables of a spreadsheet.
type TableLister interface {
	ListTables(ctx context.Context, resource string) []table.Info
}

// TableFetcher reads every row of a table.
type TableFetcher interface {
	FetchTable(ctx context.Context, info table.Info) (*table.Table, error)
}

// Verifier looks certificates up by their admit number.
type Verifier struct {
	resources    []string
	lister       TableLister
	fetcher      TableFetcher
	snapshot     *cache.Snapshot
	matcher      search.Matcher
	minKeyLength int
	tablePause   time.Duration
	locale       string
	sleep        func(time.Duration)
	lock         sync.RWMutex
	lastErr      error
	logger       log.FieldLogger
}

// New creates a verifier that reads the configured spreadsheets over HTTP.
func New(ctx context.Context, opts *config.Options) (*Verifier, error) {
	client := requests.NewClient(opts.APIKey, opts.HTTPTimeout)
	api, err := sheets.NewAPI(ctx, client, opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the sheets client: %w", err)
	}
	return NewWithAPI(opts, api), nil
}

// NewWithAPI creates a verifier over an existing sheets API.
func NewWithAPI(opts *config.Options, api sheets.API) *Verifier {
	retrier := sheets.NewRetrier(opts.MaxAttempts, opts.BaseDelay)
	discovery := sheets.NewDiscovery(api, retrier, opts.Discover, opts.Tables)
	paginator := sheets.NewPaginator(sheets.NewFetcher(api, retrier), opts.BatchSize, opts.MaxRows, opts.BatchPause)
	return newVerifier(opts, discovery, paginator)
}

func newVerifier(opts *config.Options, lister TableLister, fetcher TableFetcher) *Verifier {
	locale := opts.Locale
	if !IsSupportedLocale(locale) {
		locale = DefaultLocale
	}
	return &Verifier{
		resources:    opts.Resources,
		lister:       lister,
		fetcher:      fetcher,
		snapshot:     cache.NewSnapshot(opts.CacheTTL),
		matcher:      search.Matcher{CaseSensitive: opts.CaseSensitive},
		minKeyLength: opts.MinKeyLength,
		tablePause:   opts.TablePause,
		locale:       locale,
		sleep:        time.Sleep,
		logger:       log.WithField("component", "verifier"),
	}
}

// Locale is the default language of the user facing messages.
func (v *Verifier) Locale() string {
	return v.locale
}

// Search validates the key and looks it up in the cached tables, fetching them if needed.
func (v *Verifier) Search(ctx context.Context, rawKey string) (*search.Record, error) {
	key, err := search.ValidateKey(rawKey, v.minKeyLength)
	if err != nil {
		return nil, err
	}
	set, err := v.snapshot.GetOrFetch(ctx, v.FetchAll)
	if err != nil {
		return nil, err
	}
	if set.Records() == 0 {
		return nil, search.ErrEmptyDataset
	}
	match, found := search.FindByKey(set, key, v.matcher)
	if !found {
		v.logger.WithFields(log.Fields{"key": key, "tables": set.Len()}).Debug("No record found")
		return nil, &search.NotFoundError{Key: key, Tables: set.Len(), Records: set.Records()}
	}
	v.logger.WithFields(log.Fields{"key": key, "table": match.Table.String()}).Debug("Record found")
	return search.ToRecord(match.Row, match.Table), nil
}

// FetchAll reads every table of every resource, in order. Tables without rows are left out.
// It bypasses the cache.
func (v *Verifier) FetchAll(ctx context.Context) (*table.Set, error) {
	started := time.Now()
	set := table.NewSet()
	fetched := 0
	for _, resource := range v.resources {
		for _, info := range v.lister.ListTables(ctx, resource) {
			if fetched > 0 {
				v.sleep(v.tablePause)
			}
			fetched++
			t, err := v.fetcher.FetchTable(ctx, info)
			if err != nil {
				err = fmt.Errorf("couldn't fetch table %s: %w", info.ID, err)
				v.setLastError(err)
				return nil, err
			}
			if t.Len() == 0 {
				v.logger.WithField("table", info.ID.String()).Debug("Skipping empty table")
				continue
			}
			set.Put(t)
		}
	}
	v.setLastError(nil)
	v.logger.WithFields(log.Fields{
		"tables":  set.Len(),
		"records": set.Records(),
		"elapsed": time.Since(started).String(),
	}).Info("Fetched all tables")
	return set, nil
}

// ListTables lists the tables of every configured resource.
func (v *Verifier) ListTables(ctx context.Context) []table.Info {
	var infos []table.Info
	for _, resource := range v.resources {
		infos = append(infos, v.lister.ListTables(ctx, resource)...)
	}
	return infos
}

// Refresh replaces the cached tables with freshly fetched ones.
func (v *Verifier) Refresh(ctx context.Context) (*table.Set, error) {
	return v.snapshot.Refresh(ctx, v.FetchAll)
}

// Invalidate drops the cached tables.
func (v *Verifier) Invalidate() {
	v.snapshot.Invalidate()
}

// Status reports the state of the cache.
func (v *Verifier) Status() cache.Status {
	return v.snapshot.Status()
}

// LastError returns the error of the latest full fetch, or nil if it succeeded.
func (v *Verifier) LastError() error {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return v.lastErr
}

func (v *Verifier) setLastError(err error) {
	v.lock.Lock()
	v.lastErr = err
	v.lock.Unlock()
}
