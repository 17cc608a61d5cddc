package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

var appname = "certd"

// Keys of the configuration values.
const (
	KeyAPIKey           = "api_key"
	KeyEndpoint         = "sheets.endpoint"
	KeyResources        = "sheets.resources"
	KeyTables           = "sheets.tables"
	KeyDiscover         = "sheets.discover"
	KeyBatchSize        = "fetch.batch_size"
	KeyMaxRows          = "fetch.max_rows"
	KeyBatchPause       = "fetch.batch_pause"
	KeyTablePause       = "fetch.table_pause"
	KeyMaxAttempts      = "retry.max_attempts"
	KeyBaseDelay        = "retry.base_delay"
	KeyCacheTTL         = "cache.ttl"
	KeyCaseSensitive    = "search.case_sensitive"
	KeyMinKeyLength     = "search.min_key_length"
	KeyHTTPTimeout      = "http.timeout"
	KeyLocale           = "locale"
	KeyPort             = "port"
	KeyServerAPIKey     = "server.api_key"
	KeyServerPassphrase = "server.passphrase"
	KeyServerDebug      = "server.debug"
	KeyVerbose          = "verbose"
)

//go:generate mockgen -destination=mocks/mock_config.go -package=mocks . Config
type Config interface {
	GetInt(key string) int
	GetString(key string) string
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	Get(key string) interface{}
	Set(key string, value interface{})
	SetDefault(key string, value interface{})
}

func GetMinLogLevel(c Config) log.Level {
	if c.GetBool(KeyVerbose) {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// GetConfigDir returns the directory that holds the config file, creating it if needed.
func GetConfigDir() string {
	home, _ := homedir.Dir()
	dir := path.Join(home, "."+appname)
	_ = os.MkdirAll(dir, os.ModePerm)
	return dir
}

// SetDefaults registers the default value of every option.
func SetDefaults(cfg Config) {
	cfg.SetDefault(KeyEndpoint, "https://sheets.googleapis.com/")
	cfg.SetDefault(KeyResources, []string{})
	cfg.SetDefault(KeyTables, []string{"Sheet1", "Sheet2", "Sheet3", "Sheet4", "Sheet5"})
	cfg.SetDefault(KeyDiscover, true)
	cfg.SetDefault(KeyBatchSize, 1000)
	cfg.SetDefault(KeyMaxRows, 100000)
	cfg.SetDefault(KeyBatchPause, 100*time.Millisecond)
	cfg.SetDefault(KeyTablePause, 200*time.Millisecond)
	cfg.SetDefault(KeyMaxAttempts, 3)
	cfg.SetDefault(KeyBaseDelay, time.Second)
	cfg.SetDefault(KeyCacheTTL, 5*time.Minute)
	cfg.SetDefault(KeyCaseSensitive, false)
	cfg.SetDefault(KeyMinKeyLength, 1)
	cfg.SetDefault(KeyHTTPTimeout, 30*time.Second)
	cfg.SetDefault(KeyLocale, "bn")
	cfg.SetDefault(KeyPort, 5000)
	cfg.SetDefault(KeyServerDebug, false)
	cfg.SetDefault(KeyVerbose, false)
}

// Options are the settings of the lookup pipeline.
type Options struct {
	APIKey        string
	Endpoint      string
	Resources     []string
	Tables        []string
	Discover      bool
	BatchSize     int
	MaxRows       int
	BatchPause    time.Duration
	TablePause    time.Duration
	MaxAttempts   int
	BaseDelay     time.Duration
	CacheTTL      time.Duration
	CaseSensitive bool
	MinKeyLength  int
	HTTPTimeout   time.Duration
	Locale        string
}

// LoadOptions reads and validates the options from the configuration.
func LoadOptions(cfg Config) (*Options, error) {
	opts := &Options{
		APIKey:        cfg.GetString(KeyAPIKey),
		Endpoint:      cfg.GetString(KeyEndpoint),
		Resources:     cfg.GetStringSlice(KeyResources),
		Tables:        cfg.GetStringSlice(KeyTables),
		Discover:      cfg.GetBool(KeyDiscover),
		BatchSize:     cfg.GetInt(KeyBatchSize),
		MaxRows:       cfg.GetInt(KeyMaxRows),
		BatchPause:    cfg.GetDuration(KeyBatchPause),
		TablePause:    cfg.GetDuration(KeyTablePause),
		MaxAttempts:   cfg.GetInt(KeyMaxAttempts),
		BaseDelay:     cfg.GetDuration(KeyBaseDelay),
		CacheTTL:      cfg.GetDuration(KeyCacheTTL),
		CaseSensitive: cfg.GetBool(KeyCaseSensitive),
		MinKeyLength:  cfg.GetInt(KeyMinKeyLength),
		HTTPTimeout:   cfg.GetDuration(KeyHTTPTimeout),
		Locale:        cfg.GetString(KeyLocale),
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks that the options can be used.
func (o *Options) Validate() error {
	switch {
	case len(o.Resources) == 0:
		return errors.New("no spreadsheet configured, set " + KeyResources)
	case !o.Discover && len(o.Tables) == 0:
		return fmt.Errorf("%s can't be empty when discovery is disabled", KeyTables)
	case o.BatchSize < 1:
		return fmt.Errorf("%s must be positive, got %d", KeyBatchSize, o.BatchSize)
	case o.MaxRows < 2:
		return fmt.Errorf("%s must be at least 2, got %d", KeyMaxRows, o.MaxRows)
	case o.MaxAttempts < 1:
		return fmt.Errorf("%s must be at least 1, got %d", KeyMaxAttempts, o.MaxAttempts)
	case o.CacheTTL <= 0:
		return fmt.Errorf("%s must be positive, got %s", KeyCacheTTL, o.CacheTTL)
	case o.MinKeyLength < 0:
		return fmt.Errorf("%s can't be negative", KeyMinKeyLength)
	}
	return nil
}
