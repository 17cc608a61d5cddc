package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/certd/cache"
	"github.com/sp0x/certd/config"
	"github.com/sp0x/certd/search"
	"github.com/sp0x/certd/table"
)

// Searcher is the lookup service exposed over HTTP.
//go:generate mockgen -destination=mocks/mock_searcher.go -package=mocks . Searcher
type Searcher interface {
	Search(ctx context.Context, key string) (*search.Record, error)
	Refresh(ctx context.Context) (*table.Set, error)
	Invalidate()
	Status() cache.Status
	LastError() error
	Locale() string
}

type Server struct {
	verifier Searcher
	config   config.Config
	Params   Params
	logger   log.FieldLogger
}

type Params struct {
	Port       int
	APIKey     []byte
	Passphrase string
	Debug      bool
	Version    string
}

func NewServer(conf config.Config, verifier Searcher) *Server {
	s := &Server{
		verifier: verifier,
		config:   conf,
		logger:   log.WithField("component", "server"),
	}
	s.Params = Params{
		Port:       conf.GetInt(config.KeyPort),
		Passphrase: conf.GetString(config.KeyServerPassphrase),
		Debug:      conf.GetBool(config.KeyServerDebug),
	}
	if key := conf.GetString(config.KeyServerAPIKey); key != "" {
		s.Params.APIKey = []byte(key)
	}
	return s
}

// Handler creates the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	if !s.Params.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())
	s.setupRoutes(r)
	return r
}

// Listen serves the API until the listener fails.
func (s *Server) Listen() error {
	s.logger.WithField("port", s.Params.Port).Info("Starting server")
	return s.Handler().Run(fmt.Sprintf(":%d", s.Params.Port))
}
