package server

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/sp0x/certd/cache"
)

type statusResponse struct {
	Valid     bool                `json:"valid"`
	FetchedAt *time.Time          `json:"fetchedAt,omitempty"`
	Age       string              `json:"age,omitempty"`
	TTL       string              `json:"ttl"`
	Tables    int                 `json:"tables"`
	Records   int                 `json:"records"`
	PerTable  []cache.TableStatus `json:"perTable"`
	LastError string              `json:"lastError,omitempty"`
}

func (s *Server) Status(c *gin.Context) {
	status := s.verifier.Status()
	output := statusResponse{
		Valid:    status.Valid,
		TTL:      status.TTL.String(),
		Tables:   status.Tables,
		Records:  status.Records,
		PerTable: status.PerTable,
	}
	if !status.FetchedAt.IsZero() {
		fetchedAt := status.FetchedAt
		output.FetchedAt = &fetchedAt
		output.Age = humanize.Time(fetchedAt)
	}
	if err := s.verifier.LastError(); err != nil {
		output.LastError = err.Error()
	}
	c.JSON(http.StatusOK, output)
}
