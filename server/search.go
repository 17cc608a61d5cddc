package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (s *Server) searchHandler(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		key = c.Query("admit")
	}
	record, err := s.verifier.Search(c.Request.Context(), key)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.logger.WithFields(log.Fields{
		"request": c.GetString(requestIDKey),
		"table":   record.SourceTable,
	}).Debug("Served record")
	c.JSON(http.StatusOK, record)
}

func (s *Server) invalidateHandler(c *gin.Context) {
	s.verifier.Invalidate()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) refreshHandler(c *gin.Context) {
	set, err := s.verifier.Refresh(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"tables":  set.Len(),
		"records": set.Records(),
	})
}
