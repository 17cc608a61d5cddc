package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/search/:key", s.searchHandler)
	r.GET("/search", s.searchHandler)
	r.GET("/status", s.Status)
	r.GET("/health", s.HealthCheck)

	admin := r.Group("/cache", s.requireAPIKey)
	{
		admin.POST("/invalidate", s.invalidateHandler)
		admin.POST("/refresh", s.refreshHandler)
	}

	if s.Params.Debug {
		pprof.Register(r)
	}
}
