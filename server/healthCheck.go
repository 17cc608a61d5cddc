package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthCheckResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (s *Server) HealthCheck(c *gin.Context) {
	output := healthCheckResponse{Ok: true}
	if err := s.verifier.LastError(); err != nil {
		output.Ok = false
		output.Error = err.Error()
	}
	c.JSON(http.StatusOK, output)
}
