package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/certd/verifier"
)

type errorResponse struct {
	Error string        `json:"error"`
	Kind  verifier.Kind `json:"kind"`
}

func statusForKind(kind verifier.Kind) int {
	switch kind {
	case verifier.KindKeyEmpty, verifier.KindKeyTooShort:
		return http.StatusBadRequest
	case verifier.KindNotFound:
		return http.StatusNotFound
	case verifier.KindEmptyDataset:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) writeError(c *gin.Context, err error) {
	kind := verifier.ErrorKind(err)
	code := statusForKind(kind)
	entry := s.logger.WithFields(log.Fields{
		"request": c.GetString(requestIDKey),
		"kind":    kind,
	})
	if code >= http.StatusInternalServerError {
		entry.Warnf("Lookup failed: %v", err)
	} else {
		entry.Debugf("Lookup rejected: %v", err)
	}
	c.JSON(code, errorResponse{
		Error: verifier.Message(err, s.locale(c)),
		Kind:  kind,
	})
}

// locale picks the message language from the lang query, then the Accept-Language header.
func (s *Server) locale(c *gin.Context) string {
	if lang := c.Query("lang"); verifier.IsSupportedLocale(lang) {
		return lang
	}
	for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if verifier.IsSupportedLocale(primary) {
			return primary
		}
	}
	return s.verifier.Locale()
}
