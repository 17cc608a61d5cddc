package server

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-Api-Key"

// sharedKey gets the api key or the hash of the passphrase that's configured in our server.
// If no key or passphrase is given, 16 random bytes are returned so that nothing matches.
func (s *Server) sharedKey() []byte {
	var b []byte
	switch {
	case s.Params.APIKey != nil:
		b = s.Params.APIKey
	case s.Params.Passphrase != "":
		hash := sha1.Sum([]byte(s.Params.Passphrase))
		b = []byte(fmt.Sprintf("%x", hash[0:16]))
	default:
		b = make([]byte, 16)
		_, _ = rand.Read(b)
		b = []byte(fmt.Sprintf("%x", b))
	}
	return b
}

func (s *Server) checkAPIKey(inputKey string) bool {
	if inputKey == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(inputKey), s.sharedKey()) == 1 {
		return true
	}
	s.logger.Warn("Incorrect api key")
	return false
}

func (s *Server) requireAPIKey(c *gin.Context) {
	key := c.Query("api_key")
	if key == "" {
		key = c.GetHeader(apiKeyHeader)
	}
	if !s.checkAPIKey(key) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}
	c.Next()
}
