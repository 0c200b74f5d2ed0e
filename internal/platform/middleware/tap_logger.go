package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TapLogger scopes the request logger to the platform being called and
// gives the operation its own id, so the supplier exchanges it triggers
// can be grouped in the logs.
func TapLogger(c *gin.Context) {
	platform := c.Params.ByName("platform")
	logger := c.MustGet("logger").(*zerolog.Logger)

	requestLogger := logger.
		With().
		Str("platform", platform).
		Str("operationId", uuid.New().String()).
		Logger()

	c.Set("logger", &requestLogger)
}
