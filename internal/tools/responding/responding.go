package responding

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// HandleError writes the uniform error envelope and stops the handler chain.
func HandleError(c *gin.Context, statusCode int, message string, err error) {
	body := errorBody{
		Message: message,
	}

	if err != nil {
		body.Detail = err.Error()
	}

	if logger, ok := c.Get("logger"); ok {
		logger.(*zerolog.Logger).
			Warn().
			Int("code", statusCode).
			Err(err).
			Msg(message)
	}

	c.AbortWithStatusJSON(statusCode, body)
}
