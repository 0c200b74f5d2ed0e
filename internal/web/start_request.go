package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CurrentTimeFunc can be swapped out in tests.
var CurrentTimeFunc = time.Now

// StartRequest records when the request came in. TraceLog and the slow
// log rely on this being the first middleware.
func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}
