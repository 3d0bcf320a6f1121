package usage

import (
	"net/http"

	"codeberg.org/socialhub/server/contenthub/quota"
	"codeberg.org/socialhub/server/internal/session"
	"github.com/gin-gonic/gin"
)

// creates the handler reporting the caller's daily usage.
// The status is computed fresh on every call, never cached.
func Handler(counter *quota.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, counter.Status(session.FromContext(c)))
	}
}
