package usage

import (
	"codeberg.org/socialhub/server/contenthub/quota"
	"github.com/gin-gonic/gin"
)

// registers the usage status route
func RegisterRoutes(router *gin.RouterGroup, counter *quota.Counter) {
	router.GET("/usage-status", Handler(counter))
}
