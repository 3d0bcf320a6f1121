package share

import (
	"codeberg.org/socialhub/server/contenthub/sharing"
	"github.com/gin-gonic/gin"
)

// registers share link routes
func RegisterRoutes(router *gin.RouterGroup, registry *sharing.Registry, baseURL string) {
	router.POST("/share/:id", CreateHandler(registry, baseURL))
	router.GET("/shared/:shareId", SharedHandler(registry))
}
