package topics

import (
	"codeberg.org/socialhub/server/contenthub/contents"
	"codeberg.org/socialhub/server/contenthub/quota"
	"codeberg.org/socialhub/server/internal/llm"
	"github.com/gin-gonic/gin"
)

// registers topic suggestion routes
func RegisterRoutes(router *gin.RouterGroup, generator llm.TextGenerator, store *contents.Store, counter *quota.Counter) {
	router.POST("/generate-topics", Handler(generator, store, counter))
}
