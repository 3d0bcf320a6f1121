package main

import (
	"codeberg.org/socialhub/server/contenthub/contents"
	"codeberg.org/socialhub/server/contenthub/quota"
	"codeberg.org/socialhub/server/contenthub/sharing"
	"codeberg.org/socialhub/server/internal/config"
	"codeberg.org/socialhub/server/internal/llm"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	store    *contents.Store
	counter  *quota.Counter
	registry *sharing.Registry
	services *Services
	router   *gin.Engine
}

// holds the external service clients
type Services struct {
	Generator llm.TextGenerator
}
