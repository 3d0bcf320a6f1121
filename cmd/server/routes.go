package main

import (
	"codeberg.org/socialhub/server/api/rest/generate"
	"codeberg.org/socialhub/server/api/rest/health"
	"codeberg.org/socialhub/server/api/rest/share"
	"codeberg.org/socialhub/server/api/rest/topics"
	"codeberg.org/socialhub/server/api/rest/usage"
	"github.com/gin-gonic/gin"
)

// sets up all API routes
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)

		generate.RegisterRoutes(api, server.services.Generator, server.store, server.counter)
		topics.RegisterRoutes(api, server.services.Generator, server.store, server.counter)
		usage.RegisterRoutes(api, server.counter)
		share.RegisterRoutes(api, server.registry, server.config.BaseURL)
	}
}
