package app

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"justdebate.online/backend/internal/api/handlers"
	"justdebate.online/backend/internal/api/middleware"
	"justdebate.online/backend/internal/config"
)

// newRouter assembles the middleware chain and the route table. Per-route
// auth: mutating endpoints require a credential, reads accept an optional
// one so responses can be personalized later without a route change.
func newRouter(cfg *config.Config, server *handlers.Server, resolver middleware.CredentialResolver) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))

	required := middleware.Auth(resolver, middleware.Required)
	optional := middleware.Auth(resolver, middleware.Optional)

	router.GET("/", server.Banner)
	router.GET("/health", server.Health)

	auth := router.Group("/api/auth")
	{
		auth.POST("/google", server.GoogleLogin)
		auth.GET("/verify", server.VerifyToken)
		auth.POST("/logout", server.Logout)
	}

	topics := router.Group("/api/topics")
	{
		topics.GET("", optional, server.ListTopics)
		topics.GET("/:id", optional, server.GetTopic)
		topics.POST("", required, server.CreateTopic)
		topics.PUT("/:id", required, server.UpdateTopic)
		topics.DELETE("/:id", required, server.DeleteTopic)
	}

	arguments := router.Group("/api/arguments")
	{
		arguments.GET("/topic/:topicId", optional, server.ListArgumentsByTopic)
		arguments.POST("", required, server.CreateArgument)
		arguments.POST("/:id/vote", required, server.VoteArgument)
		arguments.GET("/:id/replies", optional, server.ListReplies)
		arguments.POST("/:id/replies", required, server.CreateReply)
	}

	users := router.Group("/api/users")
	{
		users.GET("", optional, server.ListUsers)
		users.GET("/:id", optional, server.GetUser)
		users.PUT("/:id", required, server.UpdateUser)
		users.POST("/:id/comments", required, server.AddComment)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}

// buildCORSConfig derives the CORS policy from configuration. A wildcard
// origin combined with credentials is rejected by browsers, so "*" is
// stripped from the allowlist rather than honored.
func buildCORSConfig(cfg *config.Config) cors.Config {
	origins := make([]string, 0, len(cfg.CORS.AllowedOrigins))
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
}
