package router

import (
	"postlink/internal/config"
	"postlink/internal/handlers"
	"postlink/internal/middleware"
	"postlink/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New builds the engine with all middleware and routes wired to the given
// database handle and configuration.
func New(database *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Allow all origins for now; tighten when deployed behind a known frontend.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Services
	userService := services.NewUserService(database, cfg)
	postService := services.NewPostService(database)
	voteService := services.NewVoteService(database)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	voteHandler := handlers.NewVoteHandler(voteService)

	// Public Routes
	r.GET("/", handlers.Root)
	r.POST("/users/", userHandler.Create)
	r.POST("/login", authHandler.Login)
	r.GET("/posts/", postHandler.List)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired(database, cfg))
	{
		authorized.GET("/users/:id", userHandler.Get)
		authorized.GET("/posts/:id", postHandler.Get)
		authorized.POST("/posts/", postHandler.Create)
		authorized.PUT("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/vote/", voteHandler.Cast)
	}

	return r
}
