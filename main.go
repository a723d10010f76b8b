package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"blog-platform/activity"
	"blog-platform/auth"
	"blog-platform/config"
	"blog-platform/handlers"
	"blog-platform/helper"
	"blog-platform/middleware"
	"blog-platform/repositories"
	"blog-platform/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	logger := activity.New(os.Stdout)
	tokens := auth.NewTokenService(cfg.JWTSecret, config.JWTIssuer, config.JWTAudience, config.JWTExpiration)

	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		log.Fatalf("Failed to initialize validator: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	userService := services.NewUserService(userRepo, roleRepo)
	authService := services.NewAuthService(userService, tokens, logger)
	articleService := services.NewArticleService(articleRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)

	authHandler := handlers.NewAuthHandler(authService, userService, httpHelper, logger)
	userHandler := handlers.NewUserHandler(userService, httpHelper, logger)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper, logger)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper, logger)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper, logger)

	router := SetupRouter(tokens, logger, authHandler, userHandler, articleHandler, tagHandler, commentHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// SetupRouter builds the full route tree. Split out of main so the
// integration tests can mount the same routes over an httptest server.
func SetupRouter(
	tokens *auth.TokenService,
	logger activity.Logger,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	articleHandler *handlers.ArticleHandler,
	tagHandler *handlers.TagHandler,
	commentHandler *handlers.CommentHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(corsMiddleware())
	router.Use(middleware.Authenticate(tokens))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/validate", middleware.RequireAuth(), authHandler.ValidateToken)
			authRoutes.POST("/refresh", middleware.RequireAuth(), authHandler.RefreshToken)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/me", middleware.RequireAuth(), userHandler.GetMe)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/roles", userHandler.GetUserRoles)
			users.POST("/:id/roles", userHandler.AssignRole)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/drafts", articleHandler.GetDrafts)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.GET("/by-tag/:tagId", articleHandler.GetArticlesByTag)
			articles.GET("/by-author/:authorId", articleHandler.GetArticlesByAuthor)
			articles.POST("", articleHandler.CreateArticle)
			articles.PUT("/:id", articleHandler.UpdateArticle)
			articles.DELETE("/:id", articleHandler.DeleteArticle)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("", tagHandler.CreateTag)
			tags.PUT("/:id", tagHandler.UpdateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		comments := v1.Group("/comments")
		{
			comments.GET("", commentHandler.GetComments)
			comments.GET("/:id", commentHandler.GetComment)
			comments.GET("/by-article/:articleId", commentHandler.GetCommentsByArticle)
			comments.POST("", commentHandler.CreateComment)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
			comments.POST("/:id/approve", commentHandler.ApproveComment)
			comments.POST("/:id/reject", commentHandler.RejectComment)
		}
	}

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
