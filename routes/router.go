package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkpost/inkpost/config"
	"github.com/inkpost/inkpost/controllers"
	"github.com/inkpost/inkpost/middleware"
	"github.com/inkpost/inkpost/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(utils.RequestLogger(utils.Logger))
		r.Use(utils.Recovery(utils.Logger))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Blog backend API is online!")
	})

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secret := []byte(cfg.JWTSecret)
	authController := controllers.NewAuthController(db, secret)
	postController := controllers.NewPostController(db)
	categoryController := controllers.NewCategoryController(db)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.AuthRequired(db, secret), authController.Me)

	// Post and category mutations are open; the author field is a free-text
	// label, not a verified identity. See DESIGN.md.
	postsGroup := api.Group("/posts")
	postsGroup.GET("", postController.List)
	postsGroup.GET("/:id", postController.Get)
	postsGroup.POST("", postController.Create)
	postsGroup.PUT("/:id", postController.Update)
	postsGroup.DELETE("/:id", postController.Delete)

	categoriesGroup := api.Group("/categories")
	categoriesGroup.GET("", categoryController.List)
	categoriesGroup.POST("", categoryController.Create)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "Not Found - "+ctx.Request.URL.Path)
	})

	return r
}
