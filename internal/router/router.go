// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gematelier/atelier-backend/internal/config"
	"github.com/gematelier/atelier-backend/internal/handlers"
	"github.com/gematelier/atelier-backend/internal/middleware"
	"github.com/gematelier/atelier-backend/internal/services"
	"github.com/gematelier/atelier-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	productService := services.NewProductService(db, catalogService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productHandler := handlers.NewProductHandler(productService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product aggregate routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetAggregateDetail)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.CreateAggregate)
				protected.PUT("/:id/facets/:facet", productHandler.UpdateFacet)
				protected.PATCH("/:id/statistics/:stat", productHandler.UpdateStatistic)
			}
		}

		// Catalog routes
		categories := v1.Group("/categories")
		{
			categories.GET("", catalogHandler.ListCategories)
			categories.GET("/:id", catalogHandler.GetCategory)

			protected := categories.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", catalogHandler.CreateCategory)
				protected.PUT("/:id", catalogHandler.UpdateCategory)
				protected.DELETE("/:id", catalogHandler.DeleteCategory)
			}
		}

		collections := v1.Group("/collections")
		{
			collections.GET("", catalogHandler.ListCollections)
			collections.GET("/:id", catalogHandler.GetCollection)

			protected := collections.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", catalogHandler.CreateCollection)
				protected.PUT("/:id", catalogHandler.UpdateCollection)
				protected.DELETE("/:id", catalogHandler.DeleteCollection)
			}
		}

		signaturePieces := v1.Group("/signature-pieces")
		{
			signaturePieces.GET("", catalogHandler.ListSignaturePieces)
			signaturePieces.GET("/:id", catalogHandler.GetSignaturePiece)

			protected := signaturePieces.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", catalogHandler.CreateSignaturePiece)
				protected.PUT("/:id", catalogHandler.UpdateSignaturePiece)
				protected.DELETE("/:id", catalogHandler.DeleteSignaturePiece)
			}
		}
	}

	return r
}
