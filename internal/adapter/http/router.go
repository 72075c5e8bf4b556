package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
)

type RouterConfig struct {
	AllowedOrigins []string
}

func NewRouter(service *storefront.Service, log logger.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(log), RecoveryMiddleware(log))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	h := NewStorefrontHandler(service, log)

	r.GET("/health", h.Health)
	r.GET("/moods", h.ListMoods)
	r.GET("/drinks", h.ListDrinks)
	r.GET("/recommendations", h.Recommend)

	r.POST("/sessions", h.CreateSession)
	sessions := r.Group("/sessions/:id")
	{
		sessions.GET("", h.GetSession)
		sessions.DELETE("", h.DeleteSession)
		sessions.POST("/mood", h.SelectMood)

		sessions.GET("/recommendations", h.GetRecommendations)
		sessions.PATCH("/recommendations", h.UpdateRecommendations)
		sessions.POST("/recommendations/page", h.ChangePage)
		sessions.POST("/recommendations/clear", h.ClearFilters)

		sessions.POST("/drinks/:drink_id/select", h.SelectDrink)
		sessions.POST("/drinks/:drink_id/cart", h.AddToCart)
		sessions.POST("/drinks/:drink_id/share", h.Share)
		sessions.POST("/drinks/:drink_id/favorite", h.ToggleFavorite)

		sessions.GET("/visualization", h.GetVisualization)
		sessions.DELETE("/visualization", h.CloseVisualization)

		sessions.GET("/ambiance", h.GetAmbiance)
		sessions.PATCH("/ambiance", h.UpdateAmbiance)

		sessions.GET("/checkout", h.GetCheckout)
		sessions.PATCH("/checkout", h.UpdateCheckout)
		sessions.POST("/checkout/advance", h.AdvanceCheckout)
		sessions.POST("/checkout/retreat", h.RetreatCheckout)
		sessions.POST("/checkout/open", h.OpenCheckout)
		sessions.POST("/checkout/close", h.CloseCheckout)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
