package routes

import (
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions      = "/sessions"
	PathSubscriptions = "/subscriptions"
	PathWebhooks      = "/webhooks"
	PathAdmin         = "/admin"
)

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, costHandler *handlers.CostHandler, streamHandler *handlers.StreamHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("", sessionHandler.ListSessions)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.POST("/:id/retry", sessionHandler.RetrySession)
		sessions.GET("/:id/costs", costHandler.GetSessionCosts)
		sessions.GET("/:id/stream", streamHandler.StreamSession)
	}
}

func addSubscriptionRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionHandler) {
	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("/checkout", h.Checkout)
		subscriptions.GET("/me", h.GetMySubscription)
	}
}

// Mercado Pago cannot send a user token; the handler checks x-signature.
func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionHandler) {
	rg.POST(PathWebhooks+"/mercadopago", h.MercadoPagoWebhook)
}

func addAdminRoutes(rg *gin.RouterGroup, costHandler *handlers.CostHandler) {
	costs := rg.Group("/costs")
	{
		costs.GET("/providers", costHandler.GetProviderCosts)
		costs.GET("/trends", costHandler.GetCostTrends)
	}
}
