package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/acg-data/bizgenius-sub001/docs"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/handlers"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"
	"github.com/acg-data/bizgenius-sub001/internal/app"
	appconfig "github.com/acg-data/bizgenius-sub001/internal/config"
	"github.com/acg-data/bizgenius-sub001/internal/usecase"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the usecases and collaborators the routes are bound to.
type Dependencies struct {
	Sessions      usecase.ISessionUseCase
	Costs         usecase.ICostUseCase
	Subscriptions usecase.ISubscriptionUseCase
	Events        interfaces.ISessionEventSubscriber
	Auth          *middleware.Authenticator
	WebhookSecret string
}

// Run will start the server and block until SIGINT/SIGTERM, then drain HTTP
// requests and in-flight generations.
func Run(cfg appconfig.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	auth, err := middleware.NewAuthenticator(cfg)
	if err != nil {
		a.Close()
		return err
	}

	router := NewRouter(Dependencies{
		Sessions:      a.Sessions,
		Costs:         a.Costs,
		Subscriptions: a.Subscriptions,
		Events:        a.Broadcaster,
		Auth:          auth,
		WebhookSecret: cfg.MercadoPagoWebhookSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.Close()
			return err
		}
	case <-ctx.Done():
	}
	log.Printf("[http] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] graceful shutdown failed: %v", err)
	}
	return a.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessionHandler := handlers.NewSessionHandler(deps.Sessions)
	costHandler := handlers.NewCostHandler(deps.Costs, deps.Sessions)
	subscriptionHandler := handlers.NewSubscriptionHandler(deps.Subscriptions, deps.WebhookSecret)
	streamHandler := handlers.NewStreamHandler(deps.Sessions, deps.Events)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, subscriptionHandler)

	authed := v1.Group("", deps.Auth.RequireUser())
	addSessionRoutes(authed, sessionHandler, costHandler, streamHandler)
	addSubscriptionRoutes(authed, subscriptionHandler)
	addAdminRoutes(authed.Group(PathAdmin, deps.Auth.RequireAdmin()), costHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
