package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/DanCouper/joust/internal/config"
	"github.com/DanCouper/joust/internal/database"
	"github.com/DanCouper/joust/internal/game"
	"github.com/DanCouper/joust/internal/game/battleships"
	"github.com/DanCouper/joust/internal/game/crosses"
	"github.com/DanCouper/joust/internal/handlers"
	"github.com/DanCouper/joust/internal/middleware"
	"github.com/DanCouper/joust/internal/session"
	"github.com/DanCouper/joust/internal/tracing"
	"github.com/DanCouper/joust/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	shutdownTracing, err := tracing.InitTracer("joust", cfg.AppEnv)
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown error: %v", err)
		}
	}()

	db, err := database.OpenAndMigrate(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db open/migrate: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}()

	// Closed dispatch table of game types.
	engines := game.NewRegistry()
	engines.Register(battleships.GameType, battleships.New)
	engines.Register(crosses.GameType, crosses.New)

	registry := session.NewRegistry()
	supervisor := session.NewSupervisor(engines, registry, db, cfg.GameQueueSize)
	svc := session.NewService(supervisor, registry, cfg.GameCallTimeout)

	hubRef := websocket.NewHubRef(websocket.NewHub())
	go runHub(hubRef)

	handlers.SetWebSocketOriginPolicy(cfg.AppEnv == "development", cfg.DevWebSocketsAllowAll, cfg.WSAllowedOrigins)
	handlers.SetHubProvider(hubRef.Get)

	r := gin.Default()
	r.Use(otelgin.Middleware("joust"))
	r.Use(middleware.DevCORS(cfg))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	handlers.RegisterGameRoutes(api, svc)
	handlers.RegisterSessionRoutes(api, db)

	r.GET("/ws", handlers.WebSocketHandler())

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %v", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	if h, ok := hubRef.Get(); ok && h != nil {
		h.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}

// runHub keeps a hub running, replacing it with a fresh instance if Run
// panics. A normal return (Stop) ends the loop.
func runHub(hubRef *websocket.HubRef) {
	for {
		hub, ok := hubRef.Get()
		if !ok || hub == nil {
			time.Sleep(1 * time.Second)
			hubRef.Set(websocket.NewHub())
			continue
		}

		panicked := false
		func() {
			defer func() {
				if r := recover(); r != nil {
					panicked = true
					log.Printf("hub.Run panic: %v\n%s", r, debug.Stack())
				}
			}()
			hub.Run()
		}()

		if !panicked {
			return
		}
		hub.Stop()
		hubRef.Set(websocket.NewHub())
		time.Sleep(1 * time.Second)
	}
}
