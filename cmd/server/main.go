package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Francieverton/ACOLD-MKT/internal/config"
	"github.com/Francieverton/ACOLD-MKT/internal/events"
	"github.com/Francieverton/ACOLD-MKT/internal/httpserver"
	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/router"
	"github.com/Francieverton/ACOLD-MKT/internal/service"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
	"github.com/Francieverton/ACOLD-MKT/internal/store"
)

// purchaseDelay mirrors the original confirmation delay on direct buys.
const purchaseDelay = 1500 * time.Millisecond

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	ctx := context.Background()

	st, err := store.Open(ctx, configuration.STORE_PATH, configuration.DATABASE_URL)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	app := state.New(st, logger)
	if err := app.Load(logging.IntoContext(ctx, logger)); err != nil {
		log.Fatalf("state load error: %v", err)
	}

	var publisher events.Publisher
	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
		publisher = producer
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	handlers := &httpserver.Handlers{
		App:       app,
		Router:    router.New(app),
		Auth:      &service.AuthService{App: app, Events: publisher},
		Cart:      &service.CartService{App: app, Events: publisher},
		Purchase:  &service.PurchaseService{App: app, Events: publisher, Delay: purchaseDelay},
		Products:  &service.ProductService{App: app, Events: publisher},
		JWTSecret: jwtSecret,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(reqCtx))
			return next(c)
		}
	})

	httpserver.Register(e, handlers)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := st.Close(); err != nil {
		log.Printf("store close error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
