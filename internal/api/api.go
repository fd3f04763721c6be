package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/slidesync/SlideBot/internal/api/routes"
	"github.com/slidesync/SlideBot/internal/container"
	"github.com/slidesync/SlideBot/pkg/config"
)

// StartApi serves the read-only operator API until ctx is cancelled.
// It only ever reads the delivery-history database, never the bot's
// in-memory session state, so it is safe next to the event loop.
func StartApi(ctx context.Context, app *container.AppContainer) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.RegisterRoutes(router, app)

	srv := &http.Server{
		Addr:    config.APIAddr,
		Handler: router,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Debug("status API listening", "addr", config.APIAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
