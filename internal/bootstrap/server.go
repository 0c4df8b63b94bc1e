package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avelov/flightdesk/api"
	"github.com/avelov/flightdesk/config"
	"github.com/avelov/flightdesk/internal/service/account"
	"github.com/avelov/flightdesk/internal/service/booking"
	"github.com/avelov/flightdesk/internal/service/flights"
	"github.com/avelov/flightdesk/internal/service/profile"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	accountSvc account.AccountUseCase,
	profileSvc profile.ProfileUseCase,
) error {
	engine := newEngine(cfg, flightSvc, bookingSvc, accountSvc, profileSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	accountSvc account.AccountUseCase,
	profileSvc profile.ProfileUseCase,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	root := engine.Group("/api")
	api.NewFlightHandler(flightSvc).Register(root.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(root.Group("/bookings"), root.Group("/admin/bookings"))
	api.NewAccountHandler(accountSvc).Register(root)
	api.NewProfileHandler(profileSvc).Register(root.Group("/profiles"))

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/api.json"),
		)))
	}

	return engine
}
