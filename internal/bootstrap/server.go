package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/service/customers"
	"github.com/Domenick1991/hotelbooking/internal/service/payments"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/Domenick1991/hotelbooking/internal/service/rooms"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Rooms        rooms.RoomUseCase
	Reservations reservation.ReservationUseCase
	Customers    customers.CustomerUseCase
	Payments     payments.PaymentUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, services Services) error {
	router := newRouter(cfg, services)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func newRouter(cfg *config.Config, services Services) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	api.NewRoomHandler(services.Rooms, services.Reservations).Register(router.Group("/rooms"))
	api.NewReservationHandler(services.Reservations).Register(router.Group("/reservations"))
	api.NewCustomerHandler(services.Customers).Register(router.Group("/customers"))
	api.NewPaymentHandler(services.Payments).Register(router.Group("/payments"))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/hotelbooking.swagger.json"),
		)))
	}

	return router
}
