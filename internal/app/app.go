package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saborarte/ordering/internal/dal/rabbitmq"
	cartrepo "github.com/saborarte/ordering/internal/dal/repositories/cart/sqlite"
	orderrepo "github.com/saborarte/ordering/internal/dal/repositories/order/sqlite"
	outboxrepo "github.com/saborarte/ordering/internal/dal/repositories/outbox/sqlite"
	"github.com/saborarte/ordering/internal/dal/sqlite"
	"github.com/saborarte/ordering/internal/otel"
	"github.com/saborarte/ordering/internal/service/services/cartsvc"
	"github.com/saborarte/ordering/internal/service/services/checkoutsvc"
	"github.com/saborarte/ordering/internal/service/services/deliverysvc"
	"github.com/saborarte/ordering/internal/service/services/trackingsvc"
	httptransport "github.com/saborarte/ordering/internal/transport/http"
	"github.com/saborarte/ordering/internal/worker/outbox"
	"github.com/spf13/viper"
)

// App represents the application.
type App struct {
	cartSvc      *cartsvc.CartService
	transport    *httptransport.HTTPTransport
	sqliteClient *sqlite.Client
	otel         *otel.OtelController
	rabbitClient *rabbitmq.Client
	outboxWorker *outbox.Worker
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	sqliteClient := sqlite.MustNewClient()

	cartRepo := cartrepo.NewCartRepository(sqliteClient)
	orderRepo := orderrepo.NewOrderRepository(sqliteClient)
	outboxRepo := outboxrepo.NewOutboxRepository(sqliteClient)

	cartSvc := cartsvc.MustNewCartService(
		cartsvc.WithCartRepository(cartRepo),
	)

	deliverySvc := deliverysvc.MustNewDeliveryService()
	if ms := viper.GetInt("delivery.check_delay_ms"); ms > 0 {
		deliverySvc = deliverysvc.MustNewDeliveryService(
			deliverysvc.WithDelay(time.Duration(ms) * time.Millisecond),
		)
	}

	checkoutSvc := checkoutsvc.MustNewCheckoutService(
		checkoutsvc.WithCart(cartSvc),
		checkoutsvc.WithDeliveryChecker(deliverySvc),
		checkoutsvc.WithOrderRepository(orderRepo),
		checkoutsvc.WithOutboxRepository(outboxRepo),
	)

	trackingSvc := trackingsvc.MustNewTrackingService(
		trackingsvc.WithOrderRepository(orderRepo),
	)

	transport := httptransport.NewHTTPTransport(cartSvc, deliverySvc, checkoutSvc, trackingSvc)
	transport.RegisterRoutes()

	app := &App{
		cartSvc:      cartSvc,
		transport:    transport,
		sqliteClient: sqliteClient,
		otel:         otelController,
	}

	if viper.GetBool("rabbitmq.enabled") {
		app.rabbitClient = rabbitmq.MustNewClient()
		app.outboxWorker = outbox.NewWorker(outboxRepo, app.rabbitClient)

		if _, err := app.rabbitClient.DeclareQueue(rabbitmq.DeclareQueueConfig{
			Name:    checkoutsvc.NotificationQueue,
			Durable: true,
		}); err != nil {
			panic("Failed to declare notification queue: " + err.Error())
		}
	}

	return app
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.cartSvc.Init(ctx)

	if a.outboxWorker != nil {
		go a.outboxWorker.Start(ctx)
	}

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.transport.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if a.outboxWorker != nil {
		a.outboxWorker.Stop()
	}

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if err := a.sqliteClient.Close(); err != nil {
		slog.Error("Database connection close error", "error", err)
	} else {
		slog.Info("Database connection closed gracefully")
	}

	if err := a.otel.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
