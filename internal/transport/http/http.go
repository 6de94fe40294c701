package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/order"
	"github.com/saborarte/ordering/internal/service/services/checkoutsvc"
	"github.com/saborarte/ordering/internal/service/services/deliverysvc"
	"github.com/saborarte/ordering/internal/service/services/trackingsvc"
	addtocart "github.com/saborarte/ordering/internal/transport/http/add_to_cart"
	checkdelivery "github.com/saborarte/ordering/internal/transport/http/check_delivery"
	"github.com/saborarte/ordering/internal/transport/http/checkout"
	clearcart "github.com/saborarte/ordering/internal/transport/http/clear_cart"
	getcart "github.com/saborarte/ordering/internal/transport/http/get_cart"
	getcurrentorder "github.com/saborarte/ordering/internal/transport/http/get_current_order"
	getmenu "github.com/saborarte/ordering/internal/transport/http/get_menu"
	removecartitem "github.com/saborarte/ordering/internal/transport/http/remove_cart_item"
	trackorder "github.com/saborarte/ordering/internal/transport/http/track_order"
	updatecartitem "github.com/saborarte/ordering/internal/transport/http/update_cart_item"
	"github.com/saborarte/ordering/pkg/http/middleware/trace"
	"github.com/saborarte/ordering/pkg/logger"
	"github.com/spf13/viper"
)

type cartService interface {
	AddLine(ctx context.Context, line cartline.CartLine)
	UpdateQuantity(ctx context.Context, index, quantity int)
	RemoveLine(ctx context.Context, index int)
	Clear(ctx context.Context)
	Lines(ctx context.Context) []cartline.CartLine
	TotalItems(ctx context.Context) int
	SubtotalCents(ctx context.Context) int64
}

type deliveryService interface {
	Check(ctx context.Context, cep string) (deliverysvc.Result, error)
}

type checkoutService interface {
	Confirm(ctx context.Context, in checkoutsvc.CheckoutInput) (order.Order, error)
}

type trackingService interface {
	StartTracking(ctx context.Context) (trackingsvc.TrackingView, error)
	CurrentView(ctx context.Context) (trackingsvc.TrackingView, error)
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	cart     cartService
	delivery deliveryService
	checkout checkoutService
	tracking trackingService
}

func NewHTTPTransport(
	cart cartService,
	delivery deliveryService,
	checkoutSvc checkoutService,
	tracking trackingService,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		cart:     cart,
		delivery: delivery,
		checkout: checkoutSvc,
		tracking: tracking,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown drains in-flight requests before the process exits.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/menu", h.getMenu)

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addToCart)
		r.Patch("/cart/items/{index}", h.updateCartItem)
		r.Delete("/cart/items/{index}", h.removeCartItem)
		r.Delete("/cart", h.clearCart)

		r.Get("/delivery/check", h.checkDelivery)

		r.Post("/checkout", h.confirmCheckout)

		r.Get("/orders/current", h.getCurrentOrder)
		r.Post("/orders/current/track", h.trackOrder)
	})
}

func (h *HTTPTransport) getMenu(w http.ResponseWriter, r *http.Request) {
	getmenu.GetMenu(w, r)
}

func (h *HTTPTransport) getCart(w http.ResponseWriter, r *http.Request) {
	getcart.GetCart(w, r, h.cart)
}

func (h *HTTPTransport) addToCart(w http.ResponseWriter, r *http.Request) {
	addtocart.AddToCart(w, r, h.cart)
}

func (h *HTTPTransport) updateCartItem(w http.ResponseWriter, r *http.Request) {
	updatecartitem.UpdateCartItem(w, r, h.cart)
}

func (h *HTTPTransport) removeCartItem(w http.ResponseWriter, r *http.Request) {
	removecartitem.RemoveCartItem(w, r, h.cart)
}

func (h *HTTPTransport) clearCart(w http.ResponseWriter, r *http.Request) {
	clearcart.ClearCart(w, r, h.cart)
}

func (h *HTTPTransport) checkDelivery(w http.ResponseWriter, r *http.Request) {
	checkdelivery.CheckDelivery(w, r, h.delivery)
}

func (h *HTTPTransport) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	checkout.Checkout(w, r, h.checkout)
}

func (h *HTTPTransport) getCurrentOrder(w http.ResponseWriter, r *http.Request) {
	getcurrentorder.GetCurrentOrder(w, r, h.tracking)
}

func (h *HTTPTransport) trackOrder(w http.ResponseWriter, r *http.Request) {
	trackorder.TrackOrder(w, r, h.tracking)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
