package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saborarte/ordering/internal/dal/interfaces/iorderrepo"
	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/order"
	"github.com/saborarte/ordering/internal/service/models/outbox"
	"github.com/saborarte/ordering/internal/service/services/cartsvc"
	"github.com/saborarte/ordering/internal/service/services/checkoutsvc"
	"github.com/saborarte/ordering/internal/service/services/deliverysvc"
	"github.com/saborarte/ordering/internal/service/services/trackingsvc"
)

type fakeCartRepo struct {
	lines []cartline.CartLine
}

func (r *fakeCartRepo) Load(_ context.Context) ([]cartline.CartLine, error) {
	return r.lines, nil
}

func (r *fakeCartRepo) Save(_ context.Context, lines []cartline.CartLine) error {
	r.lines = lines

	return nil
}

type fakeOrderRepo struct {
	current *order.Order
}

func (r *fakeOrderRepo) SaveCurrent(_ context.Context, o order.Order) error {
	r.current = &o

	return nil
}

func (r *fakeOrderRepo) LoadCurrent(_ context.Context) (order.Order, error) {
	if r.current == nil {
		return order.Order{}, iorderrepo.ErrNoCurrentOrder
	}

	return *r.current, nil
}

type fakeOutboxRepo struct {
	inserted []outbox.Message
}

func (r *fakeOutboxRepo) Insert(_ context.Context, msg outbox.Message) error {
	r.inserted = append(r.inserted, msg)

	return nil
}

func (r *fakeOutboxRepo) GetPendingMessages(_ context.Context, _ int) ([]outbox.Message, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) Delete(_ context.Context, _ int64) error { return nil }

func (r *fakeOutboxRepo) UpdateRetry(_ context.Context, _ int64, _ int, _ string, _ time.Time) error {
	return nil
}

func newTestRouter(t *testing.T) (*chi.Mux, *fakeOrderRepo) {
	t.Helper()

	cartSvc := cartsvc.MustNewCartService(
		cartsvc.WithCartRepository(&fakeCartRepo{}),
	)
	cartSvc.Init(context.Background())

	deliverySvc := deliverysvc.MustNewDeliveryService(
		deliverysvc.WithDelay(time.Millisecond),
	)

	orderRepo := &fakeOrderRepo{}
	checkoutSvc := checkoutsvc.MustNewCheckoutService(
		checkoutsvc.WithCart(cartSvc),
		checkoutsvc.WithDeliveryChecker(deliverySvc),
		checkoutsvc.WithOrderRepository(orderRepo),
		checkoutsvc.WithOutboxRepository(&fakeOutboxRepo{}),
	)

	trackingSvc := trackingsvc.MustNewTrackingService(
		trackingsvc.WithOrderRepository(orderRepo),
	)

	router := chi.NewMux()
	h := &HTTPTransport{
		router:   router,
		cart:     cartSvc,
		delivery: deliverySvc,
		checkout: checkoutSvc,
		tracking: trackingSvc,
	}
	h.RegisterRoutes()

	return router, orderRepo
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetMenu(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/menu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Restaurant struct {
			Name string `json:"name"`
		} `json:"restaurant"`
		Categories []struct {
			ID    string `json:"id"`
			Items []struct {
				ID int64 `json:"id"`
			} `json:"items"`
		} `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Restaurant.Name != "Sabor & Arte" {
		t.Errorf("expected restaurant name Sabor & Arte, got %q", resp.Restaurant.Name)
	}
	if len(resp.Categories) == 0 {
		t.Fatal("expected at least one category")
	}
}

func TestAddToCart(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"itemId":1,"quantity":2,"extras":["Queijo brie"],"removedIngredients":["Alho"],"observations":"sem sal"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Item       cartline.CartLine `json:"item"`
		TotalItems int               `json:"totalItems"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.TotalItems != 2 {
		t.Errorf("expected 2 total items, got %d", resp.TotalItems)
	}
	if resp.Item.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", resp.Item.Quantity)
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", `{"itemId":999,"quantity":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddToCartUnknownExtra(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"itemId":1,"quantity":1,"extras":["Caviar"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"itemId":1,"quantity":1}`)

	rec := doJSON(t, router, http.MethodPatch, "/api/cart/items/0", `{"quantity":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var lines []cartline.CartLine
	if err := json.NewDecoder(rec.Body).Decode(&lines); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("expected one line with quantity 3, got %+v", lines)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/cart/items/5", `{"quantity":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for out of range index, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/cart/items/0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", "")
	var cart struct {
		TotalItems int `json:"totalItems"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&cart); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if cart.TotalItems != 0 {
		t.Errorf("expected empty cart, got %d items", cart.TotalItems)
	}
}

func TestClearCart(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"itemId":1,"quantity":1}`)

	rec := doJSON(t, router, http.MethodDelete, "/api/cart", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCheckDelivery(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/delivery/check?cep=01310-000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Eligible bool   `json:"eligible"`
		City     string `json:"city"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Eligible {
		t.Error("expected CEP 01310-000 to be eligible")
	}
	if resp.City != "São Paulo" {
		t.Errorf("expected autofilled city São Paulo, got %q", resp.City)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/delivery/check?cep=123", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short CEP, got %d", rec.Code)
	}
}

func TestCheckoutValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"itemId":1,"quantity":1}`)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout",
		`{"customer":{"name":"","phone":"","paymentMethod":"pix"},"deliveryOption":"pickup"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 violations, got %v", resp.Errors)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout",
		`{"customer":{"name":"Ana","phone":"11999999999","paymentMethod":"pix"},"deliveryOption":"pickup"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutAndTrackPickupOrder(t *testing.T) {
	router, orderRepo := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", `{"itemId":1,"quantity":2}`)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout",
		`{"customer":{"name":"Ana","phone":"11999999999","paymentMethod":"pix"},"deliveryOption":"pickup"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Order       order.Order `json:"order"`
		ShortID     string      `json:"shortId"`
		SupportLink string      `json:"supportLink"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Order.Totals.TotalCents != 5600 {
		t.Errorf("expected total 5600 cents, got %d", resp.Order.Totals.TotalCents)
	}
	if resp.ShortID == "" || !strings.Contains(resp.SupportLink, "wa.me") {
		t.Errorf("expected short id and support link, got %q %q", resp.ShortID, resp.SupportLink)
	}
	if orderRepo.current == nil {
		t.Fatal("expected order snapshot to be persisted")
	}

	rec = doJSON(t, router, http.MethodPost, "/api/orders/current/track", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var view trackingsvc.TrackingView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Status != order.StatusConfirmed {
		t.Errorf("expected tracking to start at confirmed, got %s", view.Status)
	}
	if len(view.Steps) != 3 {
		t.Errorf("expected 3 pickup steps, got %d", len(view.Steps))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/orders/current", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCurrentOrderNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/orders/current", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/orders/current/track", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
