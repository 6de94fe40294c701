package checkoutsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/saborarte/ordering/internal/dal/interfaces/iorderrepo"
	"github.com/saborarte/ordering/internal/dal/interfaces/ioutboxrepo"
	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/customer"
	"github.com/saborarte/ordering/internal/service/models/order"
	"github.com/saborarte/ordering/internal/service/models/outbox"
	"github.com/saborarte/ordering/internal/service/services/deliverysvc"
)

// User-facing validation messages, collected as a batch.
const (
	MsgNameRequired         = "Nome completo é obrigatório"
	MsgPhoneRequired        = "Telefone é obrigatório"
	MsgDeliveryUnavailable  = "Verifique se entregamos na sua região"
	MsgStreetRequired       = "Endereço (rua) é obrigatório para entrega"
	MsgNumberRequired       = "Número do endereço é obrigatório para entrega"
	MsgNeighborhoodRequired = "Bairro é obrigatório para entrega"
	MsgCityRequired         = "Cidade é obrigatória para entrega"
	MsgCEPRequired          = "CEP é obrigatório para entrega"
)

// ErrEmptyCart rejects checkout when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// Broker destination for order-confirmed notifications.
const (
	NotificationQueue      = "orders.notifications"
	NotificationRoutingKey = "orders.notifications"
)

const outboxMaxRetries = 5

// ValidationError carries the full set of human-readable rule violations.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "checkout validation failed: " + strings.Join(e.Messages, "; ")
}

// CheckoutInput is everything the customer submits at confirmation time.
type CheckoutInput struct {
	Customer       customer.CustomerInfo
	DeliveryOption order.DeliveryOption
}

type cart interface {
	Lines(ctx context.Context) []cartline.CartLine
	SubtotalCents(ctx context.Context) int64
}

type deliveryChecker interface {
	LastResult() (deliverysvc.Result, bool)
}

// CheckoutService validates checkout input and turns the live cart into
// an immutable order snapshot.
type CheckoutService struct {
	cart       cart
	delivery   deliveryChecker
	orderRepo  iorderrepo.IOrderRepository
	outboxRepo ioutboxrepo.IOutboxRepository

	now   func() time.Time
	newID func() string
}

// option is a function that configures the CheckoutService.
type option func(*CheckoutService)

// MustNewCheckoutService creates a new CheckoutService.
func MustNewCheckoutService(opts ...option) *CheckoutService {
	s := &CheckoutService{
		now:   time.Now,
		newID: order.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithCart(c cart) option {
	return func(s *CheckoutService) { s.cart = c }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithDeliveryChecker(d deliveryChecker) option {
	return func(s *CheckoutService) { s.delivery = d }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(r iorderrepo.IOrderRepository) option {
	return func(s *CheckoutService) { s.orderRepo = r }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithOutboxRepository(r ioutboxrepo.IOutboxRepository) option {
	return func(s *CheckoutService) { s.outboxRepo = r }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *CheckoutService) { s.now = now }
}

// Validate evaluates the whole rule set and returns every violation, not
// just the first one. Pickup orders skip the address rules entirely.
func (s *CheckoutService) Validate(in CheckoutInput) []string {
	var msgs []string

	if strings.TrimSpace(in.Customer.Name) == "" {
		msgs = append(msgs, MsgNameRequired)
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		msgs = append(msgs, MsgPhoneRequired)
	}

	if in.DeliveryOption == order.DeliveryOptionDelivery {
		res, ok := s.delivery.LastResult()
		if !ok || !res.Eligible {
			msgs = append(msgs, MsgDeliveryUnavailable)
		}

		addr := in.Customer.Address
		if strings.TrimSpace(addr.Street) == "" {
			msgs = append(msgs, MsgStreetRequired)
		}
		if strings.TrimSpace(addr.Number) == "" {
			msgs = append(msgs, MsgNumberRequired)
		}
		if strings.TrimSpace(addr.Neighborhood) == "" {
			msgs = append(msgs, MsgNeighborhoodRequired)
		}
		if strings.TrimSpace(addr.City) == "" {
			msgs = append(msgs, MsgCityRequired)
		}
		if strings.TrimSpace(addr.CEP) == "" {
			msgs = append(msgs, MsgCEPRequired)
		}
	}

	return msgs
}

// Confirm validates the input and, on success, snapshots the cart into
// the single current order, overwriting any previous one. The live cart
// is left untouched; the tracking view never reads it again.
func (s *CheckoutService) Confirm(ctx context.Context, in CheckoutInput) (order.Order, error) {
	if msgs := s.Validate(in); len(msgs) > 0 {
		return order.Order{}, &ValidationError{Messages: msgs}
	}

	lines := s.cart.Lines(ctx)
	if len(lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	subtotal := s.cart.SubtotalCents(ctx)

	var fee int64
	if in.DeliveryOption == order.DeliveryOptionDelivery {
		fee = order.DeliveryFeeCents
	}

	items := make([]cartline.CartLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, l.Clone())
	}

	o := order.Order{
		ID:             s.newID(),
		Items:          items,
		Customer:       in.Customer,
		DeliveryOption: in.DeliveryOption,
		Totals: order.Totals{
			SubtotalCents:    subtotal,
			DeliveryFeeCents: fee,
			TotalCents:       subtotal + fee,
		},
		EstimatedTime: in.DeliveryOption.EstimatedTimeLabel(),
		Status:        order.StatusConfirmed,
		CreatedAt:     s.now(),
	}

	if err := s.orderRepo.SaveCurrent(ctx, o); err != nil {
		return order.Order{}, fmt.Errorf("failed to save order snapshot: %w", err)
	}

	s.enqueueNotification(ctx, o)

	slog.Info("Order confirmed", "order_id", o.ShortID(), "delivery_option", o.DeliveryOption, "total_cents", o.Totals.TotalCents)

	return o, nil
}

// enqueueNotification records an order-confirmed event for the broker
// worker. Best effort: the order stands even if the outbox write fails.
func (s *CheckoutService) enqueueNotification(ctx context.Context, o order.Order) {
	if s.outboxRepo == nil {
		return
	}

	payload, err := json.Marshal(struct {
		OrderID        string    `json:"orderId"`
		ShortID        string    `json:"shortId"`
		Status         string    `json:"status"`
		DeliveryOption string    `json:"deliveryOption"`
		TotalCents     int64     `json:"totalCents"`
		CreatedAt      time.Time `json:"createdAt"`
	}{
		OrderID:        o.ID,
		ShortID:        o.ShortID(),
		Status:         string(o.Status),
		DeliveryOption: o.DeliveryOption.String(),
		TotalCents:     o.Totals.TotalCents,
		CreatedAt:      o.CreatedAt,
	})
	if err != nil {
		slog.Error("Failed to encode order notification", "order_id", o.ShortID(), "error", err)

		return
	}

	now := s.now()
	msg := outbox.Message{
		QueueName:   NotificationQueue,
		RoutingKey:  NotificationRoutingKey,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  outboxMaxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	}

	if err := s.outboxRepo.Insert(ctx, msg); err != nil {
		slog.Error("Failed to enqueue order notification", "order_id", o.ShortID(), "error", err)
	}
}
