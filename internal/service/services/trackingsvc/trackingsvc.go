package trackingsvc

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/saborarte/ordering/internal/dal/interfaces/iorderrepo"
	"github.com/saborarte/ordering/internal/service/models/order"
)

// ErrOrderNotFound means no order snapshot exists to track. It is a
// normal terminal state, not a failure: the caller offers a way back to
// the menu.
var ErrOrderNotFound = errors.New("order not found")

// Simulated fulfillment schedule, relative to tracking start.
const (
	preparingAfter      = 3 * time.Second
	readyAfter          = 15 * time.Second
	outForDeliveryAfter = 25 * time.Second
	deliveredAfter      = 45 * time.Second
)

// Estimated fulfillment duration per mode, added to the order creation
// time for the "until HH:MM" display.
const (
	deliveryEstimate = 50 * time.Minute
	pickupEstimate   = 30 * time.Minute
)

// Step is one display entry of the tracking timeline.
type Step struct {
	Status      order.Status `json:"status"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

// StatusAt is the transition function of the fulfillment state machine:
// it maps elapsed tracking time to a status. Pickup ends at ready,
// delivery continues through out-for-delivery to delivered.
func StatusAt(opt order.DeliveryOption, elapsed time.Duration) order.Status {
	switch {
	case elapsed < preparingAfter:
		return order.StatusConfirmed
	case elapsed < readyAfter:
		return order.StatusPreparing
	}

	if opt != order.DeliveryOptionDelivery {
		return order.StatusReady
	}

	switch {
	case elapsed < outForDeliveryAfter:
		return order.StatusReady
	case elapsed < deliveredAfter:
		return order.StatusOutForDelivery
	default:
		return order.StatusDelivered
	}
}

// Steps returns the timeline for the given mode.
func Steps(opt order.DeliveryOption) []Step {
	steps := []Step{
		{Status: order.StatusConfirmed, Title: "Pedido Confirmado", Description: "Seu pedido foi recebido"},
		{Status: order.StatusPreparing, Title: "Preparando", Description: "Estamos preparando seu pedido"},
	}

	if opt == order.DeliveryOptionDelivery {
		steps = append(steps,
			Step{Status: order.StatusOutForDelivery, Title: "Saiu para Entrega", Description: "Seu pedido está a caminho"},
			Step{Status: order.StatusDelivered, Title: "Entregue", Description: "Pedido entregue com sucesso"},
		)
	} else {
		steps = append(steps,
			Step{Status: order.StatusReady, Title: "Pronto para Retirada", Description: "Pode vir buscar no balcão"},
		)
	}

	return steps
}

// StepIndex maps a status to its active timeline entry. For delivery,
// ready and out-for-delivery share the "Saiu para Entrega" step.
func StepIndex(opt order.DeliveryOption, status order.Status) int {
	switch status {
	case order.StatusConfirmed:
		return 0
	case order.StatusPreparing:
		return 1
	case order.StatusReady, order.StatusOutForDelivery:
		return 2
	case order.StatusDelivered:
		return 3
	}

	return 0
}

// EstimatedReadyAt is the clock time the order should be done by.
func EstimatedReadyAt(createdAt time.Time, opt order.DeliveryOption) time.Time {
	if opt == order.DeliveryOptionDelivery {
		return createdAt.Add(deliveryEstimate)
	}

	return createdAt.Add(pickupEstimate)
}

// TrackingView is everything the tracking page renders.
type TrackingView struct {
	Order             order.Order  `json:"order"`
	Status            order.Status `json:"status"`
	Steps             []Step       `json:"steps"`
	ActiveStep        int          `json:"activeStep"`
	EstimatedDelivery string       `json:"estimatedDelivery"`
	SupportLink       string       `json:"supportLink"`
}

// session is the in-memory tracking clock. It is never persisted, so a
// re-mount or process restart resets the simulation to confirmed.
type session struct {
	orderID   string
	startedAt time.Time
}

// TrackingService derives the simulated fulfillment status of the
// current order from elapsed session time.
type TrackingService struct {
	orderRepo iorderrepo.IOrderRepository
	now       func() time.Time

	mu      sync.Mutex
	current *session
}

// option is a function that configures the TrackingService.
type option func(*TrackingService)

// MustNewTrackingService creates a new TrackingService.
func MustNewTrackingService(opts ...option) *TrackingService {
	s := &TrackingService{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(r iorderrepo.IOrderRepository) option {
	return func(s *TrackingService) { s.orderRepo = r }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *TrackingService) { s.now = now }
}

// StartTracking mounts the tracking view: it loads the current order and
// restarts the simulated clock at confirmed. Missing or unreadable
// snapshots yield ErrOrderNotFound and leave no session behind.
func (s *TrackingService) StartTracking(ctx context.Context) (TrackingView, error) {
	o, err := s.loadOrder(ctx)
	if err != nil {
		return TrackingView{}, err
	}

	s.mu.Lock()
	s.current = &session{orderID: o.ID, startedAt: s.now()}
	s.mu.Unlock()

	return s.view(o, order.StatusConfirmed), nil
}

// CurrentView returns the order with its status derived from the
// session clock, starting a session if none is active.
func (s *TrackingService) CurrentView(ctx context.Context) (TrackingView, error) {
	o, err := s.loadOrder(ctx)
	if err != nil {
		return TrackingView{}, err
	}

	s.mu.Lock()
	if s.current == nil || s.current.orderID != o.ID {
		s.current = &session{orderID: o.ID, startedAt: s.now()}
	}
	elapsed := s.now().Sub(s.current.startedAt)
	s.mu.Unlock()

	return s.view(o, StatusAt(o.DeliveryOption, elapsed)), nil
}

func (s *TrackingService) loadOrder(ctx context.Context) (order.Order, error) {
	o, err := s.orderRepo.LoadCurrent(ctx)
	if errors.Is(err, iorderrepo.ErrNoCurrentOrder) {
		return order.Order{}, ErrOrderNotFound
	}
	if err != nil {
		slog.Error("Failed to read order snapshot, treating as not found", "error", err)

		return order.Order{}, ErrOrderNotFound
	}

	return o, nil
}

func (s *TrackingService) view(o order.Order, status order.Status) TrackingView {
	return TrackingView{
		Order:             o,
		Status:            status,
		Steps:             Steps(o.DeliveryOption),
		ActiveStep:        StepIndex(o.DeliveryOption, status),
		EstimatedDelivery: EstimatedReadyAt(o.CreatedAt, o.DeliveryOption).Format("15:04"),
		SupportLink:       o.SupportLink(),
	}
}
