package trackingsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saborarte/ordering/internal/dal/interfaces/iorderrepo"
	"github.com/saborarte/ordering/internal/service/models/order"
)

type fakeOrderRepo struct {
	current *order.Order
	loadErr error
}

func (f *fakeOrderRepo) SaveCurrent(_ context.Context, o order.Order) error {
	f.current = &o

	return nil
}

func (f *fakeOrderRepo) LoadCurrent(context.Context) (order.Order, error) {
	if f.loadErr != nil {
		return order.Order{}, f.loadErr
	}
	if f.current == nil {
		return order.Order{}, iorderrepo.ErrNoCurrentOrder
	}

	return *f.current, nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTracked(t *testing.T, opt order.DeliveryOption) (*TrackingService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2026, 8, 31, 19, 0, 0, 0, time.Local)}
	repo := &fakeOrderRepo{current: &order.Order{
		ID:             "order-1756665600-abcdef",
		DeliveryOption: opt,
		Status:         order.StatusConfirmed,
		CreatedAt:      clock.t,
	}}
	svc := MustNewTrackingService(WithOrderRepository(repo), WithClock(clock.Now))

	if _, err := svc.StartTracking(context.Background()); err != nil {
		t.Fatal(err)
	}

	return svc, clock
}

func TestStatusAtPickup(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    order.Status
	}{
		{elapsed: 0, want: order.StatusConfirmed},
		{elapsed: 2 * time.Second, want: order.StatusConfirmed},
		{elapsed: 3 * time.Second, want: order.StatusPreparing},
		{elapsed: 14 * time.Second, want: order.StatusPreparing},
		{elapsed: 15 * time.Second, want: order.StatusReady},
		{elapsed: time.Hour, want: order.StatusReady},
	}

	for _, tt := range tests {
		if got := StatusAt(order.DeliveryOptionPickup, tt.elapsed); got != tt.want {
			t.Errorf("StatusAt(pickup, %v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestStatusAtDelivery(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    order.Status
	}{
		{elapsed: 0, want: order.StatusConfirmed},
		{elapsed: 3 * time.Second, want: order.StatusPreparing},
		{elapsed: 15 * time.Second, want: order.StatusReady},
		{elapsed: 25 * time.Second, want: order.StatusOutForDelivery},
		{elapsed: 44 * time.Second, want: order.StatusOutForDelivery},
		{elapsed: 45 * time.Second, want: order.StatusDelivered},
		{elapsed: time.Hour, want: order.StatusDelivered},
	}

	for _, tt := range tests {
		if got := StatusAt(order.DeliveryOptionDelivery, tt.elapsed); got != tt.want {
			t.Errorf("StatusAt(delivery, %v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestStepsPerMode(t *testing.T) {
	pickup := Steps(order.DeliveryOptionPickup)
	if len(pickup) != 3 {
		t.Fatalf("pickup steps = %d, want 3", len(pickup))
	}
	if pickup[2].Title != "Pronto para Retirada" {
		t.Errorf("pickup terminal step = %q", pickup[2].Title)
	}

	delivery := Steps(order.DeliveryOptionDelivery)
	if len(delivery) != 4 {
		t.Fatalf("delivery steps = %d, want 4", len(delivery))
	}
	if delivery[2].Title != "Saiu para Entrega" || delivery[3].Title != "Entregue" {
		t.Errorf("delivery steps = %+v", delivery)
	}
}

func TestStepIndexSharesOutForDeliveryStep(t *testing.T) {
	if StepIndex(order.DeliveryOptionDelivery, order.StatusReady) != 2 {
		t.Error("ready should highlight the out-for-delivery step")
	}
	if StepIndex(order.DeliveryOptionDelivery, order.StatusOutForDelivery) != 2 {
		t.Error("out-for-delivery should highlight step 2")
	}
	if StepIndex(order.DeliveryOptionDelivery, order.StatusDelivered) != 3 {
		t.Error("delivered should highlight step 3")
	}
	if StepIndex(order.DeliveryOptionPickup, order.StatusReady) != 2 {
		t.Error("pickup ready should highlight step 2")
	}
}

func TestCurrentViewAdvancesWithClock(t *testing.T) {
	svc, clock := newTracked(t, order.DeliveryOptionDelivery)
	ctx := context.Background()

	view, err := svc.CurrentView(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if view.Status != order.StatusConfirmed {
		t.Errorf("status at mount = %q", view.Status)
	}

	clock.Advance(16 * time.Second)
	view, err = svc.CurrentView(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if view.Status != order.StatusReady {
		t.Errorf("status at +16s = %q, want ready", view.Status)
	}
	if view.ActiveStep != 2 {
		t.Errorf("active step = %d, want 2", view.ActiveStep)
	}
}

func TestRemountResetsClock(t *testing.T) {
	svc, clock := newTracked(t, order.DeliveryOptionDelivery)
	ctx := context.Background()

	clock.Advance(30 * time.Second)
	view, err := svc.CurrentView(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if view.Status != order.StatusOutForDelivery {
		t.Fatalf("status before remount = %q", view.Status)
	}

	view, err = svc.StartTracking(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if view.Status != order.StatusConfirmed {
		t.Errorf("remount should restart at confirmed, got %q", view.Status)
	}
}

func TestEstimatedDeliveryDisplay(t *testing.T) {
	svc, _ := newTracked(t, order.DeliveryOptionDelivery)

	view, err := svc.CurrentView(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// created 19:00 + 50 min
	if view.EstimatedDelivery != "19:50" {
		t.Errorf("delivery estimate = %q, want 19:50", view.EstimatedDelivery)
	}

	pickupSvc, _ := newTracked(t, order.DeliveryOptionPickup)
	view, err = pickupSvc.CurrentView(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// created 19:00 + 30 min
	if view.EstimatedDelivery != "19:30" {
		t.Errorf("pickup estimate = %q, want 19:30", view.EstimatedDelivery)
	}
}

func TestNoOrderIsNotFound(t *testing.T) {
	svc := MustNewTrackingService(WithOrderRepository(&fakeOrderRepo{}))

	if _, err := svc.StartTracking(context.Background()); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
	if _, err := svc.CurrentView(context.Background()); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestUnreadableSnapshotIsNotFound(t *testing.T) {
	repo := &fakeOrderRepo{loadErr: errors.New("failed to decode order record")}
	svc := MustNewTrackingService(WithOrderRepository(repo))

	if _, err := svc.StartTracking(context.Background()); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}
