package iorderrepo

import (
	"context"
	"errors"

	"github.com/saborarte/ordering/internal/service/models/order"
)

// ErrNoCurrentOrder is returned when no order snapshot has been saved.
var ErrNoCurrentOrder = errors.New("no current order")

// IOrderRepository persists the single current order snapshot. There is
// no order history: saving a new snapshot overwrites the previous one.
type IOrderRepository interface {
	SaveCurrent(ctx context.Context, o order.Order) error

	// LoadCurrent returns ErrNoCurrentOrder when nothing is persisted.
	LoadCurrent(ctx context.Context) (order.Order, error)
}
