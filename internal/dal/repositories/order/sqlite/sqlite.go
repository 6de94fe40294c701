package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/saborarte/ordering/internal/dal/interfaces/iorderrepo"
	"github.com/saborarte/ordering/internal/dal/sqlite"
	"github.com/saborarte/ordering/internal/service/models/order"
)

// recordName is the fixed storage key for the single current order.
const recordName = "currentOrder"

// OrderRepository stores the current order snapshot, single-slot.
type OrderRepository struct {
	client *sqlite.Client
}

func NewOrderRepository(client *sqlite.Client) *OrderRepository {
	return &OrderRepository{
		client: client,
	}
}

// SaveCurrent overwrites the current order record.
func (r *OrderRepository) SaveCurrent(ctx context.Context, o order.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order record: %w", err)
	}

	query, args, err := sq.Insert("records").
		Columns("name", "payload", "updated_at").
		Values(recordName, string(payload), time.Now()).
		Suffix("ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := r.client.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order record: %w", err)
	}

	return nil
}

// LoadCurrent reads the current order record.
func (r *OrderRepository) LoadCurrent(ctx context.Context) (order.Order, error) {
	query, args, err := sq.Select("payload").
		From("records").
		Where(sq.Eq{"name": recordName}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build select query: %w", err)
	}

	var payload string
	err = r.client.DB().QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, iorderrepo.ErrNoCurrentOrder
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to load order record: %w", err)
	}

	var o order.Order
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		return order.Order{}, fmt.Errorf("failed to decode order record: %w", err)
	}

	return o, nil
}
