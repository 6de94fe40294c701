package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/saborarte/ordering/internal/dal/sqlite"
	"github.com/saborarte/ordering/internal/service/models/cartline"
)

// recordName is the fixed storage key for the cart record.
const recordName = "cart"

// CartRepository stores the cart as one serialized record.
type CartRepository struct {
	client *sqlite.Client
}

func NewCartRepository(client *sqlite.Client) *CartRepository {
	return &CartRepository{
		client: client,
	}
}

// Load restores the persisted cart. Absence of the record yields an
// empty cart; a record that fails to decode yields an error the service
// treats as "start empty".
func (r *CartRepository) Load(ctx context.Context) ([]cartline.CartLine, error) {
	query, args, err := sq.Select("payload").
		From("records").
		Where(sq.Eq{"name": recordName}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var payload string
	err = r.client.DB().QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []cartline.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart record: %w", err)
	}

	var lines []cartline.CartLine
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart record: %w", err)
	}

	return lines, nil
}

// Save overwrites the persisted cart with the given lines.
func (r *CartRepository) Save(ctx context.Context, lines []cartline.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart record: %w", err)
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
		return fmt.Errorf("failed to save cart record: %w", err)
	}

	return nil
}
