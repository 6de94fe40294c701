package icartrepo

import (
	"context"

	"github.com/saborarte/ordering/internal/service/models/cartline"
)

// ICartRepository persists the cart as a single record under a fixed name.
type ICartRepository interface {
	// Load restores the saved cart. A missing record is an empty cart,
	// not an error; a corrupted record is an error the caller degrades on.
	Load(ctx context.Context) ([]cartline.CartLine, error)

	// Save overwrites the persisted cart with the given lines.
	Save(ctx context.Context, lines []cartline.CartLine) error
}
