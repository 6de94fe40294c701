package cartsvc

import (
	"context"
	"log/slog"
	"sync"

	"github.com/saborarte/ordering/internal/dal/interfaces/icartrepo"
	"github.com/saborarte/ordering/internal/service/models/cartline"
)

type state int

const (
	stateUninitialized state = iota
	stateReady
)

// CartService owns the list of cart lines. It restores the persisted
// cart once at startup and re-persists after every mutation. Until the
// restore has run, the cart reads as empty and mutations are refused, so
// a default empty list never clobbers saved data.
type CartService struct {
	repo icartrepo.ICartRepository

	mu    sync.Mutex
	lines []cartline.CartLine
	state state
}

// option is a function that configures the CartService.
type option func(*CartService)

// MustNewCartService creates a new CartService.
func MustNewCartService(opts ...option) *CartService {
	s := &CartService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCartRepository sets the persistence backend for the CartService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCartRepository(repo icartrepo.ICartRepository) option {
	return func(s *CartService) {
		s.repo = repo
	}
}

// Init restores the persisted cart. A restore failure is logged and
// treated as an empty cart; the service becomes Ready either way.
func (s *CartService) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("Failed to restore cart, starting empty", "error", err)
		lines = []cartline.CartLine{}
	}

	s.lines = lines
	s.state = stateReady
}

// AddLine merges the line into the cart: an addition with the same merge
// identity increments the existing line's quantity, anything else
// appends in insertion order.
func (s *CartService) AddLine(ctx context.Context, line cartline.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		slog.Warn("Cart mutation before restore completed, ignored")

		return
	}

	key := line.MergeKey()
	for i := range s.lines {
		if s.lines[i].MergeKey() == key {
			s.lines[i].Quantity += line.Quantity
			s.persist(ctx)

			return
		}
	}

	s.lines = append(s.lines, line.Clone())
	s.persist(ctx)
}

// UpdateQuantity replaces the quantity at index. Quantities below 1 and
// out-of-range indices are ignored; removal is only ever explicit.
func (s *CartService) UpdateQuantity(ctx context.Context, index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady || quantity < 1 || index < 0 || index >= len(s.lines) {
		return
	}

	s.lines[index].Quantity = quantity
	s.persist(ctx)
}

// RemoveLine deletes the line at index; later indices shift down.
func (s *CartService) RemoveLine(ctx context.Context, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady || index < 0 || index >= len(s.lines) {
		return
	}

	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	s.persist(ctx)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return
	}

	s.lines = []cartline.CartLine{}
	s.persist(ctx)
}

// Lines returns a copy of the current cart.
func (s *CartService) Lines(_ context.Context) []cartline.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return []cartline.CartLine{}
	}

	out := make([]cartline.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, l.Clone())
	}

	return out
}

// TotalItems sums quantities across all lines.
func (s *CartService) TotalItems(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return 0
	}

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}

	return total
}

// SubtotalCents sums per-line totals. Lines whose display price fails to
// parse count as zero and are logged.
func (s *CartService) SubtotalCents(_ context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateReady {
		return 0
	}

	var subtotal int64
	for _, l := range s.lines {
		lineTotal, err := l.TotalCents()
		if err != nil {
			slog.Error("Unparseable line price, counted as zero", "item_id", l.ItemID, "price", l.Price, "error", err)

			continue
		}
		subtotal += lineTotal
	}

	return subtotal
}

// persist writes the cart; callers hold the lock. Failures are logged,
// never fatal.
func (s *CartService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.lines); err != nil {
		slog.Error("Failed to persist cart", "error", err)
	}
}
