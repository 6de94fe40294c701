package customization

import (
	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/menu"
)

// Session is the transient state of one "customize and add" interaction.
// It is not persisted; confirming produces a cart line and resets the
// session, cancelling just resets it.
type Session struct {
	item     menu.MenuItem
	quantity int
	extras   []string
	removed  []string
	note     string
}

func NewSession(item menu.MenuItem) *Session {
	return &Session{item: item, quantity: 1}
}

func (s *Session) Item() menu.MenuItem { return s.item }

func (s *Session) Quantity() int { return s.quantity }

func (s *Session) Increment() {
	s.quantity++
}

// Decrement lowers the quantity, never below 1.
func (s *Session) Decrement() {
	if s.quantity > 1 {
		s.quantity--
	}
}

// SetQuantity replaces the quantity; values below 1 are ignored.
func (s *Session) SetQuantity(q int) {
	if q >= 1 {
		s.quantity = q
	}
}

// ToggleExtra adds the extra if absent, removes it if present.
func (s *Session) ToggleExtra(name string) {
	s.extras = toggle(s.extras, name)
}

// ToggleIngredient marks or unmarks an ingredient for removal.
func (s *Session) ToggleIngredient(name string) {
	s.removed = toggle(s.removed, name)
}

func (s *Session) SetNote(note string) {
	s.note = note
}

func (s *Session) Extras() []string {
	return append([]string(nil), s.extras...)
}

func (s *Session) RemovedIngredients() []string {
	return append([]string(nil), s.removed...)
}

// Line packages the current session state as a cart line.
func (s *Session) Line() cartline.CartLine {
	return cartline.CartLine{
		ItemID:             s.item.ID,
		Name:               s.item.Name,
		Price:              s.item.Price,
		Quantity:           s.quantity,
		Extras:             append([]string(nil), s.extras...),
		RemovedIngredients: append([]string(nil), s.removed...),
		Note:               s.note,
	}
}

// Confirm returns the line for the cart and resets the session.
func (s *Session) Confirm() cartline.CartLine {
	line := s.Line()
	s.reset()

	return line
}

// Cancel discards all session state.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.quantity = 1
	s.extras = nil
	s.removed = nil
	s.note = ""
}

func toggle(set []string, name string) []string {
	for i, v := range set {
		if v == name {
			return append(set[:i], set[i+1:]...)
		}
	}

	return append(set, name)
}
