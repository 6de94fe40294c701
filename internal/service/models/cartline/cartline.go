package cartline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/saborarte/ordering/internal/service/models/money"
)

// ExtraSurchargeCents is the flat amount charged per selected extra,
// regardless of the extra's listed catalog price.
const ExtraSurchargeCents int64 = 800

// CartLine is one customized configuration of a menu item plus a quantity.
type CartLine struct {
	ItemID             int64    `json:"id"`
	Name               string   `json:"name"`
	Price              string   `json:"price"`
	Quantity           int      `json:"quantity"`
	Extras             []string `json:"extras"`
	RemovedIngredients []string `json:"removedIngredients"`
	Note               string   `json:"observations"`
}

// MergeKey builds the canonical identity used to fold repeated additions
// into one line. Extras and removed ingredients are compared as sets, so
// both are sorted before joining.
func (l CartLine) MergeKey() string {
	extras := append([]string(nil), l.Extras...)
	removed := append([]string(nil), l.RemovedIngredients...)
	sort.Strings(extras)
	sort.Strings(removed)

	parts := []string{
		strconv.FormatInt(l.ItemID, 10),
		strings.Join(extras, "\x01"),
		strings.Join(removed, "\x01"),
		l.Note,
	}

	return strings.Join(parts, "\x00")
}

// TotalCents computes the line total:
// (base unit price + surcharge per extra) * quantity.
func (l CartLine) TotalCents() (int64, error) {
	base, err := money.ParseBRL(l.Price)
	if err != nil {
		return 0, err
	}

	return (base + int64(len(l.Extras))*ExtraSurchargeCents) * int64(l.Quantity), nil
}

// Clone returns a deep copy, so order snapshots stay immutable when the
// live cart keeps mutating.
func (l CartLine) Clone() CartLine {
	c := l
	c.Extras = append([]string(nil), l.Extras...)
	c.RemovedIngredients = append([]string(nil), l.RemovedIngredients...)

	return c
}
