package getcart

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/money"
)

// service is an interface for the service layer.
type service interface {
	Lines(ctx context.Context) []cartline.CartLine
	TotalItems(ctx context.Context) int
	SubtotalCents(ctx context.Context) int64
}

type getCartResponse struct {
	Items         []cartline.CartLine `json:"items"`
	TotalItems    int                 `json:"totalItems"`
	SubtotalCents int64               `json:"subtotalCents"`
	Subtotal      string              `json:"subtotal"`
}

// GetCart handles the cart state request.
func GetCart(w http.ResponseWriter, r *http.Request, service service) {
	subtotal := service.SubtotalCents(r.Context())
	resp := getCartResponse{
		Items:         service.Lines(r.Context()),
		TotalItems:    service.TotalItems(r.Context()),
		SubtotalCents: subtotal,
		Subtotal:      money.FormatBRL(subtotal),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for cart state", "error", err)
	}
}
