package updatecartitem

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/saborarte/ordering/internal/service/models/cartline"
)

// service is an interface for the service layer.
type service interface {
	UpdateQuantity(ctx context.Context, index, quantity int)
	Lines(ctx context.Context) []cartline.CartLine
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// Validate validates the update cart item request.
func (r *updateCartItemRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateCartItem handles the cart line quantity change request.
func UpdateCartItem(w http.ResponseWriter, r *http.Request, service service) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid cart item index", http.StatusBadRequest)
		slog.Error("Error parsing cart item index", "error", err)

		return
	}

	req := updateCartItemRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for cart item update", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for cart item update", "error", err)

		return
	}

	lines := service.Lines(r.Context())
	if index < 0 || index >= len(lines) {
		http.Error(w, "cart item not found", http.StatusNotFound)

		return
	}

	service.UpdateQuantity(r.Context(), index, req.Quantity)

	if err := json.NewEncoder(w).Encode(service.Lines(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for cart item update", "error", err)
	}
}
