package removecartitem

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saborarte/ordering/internal/service/models/cartline"
)

// service is an interface for the service layer.
type service interface {
	RemoveLine(ctx context.Context, index int)
	Lines(ctx context.Context) []cartline.CartLine
}

// RemoveCartItem handles the cart line removal request.
func RemoveCartItem(w http.ResponseWriter, r *http.Request, service service) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid cart item index", http.StatusBadRequest)
		slog.Error("Error parsing cart item index", "error", err)

		return
	}

	lines := service.Lines(r.Context())
	if index < 0 || index >= len(lines) {
		http.Error(w, "cart item not found", http.StatusNotFound)

		return
	}

	service.RemoveLine(r.Context(), index)

	if err := json.NewEncoder(w).Encode(service.Lines(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for cart item removal", "error", err)
	}
}
