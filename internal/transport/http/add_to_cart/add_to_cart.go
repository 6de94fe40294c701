package addtocart

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/customization"
	"github.com/saborarte/ordering/internal/service/models/menu"
)

// service is an interface for the service layer.
type service interface {
	AddLine(ctx context.Context, line cartline.CartLine)
	TotalItems(ctx context.Context) int
}

// addToCartRequest is one confirmed item customization.
type addToCartRequest struct {
	ItemID             int64    `json:"itemId"   validate:"gt=0"`
	Quantity           int      `json:"quantity" validate:"gt=0"`
	Extras             []string `json:"extras"`
	RemovedIngredients []string `json:"removedIngredients"`
	Observations       string   `json:"observations"`
}

// Validate validates the add to cart request.
func (r *addToCartRequest) Validate() error {
	return validator.New().Struct(r)
}

type addToCartResponse struct {
	Item       cartline.CartLine `json:"item"`
	TotalItems int               `json:"totalItems"`
}

// AddToCart handles the add to cart request.
func AddToCart(w http.ResponseWriter, r *http.Request, service service) {
	req := addToCartRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for add to cart", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for add to cart", "error", err)

		return
	}

	item, ok := menu.ItemByID(req.ItemID)
	if !ok {
		http.Error(w, "menu item not found", http.StatusNotFound)
		slog.Error("Menu item not found for add to cart", "item_id", req.ItemID)

		return
	}

	for _, name := range req.Extras {
		if !item.HasExtra(name) {
			http.Error(w, "unknown extra: "+name, http.StatusBadRequest)

			return
		}
	}
	for _, name := range req.RemovedIngredients {
		if !item.HasIngredient(name) {
			http.Error(w, "unknown ingredient: "+name, http.StatusBadRequest)

			return
		}
	}

	session := customization.NewSession(item)
	session.SetQuantity(req.Quantity)
	for _, name := range req.Extras {
		session.ToggleExtra(name)
	}
	for _, name := range req.RemovedIngredients {
		session.ToggleIngredient(name)
	}
	session.SetNote(req.Observations)

	line := session.Confirm()
	service.AddLine(r.Context(), line)

	w.WriteHeader(http.StatusCreated)
	resp := addToCartResponse{
		Item:       line,
		TotalItems: service.TotalItems(r.Context()),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error sending response for add to cart", "error", err)
	}
}
