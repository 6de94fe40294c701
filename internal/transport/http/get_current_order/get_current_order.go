package getcurrentorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/saborarte/ordering/internal/service/services/trackingsvc"
)

// service is an interface for the service layer.
type service interface {
	CurrentView(ctx context.Context) (trackingsvc.TrackingView, error)
}

// GetCurrentOrder handles the current order status request.
func GetCurrentOrder(w http.ResponseWriter, r *http.Request, service service) {
	view, err := service.CurrentView(r.Context())
	if err != nil {
		if errors.Is(err, trackingsvc.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting current order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for current order", "error", err)
	}
}
