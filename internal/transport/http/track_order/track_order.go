package trackorder

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
	StartTracking(ctx context.Context) (trackingsvc.TrackingView, error)
}

// TrackOrder handles the tracking session start request. Starting a
// session resets the simulated status to confirmed.
func TrackOrder(w http.ResponseWriter, r *http.Request, service service) {
	view, err := service.StartTracking(r.Context())
	if err != nil {
		if errors.Is(err, trackingsvc.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error starting order tracking", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for order tracking", "error", err)
	}
}
