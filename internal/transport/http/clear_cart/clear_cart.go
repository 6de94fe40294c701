package clearcart

import (
	"context"
	"net/http"
)

// service is an interface for the service layer.
type service interface {
	Clear(ctx context.Context)
}

// ClearCart handles the cart reset request.
func ClearCart(w http.ResponseWriter, r *http.Request, service service) {
	service.Clear(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
