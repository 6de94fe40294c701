package checkdelivery

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/saborarte/ordering/internal/service/services/deliverysvc"
)

// service is an interface for the service layer.
type service interface {
	Check(ctx context.Context, cep string) (deliverysvc.Result, error)
}

type checkDeliveryRequest struct {
	CEP string `schema:"cep,required"`
}

type checkDeliveryResponse struct {
	deliverysvc.Result
	Message string `json:"message"`
}

// CheckDelivery handles the delivery eligibility request.
func CheckDelivery(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &checkDeliveryRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding delivery check request", "error", err)

		return
	}

	result, err := service.Check(r.Context(), query.CEP)
	if err != nil {
		if errors.Is(err, deliverysvc.ErrInvalidCEP) {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error checking delivery eligibility", "error", err)

		return
	}

	resp := checkDeliveryResponse{Result: result}
	if result.Eligible {
		resp.Message = "✅ Entregamos na sua região! Taxa de entrega: R$ 8,00"
	} else {
		resp.Message = "❌ Infelizmente não entregamos na sua região. Você pode retirar no balcão!"
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for delivery check", "error", err)
	}
}
