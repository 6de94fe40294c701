package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saborarte/ordering/internal/service/models/customer"
	"github.com/saborarte/ordering/internal/service/models/order"
	"github.com/saborarte/ordering/internal/service/services/checkoutsvc"
)

// service is an interface for the service layer.
type service interface {
	Confirm(ctx context.Context, in checkoutsvc.CheckoutInput) (order.Order, error)
}

type addressInCheckoutRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	CEP          string `json:"cep"`
	Reference    string `json:"reference"`
}

type customerInCheckoutRequest struct {
	Name          string                   `json:"name"`
	Phone         string                   `json:"phone"`
	PaymentMethod string                   `json:"paymentMethod" validate:"required"`
	ChangeAmount  string                   `json:"changeAmount"`
	Address       addressInCheckoutRequest `json:"address"`
}

// checkoutRequest represents a checkout confirmation request. Presence
// rules for name, phone and the address live in the service layer so the
// customer sees every violation at once.
type checkoutRequest struct {
	Customer       customerInCheckoutRequest `json:"customer"       validate:"required"`
	DeliveryOption string                    `json:"deliveryOption" validate:"required"`
}

// Validate validates the checkout request.
func (r *checkoutRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts checkoutRequest to checkoutsvc.CheckoutInput.
func (r *checkoutRequest) toModel() (*checkoutsvc.CheckoutInput, error) {
	method, err := customer.ParsePaymentMethod(r.Customer.PaymentMethod)
	if err != nil {
		return nil, err
	}

	opt, err := order.ParseDeliveryOption(r.DeliveryOption)
	if err != nil {
		return nil, err
	}

	return &checkoutsvc.CheckoutInput{
		Customer: customer.CustomerInfo{
			Name:          r.Customer.Name,
			Phone:         r.Customer.Phone,
			PaymentMethod: method,
			ChangeAmount:  r.Customer.ChangeAmount,
			Address: customer.Address{
				Street:       r.Customer.Address.Street,
				Number:       r.Customer.Address.Number,
				Complement:   r.Customer.Address.Complement,
				Neighborhood: r.Customer.Address.Neighborhood,
				City:         r.Customer.Address.City,
				CEP:          r.Customer.Address.CEP,
				Reference:    r.Customer.Address.Reference,
			},
		},
		DeliveryOption: opt,
	}, nil
}

type checkoutResponse struct {
	Order       order.Order `json:"order"`
	ShortID     string      `json:"shortId"`
	SupportLink string      `json:"supportLink"`
}

type validationFailedResponse struct {
	Errors []string `json:"errors"`
}

// Checkout handles the checkout confirmation request.
func Checkout(w http.ResponseWriter, r *http.Request, service service) {
	req := checkoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for checkout", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for checkout", "error", err)

		return
	}

	input, err := req.toModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error converting checkout request to model", "error", err)

		return
	}

	confirmed, err := service.Confirm(r.Context(), *input)
	if err != nil {
		var valErr *checkoutsvc.ValidationError
		if errors.As(err, &valErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			if err := json.NewEncoder(w).Encode(validationFailedResponse{Errors: valErr.Messages}); err != nil {
				slog.Error("Error sending validation response for checkout", "error", err)
			}

			return
		}
		if errors.Is(err, checkoutsvc.ErrEmptyCart) {
			http.Error(w, err.Error(), http.StatusConflict)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error confirming checkout", "error", err)

		return
	}

	w.WriteHeader(http.StatusCreated)
	resp := checkoutResponse{
		Order:       confirmed,
		ShortID:     confirmed.ShortID(),
		SupportLink: confirmed.SupportLink(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error sending response for checkout", "error", err)
	}
}
