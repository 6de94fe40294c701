package customer

import "errors"

type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

func (p PaymentMethod) String() string {
	return string(p)
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case PaymentPix.String():
		return PaymentPix, nil
	case PaymentCard.String():
		return PaymentCard, nil
	case PaymentCash.String():
		return PaymentCash, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// Address holds the delivery address. Complement and Reference are
// optional; the rest is required when the order is for delivery.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	CEP          string `json:"cep"`
	Reference    string `json:"reference"`
}

// CustomerInfo is the checkout identity and payment block. ChangeAmount
// is only meaningful when the payment method is cash.
type CustomerInfo struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	ChangeAmount  string        `json:"changeAmount,omitempty"`
	Address       Address       `json:"address"`
}
