package order

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/saborarte/ordering/internal/service/models/cartline"
	"github.com/saborarte/ordering/internal/service/models/customer"
)

// Restaurant contact data, surfaced on pickup orders and in the support link.
const (
	RestaurantName     = "Sabor & Arte"
	RestaurantAddress  = "Rua das Delícias, 123 - Centro"
	RestaurantPhone    = "(11) 9999-8888"
	RestaurantWhatsApp = "5511999998888"
)

// DeliveryFeeCents is the fixed fee charged on eligible delivery orders.
const DeliveryFeeCents int64 = 800

type DeliveryOption string

const (
	DeliveryOptionDelivery DeliveryOption = "delivery"
	DeliveryOptionPickup   DeliveryOption = "pickup"
)

var ErrInvalidDeliveryOption = errors.New("invalid delivery option")

func (d DeliveryOption) String() string {
	return string(d)
}

func ParseDeliveryOption(s string) (DeliveryOption, error) {
	switch s {
	case DeliveryOptionDelivery.String():
		return DeliveryOptionDelivery, nil
	case DeliveryOptionPickup.String():
		return DeliveryOptionPickup, nil
	default:
		return "", ErrInvalidDeliveryOption
	}
}

// EstimatedTimeLabel is the user-facing fulfillment estimate per mode.
func (d DeliveryOption) EstimatedTimeLabel() string {
	if d == DeliveryOptionDelivery {
		return "45-60 min"
	}

	return "25-35 min"
}

// Status is the fulfillment state shown on the tracking view.
type Status string

const (
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
)

// Totals are the amounts computed at snapshot time, in cents.
type Totals struct {
	SubtotalCents    int64 `json:"subtotalCents"`
	DeliveryFeeCents int64 `json:"deliveryFeeCents"`
	TotalCents       int64 `json:"totalCents"`
}

// Order is the immutable snapshot taken at checkout confirmation. Once
// created it is the single source of truth for tracking; the live cart
// is no longer consulted.
type Order struct {
	ID             string              `json:"id"`
	Items          []cartline.CartLine `json:"items"`
	Customer       customer.CustomerInfo `json:"customer"`
	DeliveryOption DeliveryOption      `json:"deliveryOption"`
	Totals         Totals              `json:"totals"`
	EstimatedTime  string              `json:"estimatedTime"`
	Status         Status              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// NewID generates an order identifier.
func NewID() string {
	return uuid.NewString()
}

// ShortID is the identifier shown to the customer: the last 6 characters
// of the generated id.
func (o Order) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}

	return o.ID[len(o.ID)-6:]
}

// SupportLink builds the WhatsApp contact link pre-filled with the short
// order id.
func (o Order) SupportLink() string {
	msg := "Olá! Gostaria de saber sobre meu pedido #" + o.ShortID()

	return "https://wa.me/" + RestaurantWhatsApp + "?text=" + url.QueryEscape(msg)
}
