package order

import (
	"strings"
	"testing"
)

func TestParseDeliveryOption(t *testing.T) {
	if _, err := ParseDeliveryOption("drone"); err == nil {
		t.Error("expected error for unknown option")
	}

	opt, err := ParseDeliveryOption("pickup")
	if err != nil || opt != DeliveryOptionPickup {
		t.Errorf("ParseDeliveryOption(pickup) = %v, %v", opt, err)
	}
}

func TestEstimatedTimeLabel(t *testing.T) {
	if got := DeliveryOptionDelivery.EstimatedTimeLabel(); got != "45-60 min" {
		t.Errorf("delivery label = %q", got)
	}
	if got := DeliveryOptionPickup.EstimatedTimeLabel(); got != "25-35 min" {
		t.Errorf("pickup label = %q", got)
	}
}

func TestShortID(t *testing.T) {
	o := Order{ID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301"}
	if got := o.ShortID(); got != "2c3301" {
		t.Errorf("ShortID = %q, want %q", got, "2c3301")
	}

	short := Order{ID: "abc"}
	if short.ShortID() != "abc" {
		t.Errorf("short ids pass through, got %q", short.ShortID())
	}
}

func TestSupportLink(t *testing.T) {
	o := Order{ID: "1756640000123"}
	link := o.SupportLink()

	if !strings.HasPrefix(link, "https://wa.me/"+RestaurantWhatsApp+"?text=") {
		t.Errorf("unexpected link prefix: %q", link)
	}
	if !strings.Contains(link, "%23"+o.ShortID()) {
		t.Errorf("link should carry the escaped short id: %q", link)
	}
}
