package getmenu

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/saborarte/ordering/internal/service/models/menu"
	"github.com/saborarte/ordering/internal/service/models/order"
)

// getMenuResponse bundles the static catalog with the restaurant's
// contact block so the storefront renders from one call.
type getMenuResponse struct {
	Restaurant restaurantInfo  `json:"restaurant"`
	Categories []menu.Category `json:"categories"`
}

type restaurantInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

// GetMenu handles the menu listing request.
func GetMenu(w http.ResponseWriter, _ *http.Request) {
	resp := getMenuResponse{
		Restaurant: restaurantInfo{
			Name:     order.RestaurantName,
			Address:  order.RestaurantAddress,
			Phone:    order.RestaurantPhone,
			WhatsApp: order.RestaurantWhatsApp,
		},
		Categories: menu.Categories(),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for menu listing", "error", err)
	}
}
