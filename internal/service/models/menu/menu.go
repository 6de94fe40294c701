package menu

// Extra is an optional paid addition to a menu item. The listed price is
// display metadata; cart totals charge a flat per-extra surcharge instead.
type Extra struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// MenuItem represents one catalog entry.
type MenuItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	PrepTime    string   `json:"prepTime"`
	Ingredients []string `json:"ingredients"`
	Extras      []Extra  `json:"extras"`
}

// Category groups catalog entries for display.
type Category struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Categories returns the full catalog in display order.
func Categories() []Category {
	return catalog
}

// ItemByID looks up a catalog entry by its unique id.
func ItemByID(id int64) (MenuItem, bool) {
	for _, c := range catalog {
		for _, item := range c.Items {
			if item.ID == id {
				return item, true
			}
		}
	}

	return MenuItem{}, false
}

// HasExtra reports whether the item offers an extra with the given name.
func (m MenuItem) HasExtra(name string) bool {
	for _, e := range m.Extras {
		if e.Name == name {
			return true
		}
	}

	return false
}

// HasIngredient reports whether the item contains the given ingredient.
func (m MenuItem) HasIngredient(name string) bool {
	for _, i := range m.Ingredients {
		if i == name {
			return true
		}
	}

	return false
}
