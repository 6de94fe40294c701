package cartline

import "testing"

func TestMergeKeyIsOrderInsensitive(t *testing.T) {
	a := CartLine{
		ItemID:             1,
		Extras:             []string{"Queijo brie", "Rúcula"},
		RemovedIngredients: []string{"Alho", "Manjericão"},
		Note:               "sem sal",
	}
	b := CartLine{
		ItemID:             1,
		Extras:             []string{"Rúcula", "Queijo brie"},
		RemovedIngredients: []string{"Manjericão", "Alho"},
		Note:               "sem sal",
	}

	if a.MergeKey() != b.MergeKey() {
		t.Error("same sets in different order should share a merge key")
	}
}

func TestMergeKeyDistinguishesTuples(t *testing.T) {
	base := CartLine{ItemID: 1, Extras: []string{"Queijo brie"}, Note: "x"}

	tests := []struct {
		name  string
		other CartLine
	}{
		{name: "different item", other: CartLine{ItemID: 2, Extras: []string{"Queijo brie"}, Note: "x"}},
		{name: "different extras", other: CartLine{ItemID: 1, Extras: []string{"Rúcula"}, Note: "x"}},
		{name: "different removed", other: CartLine{ItemID: 1, Extras: []string{"Queijo brie"}, RemovedIngredients: []string{"Alho"}, Note: "x"}},
		{name: "different note", other: CartLine{ItemID: 1, Extras: []string{"Queijo brie"}, Note: "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if base.MergeKey() == tt.other.MergeKey() {
				t.Error("expected distinct merge keys")
			}
		})
	}
}

func TestMergeKeySeparatorCollision(t *testing.T) {
	a := CartLine{ItemID: 1, Extras: []string{"ab", "c"}}
	b := CartLine{ItemID: 1, Extras: []string{"a", "bc"}}

	if a.MergeKey() == b.MergeKey() {
		t.Error("joined set members must not collide")
	}
}

func TestTotalCents(t *testing.T) {
	line := CartLine{Price: "R$ 28,00", Quantity: 2, Extras: []string{"Queijo brie"}}

	got, err := line.TotalCents()
	if err != nil {
		t.Fatal(err)
	}
	if want := int64((2800 + 800) * 2); got != want {
		t.Errorf("TotalCents = %d, want %d", got, want)
	}
}

func TestTotalCentsBadPrice(t *testing.T) {
	line := CartLine{Price: "free", Quantity: 1}
	if _, err := line.TotalCents(); err == nil {
		t.Error("expected parse error")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := CartLine{ItemID: 1, Extras: []string{"Chia"}, RemovedIngredients: []string{"Couve"}}
	c := orig.Clone()
	c.Extras[0] = "changed"
	c.RemovedIngredients[0] = "changed"

	if orig.Extras[0] != "Chia" || orig.RemovedIngredients[0] != "Couve" {
		t.Error("clone shares backing arrays with the original")
	}
}
