package customization

import (
	"reflect"
	"testing"

	"github.com/saborarte/ordering/internal/service/models/menu"
)

func testItem() menu.MenuItem {
	item, ok := menu.ItemByID(1)
	if !ok {
		panic("catalog item 1 missing")
	}

	return item
}

func TestQuantityFloor(t *testing.T) {
	s := NewSession(testItem())

	if s.Quantity() != 1 {
		t.Fatalf("initial quantity = %d, want 1", s.Quantity())
	}

	s.Decrement()
	if s.Quantity() != 1 {
		t.Errorf("decrement below 1 should be a no-op, got %d", s.Quantity())
	}

	s.Increment()
	s.Increment()
	if s.Quantity() != 3 {
		t.Errorf("quantity = %d, want 3", s.Quantity())
	}

	s.SetQuantity(0)
	if s.Quantity() != 3 {
		t.Errorf("SetQuantity(0) should be ignored, got %d", s.Quantity())
	}

	s.SetQuantity(5)
	if s.Quantity() != 5 {
		t.Errorf("SetQuantity(5) = %d", s.Quantity())
	}
}

func TestToggleSemantics(t *testing.T) {
	s := NewSession(testItem())

	s.ToggleExtra("Queijo brie")
	s.ToggleExtra("Rúcula")
	s.ToggleExtra("Queijo brie")
	if got := s.Extras(); !reflect.DeepEqual(got, []string{"Rúcula"}) {
		t.Errorf("extras = %v, want [Rúcula]", got)
	}

	s.ToggleIngredient("Alho")
	s.ToggleIngredient("Alho")
	if got := s.RemovedIngredients(); len(got) != 0 {
		t.Errorf("removed = %v, want empty", got)
	}
}

func TestConfirmPackagesAndResets(t *testing.T) {
	s := NewSession(testItem())
	s.SetQuantity(2)
	s.ToggleExtra("Queijo brie")
	s.ToggleIngredient("Alho")
	s.SetNote("bem tostado")

	line := s.Confirm()

	if line.ItemID != 1 || line.Name != "Bruschetta Artesanal" || line.Price != "R$ 28,00" {
		t.Errorf("line carries wrong item data: %+v", line)
	}
	if line.Quantity != 2 || line.Note != "bem tostado" {
		t.Errorf("line = %+v", line)
	}
	if !reflect.DeepEqual(line.Extras, []string{"Queijo brie"}) {
		t.Errorf("extras = %v", line.Extras)
	}
	if !reflect.DeepEqual(line.RemovedIngredients, []string{"Alho"}) {
		t.Errorf("removed = %v", line.RemovedIngredients)
	}

	if s.Quantity() != 1 || len(s.Extras()) != 0 || len(s.RemovedIngredients()) != 0 {
		t.Error("confirm should reset the session")
	}
}

func TestCancelDiscards(t *testing.T) {
	s := NewSession(testItem())
	s.ToggleExtra("Rúcula")
	s.SetNote("x")
	s.Cancel()

	line := s.Line()
	if len(line.Extras) != 0 || line.Note != "" || line.Quantity != 1 {
		t.Errorf("cancel left state behind: %+v", line)
	}
}
