package bitchess

import "testing"

func TestBitboardSetClearHas(t *testing.T) {
	var b Bitboard
	b = b.Set(12)
	if !b.Has(12) {
		t.Error("expected square 12 set")
	}
	b = b.Clear(12)
	if b.Has(12) {
		t.Error("expected square 12 cleared")
	}
}

func TestBitboardCountAndLsb(t *testing.T) {
	b := SquareMask(3) | SquareMask(17) | SquareMask(40)
	if b.Count() != 3 {
		t.Errorf("Count() = %d, want 3", b.Count())
	}
	if b.Lsb() != 3 {
		t.Errorf("Lsb() = %d, want 3", b.Lsb())
	}
	sq, rest := b.PopLsb()
	if sq != 3 || rest.Count() != 2 {
		t.Error("PopLsb did not remove the lsb correctly")
	}
}

func TestBitboardExactlyOneMoreThanOne(t *testing.T) {
	one := SquareMask(10)
	if !one.ExactlyOne() || one.MoreThanOne() {
		t.Error("single-bit board misclassified")
	}
	two := SquareMask(10) | SquareMask(11)
	if two.ExactlyOne() || !two.MoreThanOne() {
		t.Error("two-bit board misclassified")
	}
}

func TestShiftsStayOnBoard(t *testing.T) {
	a1 := SquareMask(0)
	if a1.ShiftWest() != Empty {
		t.Error("shifting off the west edge should clear, not wrap")
	}
	h1 := SquareMask(7)
	if h1.ShiftEast() != Empty {
		t.Error("shifting off the east edge should clear, not wrap")
	}
	if a1.ShiftNorth() != SquareMask(8) {
		t.Error("north shift of a1 should be a2")
	}
}

func TestIterateVisitsEveryBit(t *testing.T) {
	want := map[Square]bool{2: true, 30: true, 63: true}
	b := SquareMask(2) | SquareMask(30) | SquareMask(63)
	got := map[Square]bool{}
	b.Iterate(func(s Square) { got[s] = true })
	if len(got) != len(want) {
		t.Fatalf("visited %d squares, want %d", len(got), len(want))
	}
	for s := range want {
		if !got[s] {
			t.Errorf("square %d not visited", s)
		}
	}
}
