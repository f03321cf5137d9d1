package bitchess

import "testing"

func TestParseMoveTextMatchesGeneratedList(t *testing.T) {
	pos := mustParse(t, StartPosition)
	m, err := ParseMoveText(&pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseMoveText(e2e4): %v", err)
	}
	if m.Flag() != DoublePawnPush {
		t.Errorf("e2e4 should resolve to DoublePawnPush, got flag %d", m.Flag())
	}
}

func TestParseMoveTextPromotion(t *testing.T) {
	pos := mustParse(t, "8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	m, err := ParseMoveText(&pos, "a7a8q")
	if err != nil {
		t.Fatalf("ParseMoveText(a7a8q): %v", err)
	}
	if m.Flag() != PromoQueen {
		t.Errorf("a7a8q should resolve to PromoQueen, got flag %d", m.Flag())
	}
}

func TestParseMoveTextRejectsIllegalMove(t *testing.T) {
	pos := mustParse(t, StartPosition)
	if _, err := ParseMoveText(&pos, "e2e5"); err == nil {
		t.Error("e2e5 is not legal from the start position and should fail to parse")
	}
}

func TestParseMoveTextRejectsMalformed(t *testing.T) {
	pos := mustParse(t, StartPosition)
	cases := []string{"", "e2", "e2e4qq", "z2e4", "e2z4"}
	for _, s := range cases {
		if _, err := ParseMoveText(&pos, s); err == nil {
			t.Errorf("ParseMoveText(%q) should have failed", s)
		}
	}
}

func TestMoveStringRendersPromotionLetter(t *testing.T) {
	m := NewMove(NewSquare(0, 6), NewSquare(0, 7), promoFlag(Queen, false))
	if got, want := m.String(), "a7a8q"; got != want {
		t.Errorf("Move.String() = %q, want %q", got, want)
	}
}

func TestNullMoveString(t *testing.T) {
	if NullMove.String() != "0000" {
		t.Errorf("NullMove.String() = %q, want 0000", NullMove.String())
	}
}
