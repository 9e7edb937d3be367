package components

import "testing"

func TestLayoutRow_SumsExactly(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
		{80, 1},
	}

	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestLayoutRow_RemainderGoesFirst(t *testing.T) {
	widths := LayoutRow(10, 3)
	if widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Errorf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
}

func TestLayoutRow_ZeroItems(t *testing.T) {
	if widths := LayoutRow(100, 0); widths != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", widths)
	}
}

func TestCardInnerWidth_Floor(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}
