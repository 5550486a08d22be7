package analytics

import "testing"

func TestOrderedMapKeepsFirstSeenOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("Sales", 1)
	m.Set("Engineering", 1)
	m.Set("Sales", 2)

	if got := mustJSON(t, m); got != `{"Sales":2,"Engineering":1}` {
		t.Fatalf("json=%s", got)
	}
	if m.Len() != 2 || !m.Has("Engineering") || m.Has("HR") {
		t.Fatalf("unexpected contents: %v", m.Keys())
	}
	if got := mustJSON(t, NewOrderedMap[float64]()); got != `{}` {
		t.Fatalf("empty json=%s", got)
	}
}

func TestRoundMatchesDecimalFormatting(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.625, 2, 0.62},
		{0.615, 2, 0.61},
		{0.635, 2, 0.64},
		{2.5, 0, 2},
		{3.5, 0, 4},
		{0.125, 2, 0.12},
		{67.50000000000001, 1, 67.5},
		{85.04, 1, 85},
		{0, 2, 0},
	}
	for _, tc := range cases {
		if got := round(tc.in, tc.places); got != tc.want {
			t.Fatalf("round(%v,%d)=%v want %v", tc.in, tc.places, got, tc.want)
		}
	}
}
