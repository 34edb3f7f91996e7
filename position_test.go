package peg

import "testing"

func TestPositionCalculator(t *testing.T) {
	data := []struct {
		text    string
		offsets []int
		want    []Position
	}{
		{"", []int{0}, []Position{{0, 1, 1}}},
		{"A\n", []int{0, 1, 2}, []Position{
			{0, 1, 1},
			{1, 1, 2},
			{2, 2, 1},
		}},
		{"\nAA\r\r\nA\n\n", []int{1, 3, 4, 5, 6, 9}, []Position{
			{1, 2, 1},
			{3, 2, 3},
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{9, 6, 1},
		}},
	}

	for _, d := range data {
		calc := newPositionCalculator(d.text)
		for i, offset := range d.offsets {
			got := calc.resolve(offset)
			if got != d.want[i] {
				t.Errorf("%q.resolve(%d) = %v, want %v (lnends=%v)",
					d.text, offset, got, d.want[i], calc.lnends)
			}
		}
	}
}

func TestPositionCalculatorOutOfOrderOffsets(t *testing.T) {
	calc := newPositionCalculator("\nAA\r\r\nA\n\n")
	offsets := []int{1, 5, 3, 4, 6, 9}
	want := []Position{
		{1, 2, 1},
		{5, 3, 2},
		{3, 2, 3},
		{4, 3, 1},
		{6, 4, 1},
		{9, 6, 1},
	}
	for i, offset := range offsets {
		if got := calc.resolve(offset); got != want[i] {
			t.Errorf("resolve(%d) = %v, want %v", offset, got, want[i])
		}
	}
}
