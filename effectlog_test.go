package peg

import "testing"

func TestEffectLogAppendAppliesImmediately(t *testing.T) {
	var log EffectLog
	var applied int
	log.Append(Effect{
		Apply: func() { applied++ },
		Undo:  func() { applied-- },
	})
	if applied != 1 {
		t.Fatalf("applied = %d, want 1", applied)
	}
	if got := log.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
}

func TestEffectLogRestoreUndoesInReverseOrder(t *testing.T) {
	var log EffectLog
	var order []int

	log.Append(Effect{
		Apply: func() { order = append(order, 1) },
		Undo:  func() { order = append(order, -1) },
	})
	checkpoint := log.Len()
	log.Append(Effect{
		Apply: func() { order = append(order, 2) },
		Undo:  func() { order = append(order, -2) },
	})
	log.Append(Effect{
		Apply: func() { order = append(order, 3) },
		Undo:  func() { order = append(order, -3) },
	})

	log.restore(checkpoint)

	want := []int{1, 2, 3, -3, -2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if got := log.Len(); got != checkpoint {
		t.Fatalf("Len() after restore = %d, want %d", got, checkpoint)
	}
}
