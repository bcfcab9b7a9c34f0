package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestForEachRunsEverything(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	var sum int64

	errs := ForEach(context.Background(), items, 3, func(_ context.Context, _ int, n int) error {
		atomic.AddInt64(&sum, int64(n))
		return nil
	})

	if errs != nil {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if sum != 15 {
		t.Errorf("sum = %d, want 15", sum)
	}
}

func TestForEachCollectsErrors(t *testing.T) {
	items := []string{"a", "b", "c"}
	boom := errors.New("boom")

	errs := ForEach(context.Background(), items, 0, func(_ context.Context, i int, _ string) error {
		if i == 1 {
			return boom
		}
		return nil
	})

	if len(errs) != 1 || !errors.Is(errs[0], boom) {
		t.Errorf("errs = %v, want [boom]", errs)
	}
}

func TestForEachEmpty(t *testing.T) {
	if errs := ForEach(context.Background(), nil, 4, func(context.Context, int, int) error {
		t.Fatal("fn should not be called")
		return nil
	}); errs != nil {
		t.Errorf("Expected nil errors for empty input, got %v", errs)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	items := []int{10, 20, 30}

	results, errs := Map(context.Background(), items, 2, func(_ context.Context, _ int, n int) (int, error) {
		return n * 2, nil
	})

	if errs != nil {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	want := []int{20, 40, 60}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %d, want %d", i, results[i], want[i])
		}
	}
}
