package usecase

import (
	"testing"

	"taskboard-backend/internal/board/domain"
)

func TestClampIndex(t *testing.T) {
	cases := []struct {
		idx, upper, want int
	}{
		{-1, 3, 0},
		{-100, 0, 0},
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 3},
		{4, 3, 3},
		{1000, 2, 2},
	}
	for _, c := range cases {
		if got := clampIndex(c.idx, c.upper); got != c.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", c.idx, c.upper, got, c.want)
		}
	}
}

func TestNextOrder(t *testing.T) {
	cases := []struct {
		orders []int
		want   int
	}{
		{nil, 0},
		{[]int{0}, 1},
		{[]int{0, 1, 2}, 3},
		{[]int{0, 2}, 3}, // gap from a deletion
		{[]int{5, 1}, 6}, // non-contiguous input tolerated
	}
	for _, c := range cases {
		if got := nextOrder(c.orders); got != c.want {
			t.Errorf("nextOrder(%v) = %d, want %d", c.orders, got, c.want)
		}
	}
}

func TestRemoveInsertReindex(t *testing.T) {
	seq := []*domain.Task{
		{ID: "a", Order: 0},
		{ID: "b", Order: 1},
		{ID: "c", Order: 2},
	}

	out := withoutTask(seq, "b")
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("withoutTask gave %v", out)
	}

	out = insertTask(out, seq[1], 0)
	orders := orderAssignments(out)
	want := map[string]int{"b": 0, "a": 1, "c": 2}
	for id, order := range want {
		if orders[id] != order {
			t.Errorf("order[%s] = %d, want %d", id, orders[id], order)
		}
	}
}

func TestWithoutTaskMissingIDIsIdentity(t *testing.T) {
	seq := []*domain.Task{{ID: "a"}, {ID: "b"}}
	out := withoutTask(seq, "zz")
	if len(out) != 2 {
		t.Fatalf("withoutTask removed %d elements, want 0", len(seq)-len(out))
	}
}
