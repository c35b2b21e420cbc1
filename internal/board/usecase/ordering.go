package usecase

import "taskboard-backend/internal/board/domain"

// clampIndex bounds idx to [0, upper]
func clampIndex(idx, upper int) int {
	if idx < 0 {
		return 0
	}
	if idx > upper {
		return upper
	}
	return idx
}

// nextOrder returns the append position for a scope: max existing order plus
// one. Tolerates gaps left by deletions.
func nextOrder(orders []int) int {
	next := 0
	for _, order := range orders {
		if order >= next {
			next = order + 1
		}
	}
	return next
}

// withoutTask returns seq minus the task with the given ID, relative order preserved
func withoutTask(seq []*domain.Task, taskID string) []*domain.Task {
	out := make([]*domain.Task, 0, len(seq))
	for _, task := range seq {
		if task.ID == taskID {
			continue
		}
		out = append(out, task)
	}
	return out
}

// insertTask returns seq with task inserted at idx; idx must already be clamped
func insertTask(seq []*domain.Task, task *domain.Task, idx int) []*domain.Task {
	out := make([]*domain.Task, 0, len(seq)+1)
	out = append(out, seq[:idx]...)
	out = append(out, task)
	out = append(out, seq[idx:]...)
	return out
}

// orderAssignments maps every task in seq to its zero-based position
func orderAssignments(seq []*domain.Task) map[string]int {
	orders := make(map[string]int, len(seq))
	for i, task := range seq {
		orders[task.ID] = i
	}
	return orders
}
