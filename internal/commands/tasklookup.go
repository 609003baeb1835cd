package commands

import (
	"errors"
	"fmt"

	"todo/internal/todo"
)

// ErrOutOfRange is wrapped by resolveTaskID when a position has no task.
var ErrOutOfRange = errors.New("task number out of range")

// resolveTaskID turns a reference into the id to remove.
// Positions must address an existing task; ids are returned as given, since
// removing an unknown id is a no-op.
func resolveTaskID(state todo.State, ref TaskRef) (string, error) {
	if !ref.IsIndex {
		return ref.ID, nil
	}
	if ref.Num < 1 || ref.Num > len(state.Tasks) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, ref.Num)
	}
	return state.Tasks[ref.Num-1].ID, nil
}
