package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	"todo/internal/todo"
)

// ErrCorruptSnapshot is returned when the stored snapshot cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

type snapshot struct {
	Name  *string        `json:"name"`
	Tasks []taskSnapshot `json:"tasks"`
}

type taskSnapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsDone bool   `json:"isDone"`
	IsFav  bool   `json:"isFav"`
}

// Encode serializes state to the persisted JSON form.
// An unset name is written as "".
func Encode(state todo.State) ([]byte, error) {
	name := state.Name.String()
	snap := snapshot{
		Name:  &name,
		Tasks: make([]taskSnapshot, len(state.Tasks)),
	}
	for i, t := range state.Tasks {
		snap.Tasks[i] = taskSnapshot{ID: t.ID, Name: t.Name, IsDone: t.IsDone, IsFav: t.IsFav}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Decode parses a persisted snapshot.
// Comments and trailing commas are tolerated. A JSON null document decodes to
// the default state, as does a missing or null name/tasks field.
// Anything else that is not an object of the expected shape wraps ErrCorruptSnapshot.
func Decode(data []byte) (todo.State, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(clean) == 0 {
		return todo.Default(), fmt.Errorf("%w: empty value", ErrCorruptSnapshot)
	}

	var snap *snapshot
	dec := json.NewDecoder(bytes.NewReader(clean))
	if err := dec.Decode(&snap); err != nil {
		return todo.Default(), fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if dec.More() {
		return todo.Default(), fmt.Errorf("%w: trailing data", ErrCorruptSnapshot)
	}
	if snap == nil {
		return todo.Default(), nil
	}

	state := todo.Default()
	if snap.Name != nil {
		state.Name = todo.NewName(*snap.Name)
	}
	for _, t := range snap.Tasks {
		state.Tasks = append(state.Tasks, todo.Task{ID: t.ID, Name: t.Name, IsDone: t.IsDone, IsFav: t.IsFav})
	}
	return state, nil
}
