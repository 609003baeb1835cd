// Package persist mirrors the task list state into one slot of a storage.Store.
package persist

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/storage"
	"todo/internal/todo"
)

// Key is the fixed storage slot holding the serialized state.
const Key = "TO_DO_STATE"

// Adapter reads and writes the state snapshot.
type Adapter struct {
	store storage.Store
	key   string
}

// New creates an Adapter over store using the fixed Key.
func New(store storage.Store) *Adapter {
	return &Adapter{store: store, key: Key}
}

// Exists reports whether the slot holds any value, valid or not.
// It does not read or parse the value.
func (a *Adapter) Exists(ctx context.Context) (bool, error) {
	ok, err := a.store.Has(ctx, a.key)
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot: %w", err)
	}
	return ok, nil
}

// Load reads and decodes the snapshot.
// An absent slot yields the default state and no error. An undecodable
// snapshot yields the default state and an error wrapping ErrCorruptSnapshot.
func (a *Adapter) Load(ctx context.Context) (todo.State, error) {
	data, err := a.store.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return todo.Default(), nil
		}
		return todo.Default(), fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Decode(data)
}

// Save serializes state and overwrites the slot.
func (a *Adapter) Save(ctx context.Context, state todo.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, a.key, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Clear removes the slot.
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
