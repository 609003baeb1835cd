// Package service owns the task list state and sequences every change as
// transition-then-persist.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"todo/internal/ident"
	"todo/internal/persist"
	"todo/internal/storage"
	"todo/internal/todo"
)

// Service defines the operations the UI layers drive.
// Commands and the interactive UI never touch storage directly.
type Service interface {
	// Recover loads the persisted snapshot, if any, and replaces the in-memory
	// state with it. A corrupt snapshot is logged and the default state is kept.
	Recover(ctx context.Context) (todo.State, error)

	// State returns a copy of the current state.
	State() todo.State

	// Dispatch applies action and, when the action persists, writes the
	// resulting state. On a write failure the in-memory state is left unchanged.
	Dispatch(ctx context.Context, action todo.Action) (todo.State, error)

	// AddTask creates a task from tpl with a fresh id and appends it.
	AddTask(ctx context.Context, tpl todo.Template) (todo.Task, error)

	// SetName replaces the user's name. The empty string unsets it.
	SetName(ctx context.Context, name string) error

	// RemoveTask removes every task with the given id. Missing ids are a no-op.
	RemoveTask(ctx context.Context, id string) error

	// Reset clears the persisted snapshot and returns to the default state.
	Reset(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}

// StorageError marks a failure of the underlying store, as opposed to a
// problem with the user's request.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err came from the store.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// Local implements Service over a persist.Adapter.
type Local struct {
	mu      sync.Mutex
	state   todo.State
	store   storage.Store
	adapter *persist.Adapter
	ids     ident.Generator
	log     *zap.Logger
}

// Option configures a Local service.
type Option func(*Local)

// WithIDGenerator overrides the task id generator.
func WithIDGenerator(g ident.Generator) Option {
	return func(l *Local) { l.ids = g }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(l *Local) { l.log = log }
}

// New creates a Local service over store, starting from the default state.
// Call Recover to load the persisted snapshot.
func New(store storage.Store, opts ...Option) *Local {
	l := &Local{
		state:   todo.Default(),
		store:   store,
		adapter: persist.New(store),
		ids:     ident.UUID{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Recover implements Service.
func (l *Local) Recover(ctx context.Context) (todo.State, error) {
	ok, err := l.adapter.Exists(ctx)
	if err != nil {
		return l.State(), &StorageError{Op: "recover", Err: err}
	}
	if !ok {
		l.log.Debug("no snapshot stored, starting empty", zap.String("key", persist.Key))
		return l.State(), nil
	}

	snap, err := l.adapter.Load(ctx)
	if err != nil {
		if errors.Is(err, persist.ErrCorruptSnapshot) {
			l.log.Warn("ignoring unreadable snapshot, starting empty",
				zap.String("key", persist.Key), zap.Error(err))
			return l.State(), nil
		}
		return l.State(), &StorageError{Op: "recover", Err: err}
	}

	state, err := l.Dispatch(ctx, todo.RecoverState{State: snap})
	if err != nil {
		return state, err
	}
	l.log.Debug("recovered snapshot",
		zap.Bool("name_set", state.Name.IsSet()), zap.Int("tasks", len(state.Tasks)))
	return state, nil
}

// State implements Service.
func (l *Local) State() todo.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Dispatch implements Service.
func (l *Local) Dispatch(ctx context.Context, action todo.Action) (todo.State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := todo.Transition(l.state, action)
	if action != nil && action.Persists() {
		if err := l.adapter.Save(ctx, next); err != nil {
			l.log.Warn("state not persisted", zap.Stringer("action", action), zap.Error(err))
			return l.state.Clone(), &StorageError{Op: action.String(), Err: err}
		}
	}
	l.state = next
	l.log.Debug("dispatched", zap.Stringer("action", action), zap.Int("tasks", len(next.Tasks)))
	return next.Clone(), nil
}

// AddTask implements Service.
func (l *Local) AddTask(ctx context.Context, tpl todo.Template) (todo.Task, error) {
	task := tpl.NewTask(l.ids.NewID())
	if _, err := l.Dispatch(ctx, todo.AddTask{Task: task}); err != nil {
		return todo.Task{}, err
	}
	return task, nil
}

// SetName implements Service.
func (l *Local) SetName(ctx context.Context, name string) error {
	_, err := l.Dispatch(ctx, todo.SetName{Name: todo.NewName(name)})
	return err
}

// RemoveTask implements Service.
func (l *Local) RemoveTask(ctx context.Context, id string) error {
	_, err := l.Dispatch(ctx, todo.RemoveTask{ID: id})
	return err
}

// Reset implements Service.
func (l *Local) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.adapter.Clear(ctx); err != nil {
		return &StorageError{Op: "reset", Err: err}
	}
	l.state = todo.Default()
	l.log.Debug("state reset")
	return nil
}

// Close implements Service.
func (l *Local) Close() error {
	return l.store.Close()
}
