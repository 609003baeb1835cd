package todo

import "fmt"

// Action is a discrete state change request.
// The set of actions is closed; see Transition.
type Action interface {
	// Persists reports whether the resulting state must be written to storage.
	Persists() bool

	fmt.Stringer

	isAction()
}

// AddTask appends Task to the end of the list.
type AddTask struct {
	Task Task
}

// SetName replaces the user's name.
type SetName struct {
	Name Name
}

// RemoveTask drops every task whose id equals ID.
type RemoveTask struct {
	ID string
}

// RecoverState replaces the whole state with a snapshot read from storage.
// It is never written back.
type RecoverState struct {
	State State
}

func (AddTask) Persists() bool      { return true }
func (SetName) Persists() bool      { return true }
func (RemoveTask) Persists() bool   { return true }
func (RecoverState) Persists() bool { return false }

func (AddTask) String() string      { return "addTask" }
func (SetName) String() string      { return "setName" }
func (RemoveTask) String() string   { return "removeTask" }
func (RecoverState) String() string { return "recoverState" }

func (AddTask) isAction()      {}
func (SetName) isAction()      {}
func (RemoveTask) isAction()   {}
func (RecoverState) isAction() {}
