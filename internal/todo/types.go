// Package todo defines the task list data model and its pure state transitions.
package todo

// Task represents a single task item.
type Task struct {
	ID     string
	Name   string
	IsDone bool
	IsFav  bool
}

// Name is the user's name. The zero value is unset.
// A set Name always carries a non-empty string.
type Name struct {
	value string
}

// Unset returns the unset Name.
func Unset() Name { return Name{} }

// NewName returns a Name holding s.
// The empty string yields the unset Name.
func NewName(s string) Name {
	return Name{value: s}
}

// IsSet reports whether a name has been entered.
func (n Name) IsSet() bool { return n.value != "" }

// String returns the name, or "" when unset.
func (n Name) String() string { return n.value }

// State is the whole application state: the user's name and their tasks.
type State struct {
	Name  Name
	Tasks []Task
}

// Default returns the initial state: no name and no tasks.
func Default() State {
	return State{Name: Unset(), Tasks: []Task{}}
}

// Clone returns a deep copy of s. The returned Tasks slice is never nil.
func (s State) Clone() State {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	return State{Name: s.Name, Tasks: tasks}
}

// Find returns the first task with the given id.
func (s State) Find(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Template holds the fields a new task is created with.
// Only the id is generated at add time.
type Template struct {
	Name   string
	IsDone bool
	IsFav  bool
}

// DefaultTemplate is the canned task inserted by the add gesture.
var DefaultTemplate = Template{
	Name:   "learning context",
	IsDone: true,
	IsFav:  false,
}

// NewTask builds a task from the template with the given id.
func (tpl Template) NewTask(id string) Task {
	return Task{
		ID:     id,
		Name:   tpl.Name,
		IsDone: tpl.IsDone,
		IsFav:  tpl.IsFav,
	}
}
