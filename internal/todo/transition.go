package todo

// Transition returns the state that results from applying action to state.
//
// Transition is pure: state is never modified and the result never shares its
// Tasks backing array with state. An unrecognized or nil action returns a copy
// of state.
func Transition(state State, action Action) State {
	switch a := action.(type) {
	case AddTask:
		next := state.Clone()
		next.Tasks = append(next.Tasks, a.Task)
		return next

	case SetName:
		next := state.Clone()
		next.Name = a.Name
		return next

	case RemoveTask:
		next := State{Name: state.Name, Tasks: make([]Task, 0, len(state.Tasks))}
		for _, t := range state.Tasks {
			if t.ID != a.ID {
				next.Tasks = append(next.Tasks, t)
			}
		}
		return next

	case RecoverState:
		return a.State.Clone()

	default:
		return state.Clone()
	}
}
