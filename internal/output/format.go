// Package output provides plain-text formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/todo"
)

const (
	// NamePrompt is shown while no name has been entered.
	NamePrompt = "What is your name?"

	// TasksHeading introduces the task list.
	TasksHeading = "Tasks:"

	// NoTasks is printed in place of an empty list.
	NoTasks = "no tasks"

	markYes = "✔"
	markNo  = "❌"
)

// Greeting returns the greeting for a set name.
func Greeting(name todo.Name) string {
	return fmt.Sprintf("Hello %s !", normalize(name.String()))
}

// FormatHeader writes the greeting or, if the name is unset, the name prompt.
func FormatHeader(w io.Writer, name todo.Name) {
	if name.IsSet() {
		fmt.Fprintln(w, Greeting(name))
		return
	}
	fmt.Fprintln(w, NamePrompt)
}

// FormatTask formats a task line.
// Format: "{N:>4}  {NAME}  isDone? {MARK}  isFav? {MARK}  [{ID}]\n"
func FormatTask(w io.Writer, num int, task todo.Task) {
	fmt.Fprintf(w, "%4d  %s  %s  [%s]\n", num, normalizeTitle(task.Name), Flags(task), task.ID)
}

// Flags renders the isDone?/isFav? markers of a task: ✔ for true, ❌ for false.
func Flags(task todo.Task) string {
	return fmt.Sprintf("isDone? %s  isFav? %s", mark(task.IsDone), mark(task.IsFav))
}

// FormatState writes the whole page: header, heading and tasks.
func FormatState(w io.Writer, state todo.State) {
	FormatHeader(w, state.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, TasksHeading)
	if len(state.Tasks) == 0 {
		fmt.Fprintln(w, NoTasks)
		return
	}
	for i, task := range state.Tasks {
		FormatTask(w, i+1, task)
	}
}

func mark(b bool) string {
	if b {
		return markYes
	}
	return markNo
}

// normalizeTitle normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = normalize(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
