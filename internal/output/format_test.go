package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/internal/todo"
)

func TestFormatHeader(t *testing.T) {
	var buf bytes.Buffer
	FormatHeader(&buf, todo.Unset())
	assert.Equal(t, "What is your name?\n", buf.String())

	buf.Reset()
	FormatHeader(&buf, todo.NewName("Ada"))
	assert.Equal(t, "Hello Ada !\n", buf.String())

	buf.Reset()
	FormatHeader(&buf, todo.NewName("  "))
	assert.Equal(t, "Hello    !\n", buf.String(), "whitespace names are set")
}

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task todo.Task
		want string
	}{
		{
			name: "done not fav",
			num:  1,
			task: todo.Task{ID: "abc", Name: "learning context", IsDone: true},
			want: "   1  learning context  isDone? ✔  isFav? ❌  [abc]\n",
		},
		{
			name: "fav not done",
			num:  12,
			task: todo.Task{ID: "x", Name: "call mum", IsFav: true},
			want: "  12  call mum  isDone? ❌  isFav? ✔  [x]\n",
		},
		{
			name: "untitled",
			num:  3,
			task: todo.Task{ID: "y", Name: " \t"},
			want: "   3  (untitled)  isDone? ❌  isFav? ❌  [y]\n",
		},
		{
			name: "newlines",
			num:  4,
			task: todo.Task{ID: "z", Name: "a\r\nb"},
			want: "   4  a  b  isDone? ❌  isFav? ❌  [z]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.num, tt.task)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatState(t *testing.T) {
	var buf bytes.Buffer
	FormatState(&buf, todo.Default())
	assert.Equal(t, "What is your name?\n\nTasks:\nno tasks\n", buf.String())

	buf.Reset()
	FormatState(&buf, todo.State{
		Name:  todo.NewName("Ada"),
		Tasks: []todo.Task{{ID: "1", Name: "one"}, {ID: "2", Name: "two", IsDone: true}},
	})
	assert.Equal(t, "Hello Ada !\n\nTasks:\n"+
		"   1  one  isDone? ❌  isFav? ❌  [1]\n"+
		"   2  two  isDone? ✔  isFav? ❌  [2]\n", buf.String())
}
