package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/ident"
	"todo/internal/persist"
	"todo/internal/service"
	"todo/internal/testutil"
	"todo/internal/todo"
)

func newModel(t *testing.T, store *testutil.MemStore) Model {
	t.Helper()
	svc := service.New(store, service.WithIDGenerator(&ident.Sequence{Prefix: "id-"}))
	_, err := svc.Recover(context.Background())
	require.NoError(t, err)
	return New(context.Background(), svc, todo.DefaultTemplate)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_StartsInNamingMode(t *testing.T) {
	m := newModel(t, testutil.NewMemStore())

	assert.True(t, m.naming())
	view := m.View()
	assert.Contains(t, view, "What is your name?")
	assert.Contains(t, view, "Tasks:")
	assert.Equal(t, 2, strings.Count(view, addTaskHint))
}

func TestModel_SubmitName(t *testing.T) {
	store := testutil.NewMemStore()
	m := newModel(t, store)

	m = send(m, runes("A"), runes("d"), runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.naming())
	assert.Equal(t, "Ada", m.State().Name.String())
	assert.Contains(t, m.View(), "Hello Ada !")
	assert.NotContains(t, m.View(), "What is your name?")

	raw, ok := store.Raw(persist.Key)
	require.True(t, ok)
	assert.Contains(t, raw, `"name":"Ada"`)
}

func TestModel_SubmitEmptyNameStaysInNamingMode(t *testing.T) {
	m := newModel(t, testutil.NewMemStore())

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.naming())
	assert.Contains(t, m.View(), "What is your name?")
}

func TestModel_LettersTypedWhileNamingAreNotCommands(t *testing.T) {
	m := newModel(t, testutil.NewMemStore())

	m = send(m, runes("a"), runes("x"), runes("q"))

	assert.Empty(t, m.State().Tasks)
	assert.Equal(t, "axq", m.input.Value())
}

func TestModel_AddTaskTwice(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[]}`)
	m := newModel(t, store)

	m = send(m, runes("a"), runes("a"))

	tasks := m.State().Tasks
	require.Len(t, tasks, 2)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
	for _, task := range tasks {
		assert.Equal(t, "learning context", task.Name)
		assert.True(t, task.IsDone)
		assert.False(t, task.IsFav)
	}
	assert.Contains(t, m.View(), "id-1")
	assert.Contains(t, m.View(), "id-2")
}

func TestModel_CtrlAAddsWhileNaming(t *testing.T) {
	m := newModel(t, testutil.NewMemStore())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlA})

	assert.Len(t, m.State().Tasks, 1)
	assert.True(t, m.naming())
}

func TestModel_RemoveSelected(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[
		{"id":"first","name":"one","isDone":true,"isFav":false},
		{"id":"second","name":"two","isDone":true,"isFav":false}
	]}`)
	m := newModel(t, store)

	m = send(m, runes("x"))

	tasks := m.State().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "second", tasks[0].ID)
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_CursorMovement(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[{"id":"1"},{"id":"2"},{"id":"3"}]}`)
	m := newModel(t, store)

	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("j"))
	assert.Equal(t, 2, m.Cursor())

	m = send(m, runes("x"))
	assert.Equal(t, 1, m.Cursor(), "cursor clamps after removing the last task")

	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, runes("k"))
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_RemoveOnEmptyList(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[]}`)
	m := newModel(t, store)

	m = send(m, runes("x"))

	assert.Empty(t, m.State().Tasks)
	assert.NoError(t, m.Err())
}

func TestModel_Reset(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[{"id":"1","name":"one"}]}`)
	m := newModel(t, store)

	m = send(m, runes("R"))

	assert.True(t, m.naming())
	assert.Empty(t, m.State().Tasks)
	_, ok := store.Raw(persist.Key)
	assert.False(t, ok)
}

func TestModel_StorageErrorShown(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[]}`)
	m := newModel(t, store)
	store.SetErr = errors.New("quota exceeded")

	m = send(m, runes("a"))

	require.Error(t, m.Err())
	assert.Empty(t, m.State().Tasks)
	assert.Contains(t, m.View(), "quota exceeded")
}

func TestModel_Quit(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[]}`)
	m := newModel(t, store)

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %s", msg)
		assert.Equal(t, tea.Quit(), cmd())
	}
}
