package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"todo/internal/ident"
	"todo/internal/persist"
	"todo/internal/service"
	"todo/internal/testutil"
	"todo/internal/todo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var cmpOpts = cmp.AllowUnexported(todo.Name{})

func newService(store *testutil.MemStore) *service.Local {
	return service.New(store, service.WithIDGenerator(&ident.Sequence{Prefix: "id-"}))
}

func persisted(t *testing.T, store *testutil.MemStore) todo.State {
	t.Helper()
	raw, ok := store.Raw(persist.Key)
	require.True(t, ok, "snapshot not written")
	state, err := persist.Decode([]byte(raw))
	require.NoError(t, err)
	return state
}

func TestRecover_EmptyStorage(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)

	state, err := svc.Recover(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(todo.Default(), state, cmpOpts); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, store.Writes(), "recovery must not write")
}

func TestRecover_ReplacesState(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, `{"name":"Ada","tasks":[{"id":"a","name":"x","isDone":true,"isFav":false}]}`)
	svc := newService(store)

	state, err := svc.Recover(context.Background())
	require.NoError(t, err)

	want := todo.State{Name: todo.NewName("Ada"), Tasks: []todo.Task{{ID: "a", Name: "x", IsDone: true}}}
	if diff := cmp.Diff(want, state, cmpOpts); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, svc.State(), cmpOpts); diff != "" {
		t.Errorf("held state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, store.Writes(), "recovery must not write")
}

func TestRecover_CorruptSnapshotFallsBack(t *testing.T) {
	store := testutil.NewMemStore()
	store.Put(persist.Key, "{{{ definitely not json")
	core, logs := observer.New(zap.WarnLevel)
	svc := service.New(store, service.WithLogger(zap.New(core)))

	state, err := svc.Recover(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(todo.Default(), state, cmpOpts); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "unreadable snapshot")

	raw, _ := store.Raw(persist.Key)
	assert.Equal(t, "{{{ definitely not json", raw, "corrupt snapshot left until next write")
}

func TestRecover_StoreError(t *testing.T) {
	store := testutil.NewMemStore()
	store.HasErr = errors.New("permission denied")

	_, err := newService(store).Recover(context.Background())
	require.Error(t, err)
	assert.True(t, service.IsStorageError(err))
}

func TestSetName(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetName(ctx, "Ada"))

	assert.Equal(t, "Ada", svc.State().Name.String())
	assert.True(t, svc.State().Name.IsSet())
	assert.Equal(t, "Ada", persisted(t, store).Name.String())
}

func TestAddTask_Twice(t *testing.T) {
	store := testutil.NewMemStore()
	svc := service.New(store)
	ctx := context.Background()

	first, err := svc.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)
	second, err := svc.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEmpty(t, first.ID)

	state := svc.State()
	require.Len(t, state.Tasks, 2)
	for _, task := range state.Tasks {
		assert.Equal(t, "learning context", task.Name)
		assert.True(t, task.IsDone)
		assert.False(t, task.IsFav)
	}
	if diff := cmp.Diff(state, persisted(t, store), cmpOpts); diff != "" {
		t.Errorf("persisted mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveTask_FirstOfTwo(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	first, err := svc.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)
	second, err := svc.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveTask(ctx, first.ID))

	state := svc.State()
	require.Len(t, state.Tasks, 1)
	assert.Equal(t, second, state.Tasks[0])
	assert.Equal(t, []todo.Task{second}, persisted(t, store).Tasks)
}

func TestRemoveTask_MissingIsNoop(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	_, err := svc.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveTask(ctx, "does-not-exist"))
	assert.Len(t, svc.State().Tasks, 1)
}

func TestDispatch_WriteFailureKeepsState(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetName(ctx, "Ada"))

	boom := errors.New("quota exceeded")
	store.SetErr = boom
	_, err := svc.AddTask(ctx, todo.DefaultTemplate)

	require.ErrorIs(t, err, boom)
	assert.True(t, service.IsStorageError(err))
	assert.Empty(t, svc.State().Tasks)
	assert.Equal(t, "Ada", svc.State().Name.String())
}

func TestDispatch_RecoverStateDoesNotWrite(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)

	snap := todo.State{Name: todo.NewName("Grace"), Tasks: []todo.Task{}}
	state, err := svc.Dispatch(context.Background(), todo.RecoverState{State: snap})
	require.NoError(t, err)

	assert.Equal(t, "Grace", state.Name.String())
	assert.Equal(t, 0, store.Writes())
}

func TestState_ReturnsCopy(t *testing.T) {
	svc := newService(testutil.NewMemStore())
	_, err := svc.AddTask(context.Background(), todo.DefaultTemplate)
	require.NoError(t, err)

	s := svc.State()
	s.Tasks[0].Name = "mutated"

	assert.Equal(t, "learning context", svc.State().Tasks[0].Name)
}

func TestReset(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetName(ctx, "Ada"))
	_, err := svc.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	if diff := cmp.Diff(todo.Default(), svc.State(), cmpOpts); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	_, ok := store.Raw(persist.Key)
	assert.False(t, ok)
}

func TestReset_StoreError(t *testing.T) {
	store := testutil.NewMemStore()
	svc := newService(store)
	ctx := context.Background()
	require.NoError(t, svc.SetName(ctx, "Ada"))

	store.DeleteErr = errors.New("read-only")
	err := svc.Reset(ctx)

	require.Error(t, err)
	assert.True(t, service.IsStorageError(err))
	assert.Equal(t, "Ada", svc.State().Name.String())
}

func TestReloadAfterWrites(t *testing.T) {
	store := testutil.NewMemStore()
	ctx := context.Background()

	first := newService(store)
	require.NoError(t, first.SetName(ctx, "Ada"))
	_, err := first.AddTask(ctx, todo.DefaultTemplate)
	require.NoError(t, err)

	second := newService(store)
	state, err := second.Recover(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first.State(), state, cmpOpts); diff != "" {
		t.Errorf("reloaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestClose(t *testing.T) {
	store := testutil.NewMemStore()
	require.NoError(t, newService(store).Close())
	assert.True(t, store.Closed())
}
