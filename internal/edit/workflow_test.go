package edit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrylevesque/userdeck/internal/models"
)

type fakeUpdater struct {
	mu    sync.Mutex
	err   error
	calls []models.UserFields
	ids   []int
	// block, when set, holds UpdateUser until it is closed.
	block chan struct{}
	// entered is closed once UpdateUser has been called.
	entered chan struct{}
}

func (f *fakeUpdater) UpdateUser(ctx context.Context, id int, fields models.UserFields) error {
	f.mu.Lock()
	f.ids = append(f.ids, id)
	f.calls = append(f.calls, fields)
	entered, block := f.entered, f.block
	f.mu.Unlock()
	if entered != nil {
		close(entered)
	}
	if block != nil {
		<-block
	}
	return f.err
}

type fakeMerger struct {
	ids    []int
	fields []models.UserFields
}

func (f *fakeMerger) ApplyEditResult(id int, fields models.UserFields) {
	f.ids = append(f.ids, id)
	f.fields = append(f.fields, fields)
}

var ann = models.User{ID: 1, Name: "Ann Lee", Email: "ann@x.com", Age: 30}

func TestWorkflow_StartsClosed(t *testing.T) {
	w := New(&fakeUpdater{}, &fakeMerger{}, nil)
	assert.Equal(t, Closed, w.State())
	_, ok := w.Buffer()
	assert.False(t, ok)
}

func TestWorkflow_OpenSeedsBuffer(t *testing.T) {
	w := New(&fakeUpdater{}, &fakeMerger{}, nil)
	require.True(t, w.Open(ann))

	assert.Equal(t, Open, w.State())
	b, ok := w.Buffer()
	require.True(t, ok)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, ann.Fields(), b.UserFields)
}

func TestWorkflow_OpenThenCancelClearsBuffer(t *testing.T) {
	up, mg := &fakeUpdater{}, &fakeMerger{}
	w := New(up, mg, nil)
	w.Open(ann)
	w.SetName("Someone Else")

	require.True(t, w.Cancel())
	assert.Equal(t, Closed, w.State())
	_, ok := w.Buffer()
	assert.False(t, ok)
	assert.Empty(t, up.calls)
	assert.Empty(t, mg.ids)
}

func TestWorkflow_SettersIgnoredWhenClosed(t *testing.T) {
	w := New(&fakeUpdater{}, &fakeMerger{}, nil)
	w.SetName("X")
	w.SetAge(20)
	w.SetEmail("x@y.com")
	_, ok := w.Buffer()
	assert.False(t, ok)
}

func TestWorkflow_SetAgeText(t *testing.T) {
	w := New(&fakeUpdater{}, &fakeMerger{}, nil)
	w.Open(ann)

	w.SetAgeText("42")
	b, _ := w.Buffer()
	assert.Equal(t, 42, b.Age)

	w.SetAgeText("abc")
	b, _ = w.Buffer()
	assert.Equal(t, 0, b.Age)
}

func TestWorkflow_SubmitWhenClosedIsInvalidUser(t *testing.T) {
	up := &fakeUpdater{}
	w := New(up, &fakeMerger{}, nil)

	err := w.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleInvalidUser, verr.Rule)
	assert.Empty(t, up.calls)
}

func TestWorkflow_SubmitAgeOutOfRangeKeepsBuffer(t *testing.T) {
	up := &fakeUpdater{}
	w := New(up, &fakeMerger{}, nil)
	w.Open(ann)
	w.SetName("O K")
	w.SetAge(7)
	w.SetEmail("a@b.com")
	before, _ := w.Buffer()

	err := w.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleAgeFormat, verr.Rule)

	assert.Equal(t, Open, w.State())
	after, ok := w.Buffer()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Empty(t, up.calls)
}

func TestWorkflow_SubmitSuccessMergesAndCloses(t *testing.T) {
	up, mg := &fakeUpdater{}, &fakeMerger{}
	w := New(up, mg, nil)
	w.Open(ann)
	w.SetName("Jon Ng")
	w.SetAge(45)
	w.SetEmail("jon@ng.com")

	require.NoError(t, w.Submit(context.Background()))

	want := models.UserFields{Name: "Jon Ng", Email: "jon@ng.com", Age: 45}
	assert.Equal(t, []int{1}, up.ids)
	assert.Equal(t, []models.UserFields{want}, up.calls)
	assert.Equal(t, []int{1}, mg.ids)
	assert.Equal(t, []models.UserFields{want}, mg.fields)
	assert.Equal(t, Closed, w.State())
	_, ok := w.Buffer()
	assert.False(t, ok)
}

func TestWorkflow_SaveFailureReopensWithBuffer(t *testing.T) {
	cause := errors.New("connection refused")
	up, mg := &fakeUpdater{err: cause}, &fakeMerger{}
	w := New(up, mg, nil)
	w.Open(ann)
	w.SetName("Jon Ng")

	err := w.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, Open, w.State())
	b, ok := w.Buffer()
	require.True(t, ok)
	assert.Equal(t, "Jon Ng", b.Name)
	assert.Empty(t, mg.ids)
}

func TestWorkflow_SavingBlocksSecondSubmitAndCancel(t *testing.T) {
	up := &fakeUpdater{block: make(chan struct{}), entered: make(chan struct{})}
	mg := &fakeMerger{}
	w := New(up, mg, nil)
	w.Open(ann)

	errc := make(chan error, 1)
	go func() { errc <- w.Submit(context.Background()) }()
	<-up.entered

	assert.Equal(t, Saving, w.State())
	assert.ErrorIs(t, w.Submit(context.Background()), ErrBusy)
	assert.False(t, w.Cancel())
	assert.False(t, w.Open(models.User{ID: 2}))
	w.SetName("Changed Mid Save")

	close(up.block)
	require.NoError(t, <-errc)
	assert.Len(t, up.calls, 1)
	assert.Equal(t, []models.UserFields{ann.Fields()}, mg.fields)
	assert.Equal(t, Closed, w.State())
}
