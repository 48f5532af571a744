package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	stopErr  error
	log      *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init() error {
	*f.log = append(*f.log, "init "+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start "+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return f.stopErr
}

// TestHubLifecycleOrder verifies dependency order on init/start and reverse order on stop
func TestHubLifecycleOrder(t *testing.T) {
	var calls []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "ui", deps: []string{"terminal", "audio"}, log: &calls}))
	require.NoError(t, h.Register(&fakeService{name: "terminal", log: &calls}))
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &calls}))

	order, err := h.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"audio", "terminal", "ui"}, order)

	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())
	require.NoError(t, h.StopAll())
	require.NoError(t, h.StopAll(), "second StopAll is a no-op")

	assert.Equal(t, []string{
		"init audio", "init terminal", "init ui",
		"start audio", "start terminal", "start ui",
		"stop ui", "stop terminal", "stop audio",
	}, calls)
}

// TestHubInitRollback verifies a failing Init stops only already-initialized services
func TestHubInitRollback(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &calls}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: boom, log: &calls}))

	err := h.InitAll()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init a", "init b", "stop a"}, calls)

	calls = calls[:0]
	assert.NoError(t, h.StopAll())
	assert.Empty(t, calls)
}

// TestHubStartRollback verifies a failing Start stops every initialized service
func TestHubStartRollback(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &calls}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: boom, log: &calls}))

	require.NoError(t, h.InitAll())
	assert.ErrorIs(t, h.StartAll(), boom)
	assert.Equal(t, []string{"init a", "init b", "start a", "start b", "stop b", "stop a"}, calls)
}

// TestHubStopErrorsJoined verifies every service is stopped even when some fail
func TestHubStopErrorsJoined(t *testing.T) {
	var calls []string
	e1, e2 := errors.New("e1"), errors.New("e2")
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", stopErr: e1, log: &calls}))
	require.NoError(t, h.Register(&fakeService{name: "b", stopErr: e2, log: &calls}))
	require.NoError(t, h.InitAll())

	err := h.StopAll()
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
	assert.Equal(t, []string{"init a", "init b", "stop b", "stop a"}, calls)
}

// TestHubRegistrationErrors verifies duplicate, missing and cyclic registrations
func TestHubRegistrationErrors(t *testing.T) {
	var calls []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &calls}))
	assert.Error(t, h.Register(&fakeService{name: "a", log: &calls}))

	missing := NewHub()
	require.NoError(t, missing.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &calls}))
	assert.ErrorContains(t, missing.InitAll(), "unregistered")

	cyclic := NewHub()
	require.NoError(t, cyclic.Register(&fakeService{name: "a", deps: []string{"b"}, log: &calls}))
	require.NoError(t, cyclic.Register(&fakeService{name: "b", deps: []string{"a"}, log: &calls}))
	assert.ErrorContains(t, cyclic.InitAll(), "circular")
	assert.Empty(t, calls)

	svc := MustGet[*fakeService](h, "a")
	assert.Equal(t, "a", svc.Name())
	assert.Panics(t, func() { MustGet[*fakeService](h, "nope") })
}
