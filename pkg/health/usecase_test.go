package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name  string
	err   error
	calls int
}

func (f *fakeChecker) Name() string { return f.name }

func (f *fakeChecker) Check(context.Context) error {
	f.calls++
	return f.err
}

func TestReadyAllPass(t *testing.T) {
	a, b := &fakeChecker{name: "a"}, &fakeChecker{name: "b"}
	assert.NoError(t, NewService(a, nil, b).Ready(context.Background()))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestReadyStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	a, b := &fakeChecker{name: "artifacts", err: boom}, &fakeChecker{name: "postgres"}
	err := NewService(a, b).Ready(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "artifacts: boom")
	assert.Zero(t, b.calls)
}

func TestReadyNoCheckers(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))
}
