package workflows

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepLog struct {
	mu    sync.Mutex
	order []string
}

func (l *stepLog) step(name string, err error) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context) error {
			l.mu.Lock()
			l.order = append(l.order, name)
			l.mu.Unlock()
			return err
		},
	}
}

func TestPipelineRunsStepsInOrder(t *testing.T) {
	l := &stepLog{}
	p := NewPipeline("test",
		l.step("one", nil),
		l.step("two", nil),
		l.step("three", nil),
	)

	results, err := p.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two", "three"}, l.order)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.False(t, r.Skipped)
	}
}

func TestPipelineSkipsAfterFailure(t *testing.T) {
	boom := errors.New("boom")

	l := &stepLog{}
	p := NewPipeline("test",
		l.step("one", nil),
		l.step("two", boom),
		l.step("three", nil),
	)

	results, err := p.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The failed step ran; the one after it did not.
	assert.Equal(t, []string{"one", "two"}, l.order)

	require.Len(t, results, 3)
	assert.Equal(t, "one", results[0].Name)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "two", results[1].Name)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.Equal(t, "three", results[2].Name)
	assert.True(t, results[2].Skipped)
}

func TestPipelineSkipsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &stepLog{}
	p := NewPipeline("test", l.step("one", nil))

	results, err := p.Execute(ctx)
	require.Error(t, err)
	assert.Empty(t, l.order)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
}
