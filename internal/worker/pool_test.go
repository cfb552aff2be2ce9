package worker

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteKeepsInputOrder(t *testing.T) {
	pool := NewPool(4, func(ctx context.Context, n int) (string, error) {
		return strconv.Itoa(n * 2), nil
	})

	tasks := pool.Execute(context.Background(), []int{1, 2, 3, 4, 5})

	require.Len(t, tasks, 5)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Input)
		assert.Equal(t, strconv.Itoa((i+1)*2), task.Result)
		assert.NoError(t, task.Err)
	}
}

func TestExecuteRecordsErrors(t *testing.T) {
	fail := errors.New("boom")
	pool := NewPool(2, func(ctx context.Context, n int) (int, error) {
		if n%2 == 0 {
			return 0, fail
		}
		return n, nil
	})

	tasks := pool.Execute(context.Background(), []int{1, 2, 3})

	assert.NoError(t, tasks[0].Err)
	assert.ErrorIs(t, tasks[1].Err, fail)
	assert.NoError(t, tasks[2].Err)
}

func TestNewPoolClampsWorkers(t *testing.T) {
	pool := NewPool(0, func(ctx context.Context, n int) (int, error) { return n, nil })
	tasks := pool.Execute(context.Background(), []int{7})
	require.Len(t, tasks, 1)
	assert.Equal(t, 7, tasks[0].Result)
}

func TestBatch(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	batches := Batch(items, 2)
	require.Len(t, batches, 3)
	assert.Equal(t, []string{"a", "b"}, batches[0])
	assert.Equal(t, []string{"c", "d"}, batches[1])
	assert.Equal(t, []string{"e"}, batches[2])

	assert.Len(t, Batch(items, 10), 1)
	assert.Len(t, Batch(items, 0), 5, "non-positive size clamps to 1")
	assert.Empty(t, Batch([]string(nil), 3))
}
