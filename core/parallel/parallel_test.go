package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkers(t *testing.T) {
	assert.Equal(t, 1, Workers(1, 10))
	assert.Equal(t, 4, Workers(4, 10))
	assert.Equal(t, 3, Workers(8, 3))
	assert.Equal(t, min(runtime.NumCPU(), 100), Workers(-1, 100))
	assert.Equal(t, 1, Workers(-1, 0))
}

func TestForEach(t *testing.T) {
	for _, jobs := range []int{1, 2, -1} {
		out := make([]int, 50)
		err := ForEach(len(out), jobs, func(i int) error {
			out[i] = i * i
			return nil
		})
		assert.NoError(t, err)
		for i, v := range out {
			assert.Equal(t, i*i, v)
		}
	}
}

func TestForEachError(t *testing.T) {
	boom := errors.New("fold failed")

	t.Run("sequential stops at first error", func(t *testing.T) {
		var calls atomic.Int32
		err := ForEach(10, 1, func(i int) error {
			calls.Add(1)
			if i == 3 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int32(4), calls.Load())
	})

	t.Run("parallel returns error", func(t *testing.T) {
		err := ForEach(10, 4, func(i int) error {
			if i == 7 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestForEachNoItems(t *testing.T) {
	assert.NoError(t, ForEach(0, 4, func(int) error { return errors.New("never") }))
}
