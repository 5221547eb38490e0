package workqueue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_BoundedParallelism(t *testing.T) {
	b, err := NewBucket("bucket-test", 64, 3)
	require.NoError(t, err)
	defer b.Unref()

	const total = 12
	var mu sync.Mutex
	current, peak := 0, 0
	release := make(chan struct{})

	for i := 0; i < total; i++ {
		require.NoError(t, b.Add(func(any) {
			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()

			<-release

			mu.Lock()
			current--
			mu.Unlock()
		}, nil, nil, nil))
	}

	waitUntil(t, time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return current == 3
	})

	close(release)
	require.NoError(t, b.Flush())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, peak)
	assert.Equal(t, 0, current)
}

func TestBucket_FlushThenUnref_InvokesDestroyNotify(t *testing.T) {
	b, err := NewBucket("bucket-destroy-test", 16, 2)
	require.NoError(t, err)

	destroyed := make(chan struct{})
	b.SetDestroyNotify(func(any) { close(destroyed) }, nil)

	var ran bool
	require.NoError(t, b.Add(func(any) { ran = true }, nil, nil, nil))
	require.NoError(t, b.Flush())
	assert.True(t, ran)

	b.Unref()
	pumpMainQueueUntil(destroyed)
}
