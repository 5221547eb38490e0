package workqueue

import "sync"

// Process-global state: the shared concurrent pool and main queue
// singletons, plus the live sets of private queues and buckets (tracked
// only so free() can remove a queue from the right set; nothing iterates
// them today, but a diagnostic dump of every live queue would read from
// here).
var (
	registryOnce sync.Once
	sharedPool   *Queue
	mainQueue    *Queue

	registryMu    sync.Mutex
	privateQueues = map[*Queue]struct{}{}
	buckets       = map[*Queue]struct{}{}
)

// initRegistry lazily creates the shared pool and main queue on first use.
// Configure must be called, if at all, before anything triggers this.
func initRegistry() {
	registryOnce.Do(func() {
		configured = true

		sharedPool = &Queue{
			name:    "shared-pool",
			kind:    kindShared,
			maxSize: globalOptions.sharedMaxSize,
			width:   globalOptions.sharedWidth,
			xref:    1,
			vtable:  queueVTable,
		}
		sharedPool.cond = sync.NewCond(&sharedPool.mu)

		mainQueue = &Queue{
			name:    "main-queue",
			kind:    kindMain,
			maxSize: globalOptions.sharedMaxSize,
			width:   1,
			// nThreads is pinned at 1 and never touched again: the main
			// queue has no worker goroutines of its own, it is drained by
			// whatever goroutine calls RunMainQueue. Pinning nThreads==width
			// keeps prepareExecutiveQueue's "spawn a worker" branch from
			// ever firing for it.
			nThreads: 1,
			xref:     1,
			vtable:   queueVTable,
		}
		mainQueue.cond = sync.NewCond(&mainQueue.mu)
	})
}

// Shared returns the process-wide concurrent pool. Add, Flush and Stop
// treat a nil *Queue receiver as this queue, so most callers never need to
// call Shared directly; AddRewind returns ErrInvalid for a nil receiver.
func Shared() *Queue {
	initRegistry()
	return sharedPool
}

func mainQueueSingleton() *Queue {
	initRegistry()
	return mainQueue
}
