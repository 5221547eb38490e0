package workqueue

import "errors"

// Sentinel errors returned by Queue operations. Use errors.Is to test for
// them; none of them wrap further context.
var (
	// ErrFull is returned by Add when the queue is at its maxSize and the
	// caller asked not to evict older items (AddRewind never returns it).
	ErrFull = errors.New("workqueue: queue is full")

	// ErrEmpty is returned by RunMainQueue when no item arrived before the
	// requested timeout elapsed.
	ErrEmpty = errors.New("workqueue: no item arrived before timeout")

	// ErrBusy is returned by RunMainQueue when the head of the queue is a
	// barrier that is still waiting on work submitted before it.
	ErrBusy = errors.New("workqueue: blocked behind an unreached barrier")

	// ErrStopped is returned by RunMainQueue after it observes and executes
	// a stop item's notifier.
	ErrStopped = errors.New("workqueue: stop item observed")

	// ErrInvalid is returned when the queue an operation targets is not
	// valid for that operation: AddRewind against the shared pool or main
	// queue, or Flush or Stop against the main queue.
	ErrInvalid = errors.New("workqueue: invalid operation")

	// ErrOutOfMemory is returned by New and NewBucket when queue allocation
	// fails. Exercised only via the newQueueStruct test seam; Go's allocator
	// does not otherwise report this condition to callers.
	ErrOutOfMemory = errors.New("workqueue: failed to allocate queue")
)
