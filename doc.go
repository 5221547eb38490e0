// Package workqueue implements a small, process-wide work scheduling engine:
// a shared concurrent thread pool, private serialized queues, bounded-width
// buckets, and a single main queue that the owning goroutine drains
// cooperatively to receive completion notifications.
//
// The design mirrors a classic single-producer-many-consumer engine built
// on a mutex and condition variable per queue, rather than per-operation
// channels: every Queue owns a FIFO linked list of work items, and a vtable
// distinguishes how a private/shared queue dispatches (goroutine workers,
// up to a configurable width) from how a bucket does (borrowing runner
// goroutines from the shared pool, bounded by the bucket's own width).
//
// Work callbacks run on worker goroutines, never on the caller's
// goroutine. Cancellation callbacks run synchronously inside the AddRewind
// call that evicts their item. Notify callbacks are always forwarded to
// the single package-wide main queue, and only run when some goroutine
// calls RunMainQueue to drain it. This keeps callback execution on a
// single, predictable goroutine (whichever one is pumping the main queue),
// which is what makes Flush and Stop able to observe completion instead of
// racing it.
package workqueue
