package workqueue

import "time"

// runResult is the outcome of one scheduler
// step: an item executed (runOK), the queue was (and
// still is) empty when the wait timed out (runEmpty), the head is a
// barrier still waiting on in-flight work (runBusy), or a stop item was
// observed and handled (runStopped).
type runResult uint8

const (
	runOK runResult = iota
	runEmpty
	runBusy
	runStopped
)

// waitLocked blocks on q.cond for up to timeout, or indefinitely if
// timeout is negative, or not at all if timeout is zero. sync.Cond has no
// built-in deadline, so a timed wait arms a timer that re-acquires q.mu and
// broadcasts once it fires; the caller always re-checks its predicate after
// returning, exactly as any sync.Cond.Wait caller must (spurious wakeups,
// and here also a "was this our timer or real progress" ambiguity, are
// both resolved by the caller's own re-check).
func (q *Queue) waitLocked(timeout time.Duration) {
	switch {
	case timeout < 0:
		q.cond.Wait()
	case timeout == 0:
		// non-blocking poll: fall straight through to the caller's re-check
	default:
		timer := time.AfterFunc(timeout, func() {
			q.mu.Lock()
			q.cond.Broadcast()
			q.mu.Unlock()
		})
		q.cond.Wait()
		timer.Stop()
	}
}

// runLocked is the unified scheduler step shared by every worker goroutine
// and by RunMainQueue: wait for a runnable head, then either handle a
// barrier/stop item in place (still under q.mu, so the handoff can't race
// a concurrent flush or the queue's own teardown) or run one
// user item with q.mu released. Callers must hold q.mu on entry; it is
// still held on every return.
func (q *Queue) runLocked(timeout time.Duration) runResult {
	deadline := time.Now().Add(timeout)
	for q.head == nil || (q.head.kind == itemBarrier && q.nRunning > 0) {
		wait := timeout
		if timeout > 0 {
			wait = time.Until(deadline)
		}
		if timeout == 0 || (timeout > 0 && wait <= 0) {
			if q.head == nil {
				return runEmpty
			}
			return runBusy
		}
		q.waitLocked(wait)
	}

	switch q.head.kind {
	case itemStop:
		if q.nThreads > 1 {
			// not the last worker standing: pass the stop along and let
			// whichever goroutine is last actually drain and execute it.
			q.cond.Signal()
			return runStopped
		}
		item := q.unlinkHeadLocked()
		executeItem(item, q.kind == kindMain)
		return runStopped

	case itemBarrier:
		item := q.unlinkHeadLocked()
		executeItem(item, q.kind == kindMain)
		return runOK
	}

	item := q.unlinkHeadLocked()
	q.nRunning++
	q.mu.Unlock()
	executeItem(item, q.kind == kindMain)
	q.mu.Lock()
	q.nRunning--
	return runOK
}

// executeItem runs one item's callbacks. When isMain is true, item is
// being drained directly off the main queue: its notify, if any, runs
// immediately and nothing further happens (the item's work, if it ever had
// one, already ran wherever it was originally scheduled). Otherwise item's
// work runs first (a no-op for barrier/stop items, which carry none), and
// if it has a notify, the same item is forwarded onto the main queue so
// the notify runs there instead of on this goroutine.
func executeItem(item *workItem, isMain bool) {
	if isMain {
		if item.notify != nil {
			item.notify(item.data)
		}
		return
	}

	if item.work != nil {
		item.work(item.data)
	}

	if item.notify != nil {
		mq := mainQueueSingleton()
		mq.mu.Lock()
		_ = mq.addLocked(item, false, false)
		mq.mu.Unlock()
	}
}

// queueVTable is shared by private queues, the shared pool, and the main
// queue: prepareExecutiveQueue decides whether another worker goroutine is
// warranted, signalExecutiveQueue wakes one that may be waiting idle.
//
// Assigned in init() rather than as a var initializer: initRegistry reads
// queueVTable, and prepareExecutiveQueue/startWorker transitively reach
// back into initRegistry, which a var initializer's dependency analysis
// would flag as an initialization cycle.
var queueVTable vtable

func init() {
	queueVTable = vtable{
		prepareExecutive: prepareExecutiveQueue,
		signalExecutive:  signalExecutiveQueue,
	}
}

// prepareExecutiveQueue starts a worker if
// none exists yet, or if there's more backlog than idle capacity and width
// allows another. Called with q.mu held, before the item being added is
// appended, so nItems/nRunning reflect the state just before this add.
func prepareExecutiveQueue(q *Queue) error {
	more := q.nThreads < q.width && q.nThreads-q.nRunning < q.nItems+1
	if q.nThreads != 0 && !more {
		return nil
	}
	if err := startWorker(q); err != nil {
		if q.nThreads == 0 {
			return err
		}
		Logger.Warn().Err(err).Str("queue", q.name).Msg("workqueue: recovered failure to start an additional worker")
		return nil
	}
	q.nThreads++
	return nil
}

func signalExecutiveQueue(q *Queue) {
	q.cond.Signal()
}
