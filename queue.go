package workqueue

import "sync"

// queueKind distinguishes the four flavors of Queue that share this type.
// Only kindBucket uses the bucket vtable; the other three share the same
// thread-backed vtable and differ only in their field values (width,
// pre-seeded nThreads for the main queue, and so on).
type queueKind uint8

const (
	kindShared queueKind = iota
	kindMain
	kindPrivate
	kindBucket
)

// vtable decides
// how a Queue reacts to a new item being appended (prepareExecutive, called
// under the queue's lock, before the append) and after (signalExecutive,
// called under the lock, after the append).
type vtable struct {
	prepareExecutive func(q *Queue) error
	signalExecutive  func(q *Queue)
}

// Queue is a FIFO of work items plus the policy for running them: a
// private serialized queue (width 1), the shared concurrent pool (width
// configurable, default 32), the singleton main queue (drained externally
// by RunMainQueue, never by a goroutine it owns), or a bucket (bounded
// parallelism borrowed from the shared pool).
//
// All fields are guarded by mu unless noted otherwise.
type Queue struct {
	mu   sync.Mutex
	cond *sync.Cond // nil for buckets; buckets never block waiting for work

	name    string
	kind    queueKind
	vtable  vtable
	maxSize int
	width   int

	xref int // external references; reaching zero self-stops and frees the queue

	nItems   int
	nRunning int // items currently executing (or, for buckets, runner goroutines alive)
	nThreads int // worker goroutines alive; meaningless for buckets

	head, tail *workItem
	control    workItem // the queue's single reserved barrier/stop slot

	destroyNotify func(ctx any)
	destroyCtx    any
}

// for testing purposes: lets a test simulate allocation failure (New and
// NewBucket report ErrOutOfMemory) or a worker goroutine that fails to
// start (prepareExecutiveQueue's recovered-failure path).
var (
	newQueueStruct = func() *Queue { return &Queue{} }
	startWorker    = func(q *Queue) error {
		go q.workerLoop()
		return nil
	}
)

func newQueueInternal(name string, kind queueKind, maxSize, width int) *Queue {
	q := newQueueStruct()
	if q == nil {
		return nil
	}
	q.name = name
	q.kind = kind
	q.maxSize = maxSize
	q.width = width
	q.xref = 1
	if kind == kindBucket {
		q.vtable = bucketVTable
	} else {
		q.cond = sync.NewCond(&q.mu)
		q.vtable = queueVTable
	}
	return q
}

// New creates a private serialized queue: at most one item from it runs at
// a time, in submission order. maxSize must be positive.
func New(name string, maxSize int) (*Queue, error) {
	if maxSize <= 0 {
		panic("workqueue: maxSize must be positive")
	}
	initRegistry()
	q := newQueueInternal(name, kindPrivate, maxSize, 1)
	if q == nil {
		return nil, ErrOutOfMemory
	}
	registryMu.Lock()
	privateQueues[q] = struct{}{}
	registryMu.Unlock()
	Logger.Debug().Str("queue", name).Msg("workqueue: private queue created")
	return q, nil
}

// NewBucket creates a bucket: up to width items from it may run
// concurrently, each one borrowing a runner goroutine from the shared
// pool. maxSize and width must be positive.
func NewBucket(name string, maxSize, width int) (*Queue, error) {
	if maxSize <= 0 {
		panic("workqueue: maxSize must be positive")
	}
	if width <= 0 {
		panic("workqueue: width must be positive")
	}
	initRegistry()
	q := newQueueInternal(name, kindBucket, maxSize, width)
	if q == nil {
		return nil, ErrOutOfMemory
	}
	registryMu.Lock()
	buckets[q] = struct{}{}
	registryMu.Unlock()
	Logger.Debug().Str("bucket", name).Int("width", width).Msg("workqueue: bucket created")
	return q, nil
}

// SetDestroyNotify registers a callback run once the queue's last external
// reference is released and its final stop item has drained. It must be
// called before the first Unref that could bring xref to zero; setting it
// more than once, or after the queue starts self-destructing, panics.
func (q *Queue) SetDestroyNotify(notify func(ctx any), ctx any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.destroyNotify != nil {
		panic("workqueue: destroy notify already set")
	}
	if q.xref <= 0 {
		panic("workqueue: destroy notify set after the queue started self-destructing")
	}
	q.destroyNotify = notify
	q.destroyCtx = ctx
}

// Ref increments the queue's external reference count and returns q. It is
// a no-op (and accepts a nil receiver) for the shared pool and main queue,
// which are never destroyed.
func (q *Queue) Ref() *Queue {
	if q == nil || q.kind == kindShared || q.kind == kindMain {
		return q
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.xref <= 0 {
		panic("workqueue: Ref on a queue with no external references left")
	}
	q.xref++
	return q
}

// Unref decrements the queue's external reference count. When it reaches
// zero, the queue stops accepting new external referrers and schedules its
// own destruction once any in-flight work and its worker goroutines have
// drained. A nil receiver, or the shared pool or main queue, is a no-op.
func (q *Queue) Unref() {
	if q == nil || q.kind == kindShared || q.kind == kindMain {
		return
	}
	q.mu.Lock()
	if q.xref <= 0 {
		q.mu.Unlock()
		panic("workqueue: Unref on a queue with no external references left")
	}
	q.xref--
	zero := q.xref == 0
	q.mu.Unlock()

	if zero {
		q.selfStop()
	}
}

// selfStop enqueues the queue's own stop item, whose notify is the
// queue's final teardown (free).
func (q *Queue) selfStop() {
	q.mu.Lock()
	if q.control.kind != itemUser {
		q.mu.Unlock()
		panic("workqueue: control item already in use")
	}
	q.control.kind = itemStop
	q.control.work = nil
	q.control.cancel = nil
	q.control.data = nil
	q.control.notify = func(any) { q.free() }
	err := q.addLocked(&q.control, false, false)
	q.mu.Unlock()
	if err != nil {
		panic("workqueue: self-stop add failed: " + err.Error())
	}
}

// free tears the queue down: verifies nothing is still running against it,
// removes it from the registry, and invokes the destroy notify if one was
// registered. It runs as the notify of a stop item drained from the main
// queue, so it is never called concurrently with itself for the same
// Queue.
func (q *Queue) free() {
	if q.kind == kindShared || q.kind == kindMain {
		panic("workqueue: the shared pool and main queue are never freed")
	}

	q.mu.Lock()
	switch q.kind {
	case kindBucket:
		if q.nRunning != 0 {
			q.mu.Unlock()
			panic("workqueue: destroying a bucket with runners still active")
		}
	default:
		if q.nThreads != 0 {
			q.mu.Unlock()
			panic("workqueue: destroying a queue with worker goroutines still active")
		}
	}
	q.mu.Unlock()

	registryMu.Lock()
	switch q.kind {
	case kindPrivate:
		delete(privateQueues, q)
	case kindBucket:
		delete(buckets, q)
	}
	registryMu.Unlock()

	Logger.Debug().Str("queue", q.name).Msg("workqueue: queue freed")

	if q.destroyNotify != nil {
		q.destroyNotify(q.destroyCtx)
	}
}
