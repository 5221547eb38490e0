package workqueue

import "time"

// options holds process-wide defaults for the shared pool and its worker
// goroutines. Mirrors the functional-options shape used throughout this
// author's other modules (see eventloop.LoopOption): an unexported struct,
// an exported Option func type, and one constructor per knob.
type options struct {
	sharedWidth   int
	sharedMaxSize int
	idleTimeout   time.Duration
}

var globalOptions = options{
	sharedWidth:   32,
	sharedMaxSize: 65535,
	idleTimeout:   65 * time.Second,
}

// configured latches true the moment the registry is initialized (lazily,
// on first use of Shared, RunMainQueue, New, or NewBucket). Configure
// panics if called afterwards, since the shared pool and main queue would
// already have been built from the stale defaults.
var configured bool

// Option configures process-wide defaults via Configure.
type Option func(*options)

// WithSharedPoolWidth sets the maximum number of concurrent worker
// goroutines the shared pool will start. The default is 32.
func WithSharedPoolWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.sharedWidth = n
		}
	}
}

// WithSharedPoolMaxSize sets the shared pool's and main queue's maxSize.
// The default is 65535.
func WithSharedPoolMaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.sharedMaxSize = n
		}
	}
}

// WithWorkerIdleTimeout sets how long an idle worker goroutine (private
// queue or shared pool) waits for a new item before exiting. The default
// is 65 seconds.
func WithWorkerIdleTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.idleTimeout = d
		}
	}
}

// Configure sets process-wide defaults for the shared pool, main queue,
// and worker goroutines. It must be called before any other package
// function (the first call to Shared, RunMainQueue, New, or NewBucket
// freezes these defaults); calling it afterwards panics.
func Configure(opts ...Option) {
	if configured {
		panic("workqueue: Configure called after the registry was already initialized")
	}
	for _, opt := range opts {
		opt(&globalOptions)
	}
}
