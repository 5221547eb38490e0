package workqueue

// bucketVTable backs buckets: unlike private queues and the shared pool, a
// bucket never waits on its own condition variable (it has none). Instead,
// adding an item to an under-capacity bucket submits a one-shot runner item
// to the shared pool, which drains the bucket's own head directly.
var bucketVTable = vtable{
	prepareExecutive: prepareExecutiveBucket,
}

// prepareExecutiveBucket submits a runner to the shared pool if the bucket
// has spare width. Called with b.mu held.
func prepareExecutiveBucket(b *Queue) error {
	if b.nRunning >= b.width {
		return nil
	}
	runner := &workItem{kind: itemUser, work: func(any) { runBucket(b) }}
	sp := Shared()
	sp.mu.Lock()
	err := sp.addLocked(runner, false, false)
	sp.mu.Unlock()
	if err != nil {
		return err
	}
	b.nRunning++
	return nil
}

// runBucket drains a bucket's head items, one at a time, on the shared
// pool goroutine that was handed this runner. It stops when the bucket is
// empty, or when it reaches a barrier/stop item: that item is drained and
// executed in place only if this is the last active runner for the
// bucket (nRunning == 1), otherwise it's left for whichever runner
// eventually is.
func runBucket(b *Queue) {
	b.mu.Lock()
	for b.head != nil {
		if b.head.kind != itemUser {
			if b.nRunning == 1 {
				item := b.unlinkHeadLocked()
				executeItem(item, false)
			}
			break
		}
		item := b.unlinkHeadLocked()
		b.mu.Unlock()
		executeItem(item, false)
		b.mu.Lock()
	}
	b.nRunning--
	b.mu.Unlock()
}
