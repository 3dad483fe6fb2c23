// Package safe_close coordinates graceful shutdown of attached goroutines.
package safe_close

import (
	"sync"
)

// SafeClose fans a single close signal out to every attached goroutine and
// waits until all of them report done. The first error sent with the close
// signal is kept and returned by WaitClosed.
type SafeClose struct {
	closeSignal chan struct{}
	closeOnce   sync.Once

	mu  sync.Mutex
	err error

	wg sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine. f must call done() when it has fully
// stopped and should begin shutting down once closeSignal is closed.
func (sc *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	sc.wg.Add(1)
	done := sync.OnceFunc(func() { sc.wg.Done() })
	go f(done, sc.closeSignal)
}

// SendCloseSignal requests shutdown. The first non-nil err wins; subsequent
// calls are no-ops.
func (sc *SafeClose) SendCloseSignal(err error) {
	sc.closeOnce.Do(func() {
		sc.mu.Lock()
		sc.err = err
		sc.mu.Unlock()
		close(sc.closeSignal)
	})
}

// CloseNotify returns the channel closed by SendCloseSignal.
func (sc *SafeClose) CloseNotify() <-chan struct{} {
	return sc.closeSignal
}

// WaitClosed blocks until every attached goroutine called done, then returns
// the error the close signal carried, if any.
func (sc *SafeClose) WaitClosed() error {
	sc.wg.Wait()
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.err
}
