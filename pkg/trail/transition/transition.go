// Package transition commits surface mutations and reports when their effects
// have visibly finished.
//
// A Committer wraps a mutating body in a scoped block and guarantees that the
// completion callback fires exactly once, after the body and any animation it
// started. History bookkeeping and backward unwinding in the router package
// depend on that single signal.
package transition

import "go.uber.org/atomic"

// Committer runs a mutation and reports its completion.
type Committer interface {
	Commit(done func(), body func())
}

// Func adapts a plain function to the Committer interface.
type Func func(done func(), body func())

func (f Func) Commit(done func(), body func()) {
	f(done, body)
}

// Immediate commits mutations that take effect synchronously.
// done fires right after body returns.
type Immediate struct{}

func (Immediate) Commit(done func(), body func()) {
	done = Once(done)
	body()
	done()
}

// Once wraps fn so only its first invocation has an effect.
// A nil fn yields a no-op.
func Once(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	fired := atomic.NewBool(false)
	return func() {
		if fired.CompareAndSwap(false, true) {
			fn()
		}
	}
}
