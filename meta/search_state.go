package meta

import (
	"sync"

	"github.com/coregx/hashchain/verify"
)

// searchStatePool manages per-search scan state for concurrent reuse of the
// same Engine.
//
// Usage pattern:
//
//	st := e.states.get()
//	defer e.states.put(st)
//	// scan with st
//
// Each goroutine must use its own state; a state is never shared while a
// search is running.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool() *searchStatePool {
	return &searchStatePool{
		pool: sync.Pool{
			New: func() any {
				return new(verify.State)
			},
		},
	}
}

// get retrieves a cleared state from the pool, creating one if necessary.
func (p *searchStatePool) get() *verify.State {
	return p.pool.Get().(*verify.State)
}

// put clears a state and returns it to the pool.
func (p *searchStatePool) put(st *verify.State) {
	if st == nil {
		return
	}
	st.Reset()
	p.pool.Put(st)
}
