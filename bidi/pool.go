package bidi

import (
	"context"
	"fmt"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
)

// ContextPool holds re-usable contexts for concurrent resolution of
// paragraphs. Contexts keep their buffers between uses, thus avoiding
// re-allocation for every paragraph.
type ContextPool struct {
	opool *pool.ObjectPool
	opts  []Option
}

// NewContextPool creates a pool of contexts, each of them configured with opts.
// The pool is unbounded and never blocks.
func NewContextPool(opts ...Option) *ContextPool {
	cp := &ContextPool{opts: opts}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return NewContext(cp.opts...), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	cp.opool = pool.NewObjectPool(context.Background(), factory, config)
	return cp
}

// Borrow gets a context from the pool. Clients must put it back with Return
// when done.
func (cp *ContextPool) Borrow(ctx context.Context) (*Context, error) {
	o, err := cp.opool.BorrowObject(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot borrow bidi context: %w", err)
	}
	return o.(*Context), nil
}

// Return puts a context back into the pool. The context's configuration is
// reset to the pool's options, so changes by the client do not leak to
// subsequent borrowers.
func (cp *ContextPool) Return(ctx context.Context, bc *Context) {
	if bc == nil {
		return
	}
	bc.mode = 0
	bc.configure(cp.opts...)
	if err := cp.opool.ReturnObject(ctx, bc); err != nil {
		tracer().Errorf("cannot return bidi context to pool: %v", err)
	}
}

// Close releases all idle contexts of the pool.
func (cp *ContextPool) Close(ctx context.Context) {
	cp.opool.Close(ctx)
}

var defaultPool struct {
	once sync.Once
	pool *ContextPool
}

func globalPool() *ContextPool {
	defaultPool.once.Do(func() {
		defaultPool.pool = NewContextPool()
	})
	return defaultPool.pool
}

// BorrowContext gets a context with default configuration from a global pool.
func BorrowContext() *Context {
	bc, err := globalPool().Borrow(context.Background())
	if err != nil {
		tracer().Errorf("%v", err)
		return NewContext()
	}
	return bc
}

// ReturnContext puts a context obtained by BorrowContext back into the
// global pool.
func ReturnContext(bc *Context) {
	globalPool().Return(context.Background(), bc)
}
