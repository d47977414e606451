// Package taskgroup runs groups of goroutines tied to a shared context, in
// the manner of golang.org/x/sync/errgroup but with the group context forced
// onto every task. Task panics are captured and reported as errors, and no
// task is started once the context is dead.
package taskgroup

import (
	"context"
	"sync"
)

// Group manages goroutines sharing one context. The first task to fail
// cancels the context; Wait reports that failure. A Group is single-use:
// after Wait the context is dead and no further tasks will run.
type Group struct {
	ctx    context.Context
	cancel context.CancelCauseFunc

	wg sync.WaitGroup

	sem chan struct{}

	errOnce sync.Once
	err     error
}

// New returns a Group whose context descends from ctx.
func New(ctx context.Context) *Group {
	g := &Group{}
	g.ctx, g.cancel = context.WithCancelCause(ctx)
	return g
}

// NewWithLimit returns a Group that runs at most limit tasks at once; Go
// blocks while the limit is reached. Panics if limit is negative.
func NewWithLimit(ctx context.Context, limit int) *Group {
	if limit < 0 {
		panic("taskgroup: negative limit")
	}
	g := New(ctx)
	g.sem = make(chan struct{}, limit)
	return g
}

// Go runs fn in a new goroutine, passing the group context. The first fn to
// return a non-nil error or to panic cancels the group; Wait returns that
// failure. Go returns without running fn once the group context is dead.
func (g *Group) Go(fn func(context.Context) error) {
	if err := g.ctx.Err(); err != nil {
		g.error(err)
		return
	}
	if g.sem != nil {
		select {
		case <-g.ctx.Done():
			g.error(g.ctx.Err())
			return
		case g.sem <- struct{}{}:
		}
	}
	g.start(fn)
}

// TryGo runs fn only if the group is below its concurrency limit, reporting
// whether the goroutine was started. Like Go, it reports true without
// running fn once the group context is dead.
func (g *Group) TryGo(fn func(context.Context) error) bool {
	if err := g.ctx.Err(); err != nil {
		g.error(err)
		return true
	}
	if g.sem != nil {
		select {
		case g.sem <- struct{}{}:
		default:
			return false
		}
	}
	g.start(fn)
	return true
}

// Wait blocks until every started task has returned, then returns the first
// failure, if any. The group context is cancelled either way.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel(g.err)
	return g.err
}

func (g *Group) start(fn func(context.Context) error) {
	g.wg.Add(1)
	go func() {
		defer g.done()
		defer func() {
			if r := recover(); r != nil {
				g.error(newPanicError(r))
			}
		}()
		if err := fn(g.ctx); err != nil {
			g.error(err)
		}
	}()
}

func (g *Group) done() {
	if g.sem != nil {
		<-g.sem
	}
	g.wg.Done()
}

func (g *Group) error(err error) {
	g.errOnce.Do(func() {
		g.err = err
		g.cancel(err)
	})
}
