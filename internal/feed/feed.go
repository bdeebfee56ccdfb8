// Package feed keeps the latest world snapshot from a server without blocking
// a viewer's frame loop.
package feed

import (
	"context"
	"sync"

	"life-web/internal/sim"
)

// Source is the server API a Feed pulls from.
type Source interface {
	Snapshot(ctx context.Context) (sim.Snapshot, error)
	Advance(ctx context.Context) (sim.Snapshot, error)
	NewWorld(ctx context.Context, width, height int, velocity float64) error
}

type command int

const (
	cmdRefresh command = iota
	cmdAdvance
	cmdReset
)

// Feed serializes requests to a Source on a background goroutine. Requests
// made while one is already queued are dropped.
type Feed struct {
	src  Source
	cmds chan command

	mu      sync.Mutex
	latest  sim.Snapshot
	err     error
	version int
}

// New returns a Feed for src. Call Run to start processing.
func New(src Source) *Feed {
	return &Feed{src: src, cmds: make(chan command, 1)}
}

// Run processes requests until ctx is cancelled. It fetches the current
// snapshot first.
func (f *Feed) Run(ctx context.Context) error {
	f.handle(ctx, cmdRefresh)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-f.cmds:
			f.handle(ctx, cmd)
		}
	}
}

func (f *Feed) handle(ctx context.Context, cmd command) {
	var (
		snap sim.Snapshot
		err  error
	)
	switch cmd {
	case cmdAdvance:
		snap, err = f.src.Advance(ctx)
	case cmdReset:
		cur, _ := f.Latest()
		if err = f.src.NewWorld(ctx, cur.Width, cur.Height, cur.Velocity); err == nil {
			snap, err = f.src.Snapshot(ctx)
		}
	default:
		snap, err = f.src.Snapshot(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
	if err == nil {
		f.latest = snap
		f.version++
	}
}

func (f *Feed) request(cmd command) bool {
	select {
	case f.cmds <- cmd:
		return true
	default:
		return false
	}
}

// Advance asks for the next generation. It reports whether the request was queued.
func (f *Feed) Advance() bool { return f.request(cmdAdvance) }

// Refresh asks for the current snapshot without advancing.
func (f *Feed) Refresh() bool { return f.request(cmdRefresh) }

// Reset asks for a new random world with the current dimensions and velocity.
func (f *Feed) Reset() bool { return f.request(cmdReset) }

// Latest returns the most recent snapshot and the error from the last request.
func (f *Feed) Latest() (sim.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.err
}

// Version increments every time a new snapshot arrives.
func (f *Feed) Version() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version
}
