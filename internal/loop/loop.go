// Package loop runs a pentris engine on its own goroutine.
//
// A Loop is an actor: the gravity timer, player actions and snapshot requests
// are all cases of one select statement, so the engine is only ever touched
// by the goroutine inside Run.
package loop

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pentris/internal/core"
	"github.com/vovakirdan/tui-pentris/internal/pentris"
)

var (
	// ErrStarted is returned by Run when the loop has already been run.
	ErrStarted = errors.New("loop: already started")
	// ErrStopped is returned when talking to a loop that has terminated.
	ErrStopped = errors.New("loop: stopped")
)

const defaultQueueSize = 32

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithQueueSize sets how many actions may be queued before Send blocks.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// Loop drives an engine with a variable-interval gravity timer.
type Loop struct {
	engine    *pentris.Engine
	logger    *log.Logger
	queueSize int

	actions chan core.Action
	snapReq chan chan pentris.Snapshot

	subMu  sync.Mutex
	subs   []chan pentris.Snapshot
	closed bool

	started  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a loop around engine. The engine must not be used by anything
// else once Run has been called.
func New(engine *pentris.Engine, opts ...Option) *Loop {
	l := &Loop{
		engine:    engine,
		logger:    log.New(io.Discard),
		queueSize: defaultQueueSize,
		snapReq:   make(chan chan pentris.Snapshot),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.actions = make(chan core.Action, l.queueSize)
	return l
}

// Send queues a player action. It blocks only while the queue is full and
// returns false once the loop has stopped.
func (l *Loop) Send(a core.Action) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.actions <- a:
		return true
	case <-l.done:
		return false
	}
}

// Snapshot asks the loop goroutine for a copy of the engine state.
func (l *Loop) Snapshot(ctx context.Context) (pentris.Snapshot, error) {
	reply := make(chan pentris.Snapshot, 1)
	select {
	case l.snapReq <- reply:
	case <-l.done:
		return pentris.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return pentris.Snapshot{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-l.done:
		return pentris.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return pentris.Snapshot{}, ctx.Err()
	}
}

// Subscribe returns a channel that receives a snapshot after every state
// change. Only the latest snapshot is kept; a slow reader skips intermediate
// ones. The channel is closed when the loop stops.
func (l *Loop) Subscribe() <-chan pentris.Snapshot {
	ch := make(chan pentris.Snapshot, 1)
	l.subMu.Lock()
	defer l.subMu.Unlock()
	if l.closed {
		close(ch)
		return ch
	}
	l.subs = append(l.subs, ch)
	return ch
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run starts the game if it has not started and processes ticks and actions
// until ctx is cancelled or ActionQuit is received. A Loop runs only once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrStarted
	}
	defer l.finish()

	if l.engine.Status() == pentris.StatusNotStarted {
		l.engine.Start()
	}
	l.logger.Info("game started",
		"mode", l.engine.Set().Title(),
		"interval", l.engine.Interval(),
	)

	timer := time.NewTimer(l.engine.Interval())
	defer timer.Stop()
	var tickC <-chan time.Time

	// arm restarts the gravity timer with the current interval, or parks it
	// when the game is not being played.
	arm := func() {
		if l.engine.Status() == pentris.StatusPlaying {
			timer.Reset(l.engine.Interval())
			tickC = timer.C
			return
		}
		timer.Stop()
		tickC = nil
	}
	arm()
	l.publish()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop cancelled", "err", ctx.Err())
			return nil

		case a := <-l.actions:
			if a == core.ActionQuit {
				l.logger.Debug("quit requested")
				return nil
			}
			if l.apply(a) {
				arm()
			}

		case reply := <-l.snapReq:
			reply <- l.engine.Snapshot()

		case <-tickC:
			l.tick()
			arm()
		}
	}
}

// apply dispatches an action and reports whether the timer must be re-armed.
func (l *Loop) apply(a core.Action) bool {
	before := l.engine.Status()
	level := l.engine.State().Level
	changed := l.engine.Apply(a)
	after := l.engine.Status()

	if changed {
		l.publish()
	}
	if a == core.ActionRestart {
		l.logger.Info("game restarted")
		return true
	}
	if before == after {
		return false
	}

	switch after {
	case pentris.StatusPaused:
		l.logger.Debug("game paused")
	case pentris.StatusPlaying:
		l.logger.Debug("game resumed")
	case pentris.StatusLost:
		st := l.engine.State()
		l.logger.Info("game lost", "score", st.Score, "lines", st.Lines, "level", level)
	}
	return true
}

func (l *Loop) tick() {
	level := l.engine.State().Level
	res := l.engine.Tick()
	st := l.engine.State()

	if res.Cleared > 0 {
		l.logger.Debug("lines cleared", "rows", res.Cleared, "score", st.Score, "lines", st.Lines)
	}
	if st.Level != level {
		l.logger.Info("level up", "level", st.Level, "interval", st.Interval)
	}
	if res.Lost {
		l.logger.Info("game lost", "score", st.Score, "lines", st.Lines, "level", st.Level)
	}
	l.publish()
}

// publish hands the latest snapshot to every subscriber without blocking.
// The loop goroutine is the only sender, so after draining a stale value the
// second send always has room.
func (l *Loop) publish() {
	snap := l.engine.Snapshot()

	l.subMu.Lock()
	defer l.subMu.Unlock()
	for _, ch := range l.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (l *Loop) finish() {
	l.subMu.Lock()
	l.closed = true
	for _, ch := range l.subs {
		close(ch)
	}
	l.subs = nil
	l.subMu.Unlock()

	l.doneOnce.Do(func() {
		close(l.done)
	})
}
