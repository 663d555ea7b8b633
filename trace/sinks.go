// SPDX-License-Identifier: MIT

package trace

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Kind tags an Event.
type Kind int

const (
	// KindProgress carries Current and Total.
	KindProgress Kind = iota
	// KindLog carries Line.
	KindLog
	// KindComplete has no payload.
	KindComplete
)

// Event is one buffered hook invocation.
type Event struct {
	Kind    Kind
	Current int
	Total   int
	Line    string
}

// Buffered is a fire-and-forget sink: hook calls enqueue into a bounded
// channel and drop the event when it is full. The solver never waits.
type Buffered struct {
	ch      chan Event
	dropped atomic.Int64
}

// NewBuffered returns a sink with room for size events (size < 1 ⇒ 1).
func NewBuffered(size int) *Buffered {
	if size < 1 {
		size = 1
	}

	return &Buffered{ch: make(chan Event, size)}
}

func (b *Buffered) push(e Event) {
	select {
	case b.ch <- e:
	default:
		b.dropped.Add(1)
	}
}

// Hooks returns hooks feeding this sink.
func (b *Buffered) Hooks() Hooks {
	return Hooks{
		OnProgress: func(current, total int) { b.push(Event{Kind: KindProgress, Current: current, Total: total}) },
		OnLogLine:  func(line string) { b.push(Event{Kind: KindLog, Line: line}) },
		OnComplete: func() { b.push(Event{Kind: KindComplete}) },
	}
}

// Events exposes the receive side for a consumer goroutine.
func (b *Buffered) Events() <-chan Event { return b.ch }

// Dropped returns how many events were discarded because the buffer was full.
func (b *Buffered) Dropped() int64 { return b.dropped.Load() }

// Drain returns every event currently buffered without blocking.
func (b *Buffered) Drain() []Event {
	var out []Event
	for {
		select {
		case e := <-b.ch:
			out = append(out, e)
		default:
			return out
		}
	}
}

// Slog adapts hooks to a structured logger: log lines at Debug, progress
// at Debug with current/total attributes, completion at Info.
// logger==nil uses slog.Default().
func Slog(logger *slog.Logger) Hooks {
	if logger == nil {
		logger = slog.Default()
	}
	ctx := context.Background()

	return Hooks{
		OnProgress: func(current, total int) {
			logger.LogAttrs(ctx, slog.LevelDebug, "progress", slog.Int("current", current), slog.Int("total", total))
		},
		OnLogLine:  func(line string) { logger.LogAttrs(ctx, slog.LevelDebug, line) },
		OnComplete: func() { logger.LogAttrs(ctx, slog.LevelInfo, "complete") },
	}
}

// Recorder keeps every event in memory. Safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	lines     []string
	progress  [][2]int
	completed int
}

// Hooks returns hooks writing into r.
func (r *Recorder) Hooks() Hooks {
	return Hooks{
		OnProgress: func(current, total int) {
			r.mu.Lock()
			r.progress = append(r.progress, [2]int{current, total})
			r.mu.Unlock()
		},
		OnLogLine: func(line string) {
			r.mu.Lock()
			r.lines = append(r.lines, line)
			r.mu.Unlock()
		},
		OnComplete: func() {
			r.mu.Lock()
			r.completed++
			r.mu.Unlock()
		},
	}
}

// Lines returns a copy of recorded log lines.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.lines...)
}

// Progress returns a copy of recorded (current, total) pairs.
func (r *Recorder) Progress() [][2]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([][2]int(nil), r.progress...)
}

// Completed returns how many times OnComplete fired.
func (r *Recorder) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.completed
}
