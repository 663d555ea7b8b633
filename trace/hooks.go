// SPDX-License-Identifier: MIT

// Package trace carries solver progress and log events to the caller.
//
// Solvers never log by themselves: they call the optional hooks in Hooks
// after coarse steps (each pivot, each branch-and-bound level). Hooks must
// not block; wrap a slow consumer in Buffered.
package trace

import "fmt"

// Hooks is the side channel every solver accepts. Any field may be nil.
type Hooks struct {
	// OnProgress receives (current, total) after each coarse step.
	// total may grow while a solve runs (e.g. after a cut is appended).
	OnProgress func(current, total int)

	// OnLogLine receives one human-readable diagnostic line.
	OnLogLine func(line string)

	// OnComplete is called once when a solve call returns, error or not.
	OnComplete func()
}

// Progress forwards to OnProgress when set.
func (h Hooks) Progress(current, total int) {
	if h.OnProgress != nil {
		h.OnProgress(current, total)
	}
}

// Log forwards line to OnLogLine when set.
func (h Hooks) Log(line string) {
	if h.OnLogLine != nil {
		h.OnLogLine(line)
	}
}

// Logf formats only when OnLogLine is set.
func (h Hooks) Logf(format string, args ...interface{}) {
	if h.OnLogLine != nil {
		h.OnLogLine(fmt.Sprintf(format, args...))
	}
}

// Complete forwards to OnComplete when set.
func (h Hooks) Complete() {
	if h.OnComplete != nil {
		h.OnComplete()
	}
}

// Logging reports whether OnLogLine is set, so callers can skip building
// expensive dumps.
func (h Hooks) Logging() bool { return h.OnLogLine != nil }

// Tee fans every event out to all hs in order.
func Tee(hs ...Hooks) Hooks {
	return Hooks{
		OnProgress: func(current, total int) {
			for _, h := range hs {
				h.Progress(current, total)
			}
		},
		OnLogLine: func(line string) {
			for _, h := range hs {
				h.Log(line)
			}
		},
		OnComplete: func() {
			for _, h := range hs {
				h.Complete()
			}
		},
	}
}
