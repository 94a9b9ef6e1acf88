// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the eliminator and the
// stream codec. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxElements bounds width*height accepted by Decode.
	// It keeps a hostile or corrupt header from forcing a huge allocation.
	DefaultMaxElements = 1 << 24
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxElementsInvalid = "matrix: WithMaxElements: limit must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	stepHook    func(Step) // observer of Reduce steps; nil means none
	maxElements int        // Decode limit on width*height; DefaultMaxElements
}

// WithStepHook registers fn to observe every elementary step of Reduce
// (swap, normalize, eliminate) in execution order.
// Implementation:
//   - Stage 1: capture fn.
//   - Stage 2: return a setter that installs it.
//
// Behavior highlights:
//   - fn receives a Step value; it can not alter the reduction.
//   - A nil fn clears any previously installed hook.
//
// Complexity:
//   - Time O(1) per step observed.
func WithStepHook(fn func(Step)) Option {
	return func(o *Options) {
		o.stepHook = fn
	}
}

// WithMaxElements caps the number of elements Decode is willing to allocate.
// Panics if n <= 0 (programmer error).
func WithMaxElements(n int) Option {
	if n <= 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) {
		o.maxElements = n
	}
}

// gatherOptions builds Options from defaults then applies user setters in
// order (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxElements: DefaultMaxElements,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// emit forwards s to the step hook when one is installed.
func (o *Options) emit(s Step) {
	if o.stepHook != nil {
		o.stepHook(s)
	}
}
