// Package history provides a bounded undo/redo stack of value snapshots.
//
// A Manager stores independent copies of the values pushed to it and hands
// out independent copies on Undo and Redo, so neither the caller nor the
// stack can observe the other's later mutations.
//
// The cursor counts the snapshots at or before the current state: the
// current state is snapshot cursor-1. Undo is possible while at least one
// earlier state exists (cursor > 1), redo while the cursor is not at the
// newest snapshot. Pushing after an undo discards the redo branch.
package history

import "github.com/gogpu/paintmate"

// DefaultCapacity is the number of snapshots retained by default.
const DefaultCapacity = 50

// Snapshot is a value that can produce an independent deep copy of itself.
type Snapshot[T any] interface {
	Clone() T
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity bounds the number of retained snapshots. Values below one
// select DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// Manager is a bounded linear undo/redo stack.
//
// Manager is not safe for concurrent use.
type Manager[T Snapshot[T]] struct {
	snapshots []T
	cursor    int
	capacity  int
}

// New creates an empty Manager.
func New[T Snapshot[T]](opts ...Option) *Manager[T] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 1 {
		o.capacity = DefaultCapacity
	}
	return &Manager[T]{
		snapshots: make([]T, 0, min(o.capacity, 16)),
		capacity:  o.capacity,
	}
}

// Push records a copy of v as the newest state. Any states that were undone
// are discarded, and the oldest states are evicted once capacity is exceeded.
func (m *Manager[T]) Push(v T) {
	if m.cursor < len(m.snapshots) {
		clear(m.snapshots[m.cursor:])
		m.snapshots = m.snapshots[:m.cursor]
	}
	m.snapshots = append(m.snapshots, v.Clone())
	m.cursor = len(m.snapshots)

	evicted := 0
	for len(m.snapshots) > m.capacity {
		var zero T
		m.snapshots[0] = zero
		m.snapshots = m.snapshots[1:]
		if m.cursor > 0 {
			m.cursor--
		}
		evicted++
	}
	if evicted > 0 {
		paintmate.Logger().Debug("history: evicted oldest snapshots",
			"evicted", evicted, "capacity", m.capacity)
	}
}

// CanUndo reports whether an earlier state exists.
func (m *Manager[T]) CanUndo() bool {
	return m.cursor > 1
}

// CanRedo reports whether an undone state can be restored.
func (m *Manager[T]) CanRedo() bool {
	return m.cursor < len(m.snapshots)
}

// Undo steps back one state and returns a copy of it. It returns the zero
// value and false if there is nothing to undo.
func (m *Manager[T]) Undo() (T, bool) {
	if !m.CanUndo() {
		var zero T
		return zero, false
	}
	m.cursor--
	return m.snapshots[m.cursor-1].Clone(), true
}

// Redo steps forward one state and returns a copy of it. It returns the
// zero value and false if there is nothing to redo.
func (m *Manager[T]) Redo() (T, bool) {
	if !m.CanRedo() {
		var zero T
		return zero, false
	}
	m.cursor++
	return m.snapshots[m.cursor-1].Clone(), true
}

// Clear drops every snapshot.
func (m *Manager[T]) Clear() {
	clear(m.snapshots)
	m.snapshots = m.snapshots[:0]
	m.cursor = 0
}

// Len returns the number of retained snapshots.
func (m *Manager[T]) Len() int {
	return len(m.snapshots)
}

// Cursor returns the number of snapshots at or before the current state.
func (m *Manager[T]) Cursor() int {
	return m.cursor
}

// Capacity returns the maximum number of retained snapshots.
func (m *Manager[T]) Capacity() int {
	return m.capacity
}
