// Package history provides snapshot-based undo/redo over whole annotation
// collections. Snapshots are full deep copies rather than diffs: annotation
// counts are small, so full-state snapshots trade memory for simplicity.
package history

import "github.com/JenkinsJB/roids/pkg/annotation"

// DefaultMaxSize is the default undo stack capacity.
const DefaultMaxSize = 50

// Manager holds the undo and redo stacks. Only the undo stack is
// capacity-limited; on overflow the oldest entry is evicted from the
// bottom. Each undo entry is the collection state before the operation
// that pushed it.
type Manager struct {
	undo    [][]annotation.Annotation
	redo    [][]annotation.Annotation
	maxSize int
}

// NewManager creates a history manager with the given undo capacity.
// Non-positive values fall back to DefaultMaxSize.
func NewManager(maxSize int) *Manager {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Manager{maxSize: maxSize}
}

// Push records a snapshot of the state before a mutation. Callers must
// push before applying the mutation, never after. Any redo timeline is
// invalidated by the new action.
func (m *Manager) Push(snapshot []annotation.Annotation) {
	m.redo = m.redo[:0]
	if len(m.undo) >= m.maxSize {
		evict := len(m.undo) - m.maxSize + 1
		m.undo = append(m.undo[:0], m.undo[evict:]...)
	}
	m.undo = append(m.undo, annotation.CloneAll(snapshot))
}

// Undo pops the most recent undo snapshot, pushing current onto the redo
// stack. It returns false if there is nothing to undo, in which case the
// redo stack is left untouched and the caller must not mutate state.
func (m *Manager) Undo(current []annotation.Annotation) ([]annotation.Annotation, bool) {
	if len(m.undo) == 0 {
		return nil, false
	}
	previous := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, annotation.CloneAll(current))
	return previous, true
}

// Redo pops the most recent redo snapshot, pushing current onto the undo
// stack. It returns false if there is nothing to redo.
func (m *Manager) Redo(current []annotation.Annotation) ([]annotation.Annotation, bool) {
	if len(m.redo) == 0 {
		return nil, false
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, annotation.CloneAll(current))
	return next, true
}

// CanUndo reports whether an undo snapshot is available.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// Clear drops both stacks. Used when a project is replaced wholesale.
func (m *Manager) Clear() {
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
}
