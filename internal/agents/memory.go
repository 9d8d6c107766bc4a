// Ant memory: a bounded sequence of numbers and positions, written only by
// Remember/Forget actions and read from the most recent end.
package agents

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// MaxMemory is the most entries an ant keeps. Remembering past it evicts
// the oldest entry.
const MaxMemory = 16

// ErrMemoryOutOfRange is returned for reads past the remembered entries.
var ErrMemoryOutOfRange = errors.New("memory offset out of range")

// ValueKind distinguishes numbers from positions.
type ValueKind uint8

const (
	ValueNumber ValueKind = iota
	ValuePosition
)

// Value is a tagged number-or-position.
type Value struct {
	Kind ValueKind `json:"kind"`
	Num  float64   `json:"num,omitempty"`
	Pos  orb.Point `json:"pos,omitempty"`
}

// NumberValue wraps a number.
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// PositionValue wraps a position.
func PositionValue(p orb.Point) Value {
	return Value{Kind: ValuePosition, Pos: p}
}

func (v Value) String() string {
	if v.Kind == ValuePosition {
		return fmt.Sprintf("(%.3f, %.3f)", v.Pos[0], v.Pos[1])
	}
	return fmt.Sprintf("%.3f", v.Num)
}

// Memory holds entries oldest first.
type Memory struct {
	entries []Value
}

// Len returns the number of remembered entries.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Remember appends v as the newest entry. A full memory drops its oldest
// entry first, so its length stays at MaxMemory.
func (m *Memory) Remember(v Value) {
	if len(m.entries) >= MaxMemory {
		m.entries = m.entries[1:]
	}
	m.entries = append(m.entries, v)
}

// Forget drops the oldest entry. Returns false if memory was empty.
func (m *Memory) Forget() bool {
	if len(m.entries) == 0 {
		return false
	}
	m.entries = m.entries[1:]
	return true
}

// Recall returns the entry offset steps back from the newest; offset 0 is
// the most recently remembered value.
func (m *Memory) Recall(offset int) (Value, error) {
	if offset < 0 || offset >= len(m.entries) {
		return Value{}, fmt.Errorf("recall %d of %d: %w", offset, len(m.entries), ErrMemoryOutOfRange)
	}
	return m.entries[len(m.entries)-1-offset], nil
}

// Values returns a copy of the entries, oldest first.
func (m *Memory) Values() []Value {
	out := make([]Value, len(m.entries))
	copy(out, m.entries)
	return out
}
