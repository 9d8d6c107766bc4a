package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ant-world/internal/geom"
)

func TestRememberThenForgetRestoresLength(t *testing.T) {
	var m Memory
	m.Remember(NumberValue(1))
	m.Remember(NumberValue(2))
	before := m.Len()

	m.Remember(PositionValue(geom.Pt(3, 4)))
	assert.Equal(t, before+1, m.Len())
	assert.True(t, m.Forget())
	assert.Equal(t, before, m.Len())
}

func TestRecallNewestFirst(t *testing.T) {
	var m Memory
	m.Remember(NumberValue(1))
	m.Remember(PositionValue(geom.Pt(3, 4)))

	v, err := m.Recall(0)
	require.NoError(t, err)
	assert.Equal(t, PositionValue(geom.Pt(3, 4)), v)

	v, err = m.Recall(1)
	require.NoError(t, err)
	assert.Equal(t, NumberValue(1), v)
}

func TestRecallOutOfRange(t *testing.T) {
	var m Memory
	_, err := m.Recall(0)
	assert.ErrorIs(t, err, ErrMemoryOutOfRange)

	m.Remember(NumberValue(1))
	_, err = m.Recall(1)
	assert.ErrorIs(t, err, ErrMemoryOutOfRange)
	_, err = m.Recall(-1)
	assert.ErrorIs(t, err, ErrMemoryOutOfRange)
}

func TestForgetDropsOldest(t *testing.T) {
	var m Memory
	assert.False(t, m.Forget())

	m.Remember(NumberValue(1))
	m.Remember(NumberValue(2))
	m.Forget()
	assert.Equal(t, []Value{NumberValue(2)}, m.Values())
}

func TestMemoryIsBounded(t *testing.T) {
	var m Memory
	for i := 0; i < MaxMemory+5; i++ {
		m.Remember(NumberValue(float64(i)))
	}
	assert.Equal(t, MaxMemory, m.Len())

	oldest := m.Values()[0]
	assert.Equal(t, NumberValue(5), oldest)
	newest, err := m.Recall(0)
	require.NoError(t, err)
	assert.Equal(t, NumberValue(MaxMemory+4), newest)
}

func TestRememberAtCapacityEvicts(t *testing.T) {
	var m Memory
	for i := 0; i < MaxMemory; i++ {
		m.Remember(NumberValue(float64(i)))
	}

	m.Remember(NumberValue(100))
	assert.Equal(t, MaxMemory, m.Len(), "the oldest entry makes room")
	assert.True(t, m.Forget())
	assert.Equal(t, MaxMemory-1, m.Len(), "a full memory does not grow back after Forget")

	newest, err := m.Recall(0)
	require.NoError(t, err)
	assert.Equal(t, NumberValue(100), newest)
	assert.Equal(t, NumberValue(2), m.Values()[0])
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "1.500", NumberValue(1.5).String())
	assert.Equal(t, "(1.000, -2.000)", PositionValue(geom.Pt(1, -2)).String())
}
