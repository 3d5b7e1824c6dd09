package point

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_DistanceTo(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		expected float64
	}{
		"horizontal": {
			a:        New(0, 0),
			b:        New(3, 0),
			expected: 3,
		},
		"3-4-5 triangle": {
			a:        New(0, 0),
			b:        New(3, 4),
			expected: 5,
		},
		"identical points": {
			a:        New(1, 1),
			b:        New(1, 1),
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.DistanceTo(tt.b), 1e-9)
			// distance is symmetric
			assert.InDelta(t, tt.expected, tt.b.DistanceTo(tt.a), 1e-9)
		})
	}
}

func TestPoint_Sub(t *testing.T) {
	a := New(5, 7)
	b := New(2, 3)
	got := a.Sub(b)
	assert.Equal(t, New(3, 4), got)
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, New(1, 1).Eq(New(1+1e-12, 1), 1e-9))
	assert.False(t, New(1, 1).Eq(New(1.1, 1), 1e-9))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1, 2)", New(1, 2).String())
	assert.Contains(t, New(math.Pi, 0).String(), "3.14")
}
