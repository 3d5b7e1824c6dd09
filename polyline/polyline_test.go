package polyline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/anime/point"
)

func TestPolyline_Segments(t *testing.T) {
	t.Run("empty polyline has no segments", func(t *testing.T) {
		var p Polyline
		assert.Empty(t, p.Segments())
	})
	t.Run("single vertex has no segments", func(t *testing.T) {
		p := Polyline{point.New(0, 0)}
		assert.Empty(t, p.Segments())
	})
	t.Run("three vertices make two segments", func(t *testing.T) {
		p := Polyline{point.New(0, 0), point.New(1, 0), point.New(1, 1)}
		segs := p.Segments()
		assert.Len(t, segs, 2)
		assert.Equal(t, point.New(0, 0), segs[0].A)
		assert.Equal(t, point.New(1, 0), segs[0].B)
		assert.Equal(t, point.New(1, 0), segs[1].A)
		assert.Equal(t, point.New(1, 1), segs[1].B)
	})
}

func TestPolyline_Length(t *testing.T) {
	p := Polyline{point.New(0, 0), point.New(3, 0), point.New(3, 4)}
	assert.Equal(t, 7.0, p.Length())
}
