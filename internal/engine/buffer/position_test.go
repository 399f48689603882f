package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(0, 1), Pt(0, 2), -1},
		{Pt(1, 0), Pt(0, 9), 1},
		{Pt(2, 5), Pt(3, 0), -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%s vs %s", tt.a, tt.b)
	}

	assert.True(t, Pt(0, 1).Before(Pt(1, 0)))
	assert.True(t, Pt(1, 0).After(Pt(0, 1)))
	assert.True(t, Point{}.IsZero())
}

func TestPointTranslate(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, Pt(3, 3), p.Translate(0, -1))
	assert.Equal(t, Pt(4, 4), p.Translate(1, 0))
	assert.Equal(t, Pt(3, 0), p.WithColumn(0))
}

func TestNewRangeNormalizes(t *testing.T) {
	r := NewRange(Pt(2, 1), Pt(0, 5))
	assert.Equal(t, Pt(0, 5), r.Start)
	assert.Equal(t, Pt(2, 1), r.End)
	assert.True(t, r.IsValid())
	assert.False(t, r.IsSingleLine())

	same := NewRange(Pt(1, 1), Pt(1, 1))
	assert.True(t, same.IsEmpty())
}

func TestRangeContains(t *testing.T) {
	r := NewRange(Pt(0, 2), Pt(0, 5))
	assert.True(t, r.Contains(Pt(0, 2)))
	assert.True(t, r.Contains(Pt(0, 4)))
	assert.False(t, r.Contains(Pt(0, 5)))
	assert.Equal(t, "[(0:2):(0:5))", r.String())
}
