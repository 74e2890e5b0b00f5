package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitisense/entities"
)

var rectangle = entities.Boundary{
	{52.0, -1.0},
	{52.0, -0.998},
	{52.002, -0.998},
	{52.002, -1.0},
}

func randomBoundary(r *rand.Rand, n int) entities.Boundary {
	b := make(entities.Boundary, n)
	for i := range b {
		b[i] = entities.Point{52 + r.Float64()*0.01, -1 + r.Float64()*0.01}
	}
	return b
}

func TestExtremeEdgesTooFewPoints(t *testing.T) {
	for n := 0; n < 4; n++ {
		b := rectangle[:n]
		_, ok := ExtremeEdges(b)
		assert.False(t, ok, "n=%d", n)
		assert.Empty(t, GridLines(b, DefaultStrips), "n=%d", n)
		assert.Empty(t, ZigZag(b, DefaultColumns), "n=%d", n)
	}
}

func TestExtremeEdgesRectangle(t *testing.T) {
	rails, ok := ExtremeEdges(rectangle)
	require.True(t, ok)

	assert.Equal(t, Segment{{52.0, -1.0}, {52.002, -1.0}}, rails.Left)
	assert.Equal(t, Segment{{52.0, -0.998}, {52.002, -0.998}}, rails.Right)
}

func TestExtremeEdgesDoesNotReorderInput(t *testing.T) {
	b := entities.Boundary{{3, 3}, {1, 1}, {2, 0}, {0, 2}}
	orig := append(entities.Boundary(nil), b...)

	_, ok := ExtremeEdges(b)
	require.True(t, ok)
	assert.Equal(t, orig, b)
}

func TestExtremeEdgesSeparation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		b := randomBoundary(r, 4+r.Intn(10))
		rails, ok := ExtremeEdges(b)
		require.True(t, ok)

		for _, l := range rails.Left {
			for _, rr := range rails.Right {
				assert.LessOrEqual(t, l.Lng(), rr.Lng())
			}
		}
		assert.LessOrEqual(t, rails.Left[0].Lat(), rails.Left[1].Lat())
		assert.LessOrEqual(t, rails.Right[0].Lat(), rails.Right[1].Lat())
	}
}

func TestExtremeEdgesDeterministicOnTies(t *testing.T) {
	b := entities.Boundary{{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 1}}
	first, _ := ExtremeEdges(b)
	for i := 0; i < 20; i++ {
		again, _ := ExtremeEdges(b)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, Segment{{1, 0}, {2, 0}}, first.Left)
	assert.Equal(t, Segment{{4, 0}, {5, 1}}, first.Right)
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, DefaultCenter, Centroid(nil))
	assert.Equal(t, DefaultCenter, Centroid(entities.Boundary{}))
	assert.Equal(t, entities.Point{1, 1}, Centroid(entities.Boundary{{0, 0}, {0, 2}, {2, 2}, {2, 0}}))

	c := Centroid(rectangle)
	assert.InDelta(t, 52.001, c.Lat(), 1e-9)
	assert.InDelta(t, -0.999, c.Lng(), 1e-9)
}

func TestGridLines(t *testing.T) {
	lines := GridLines(rectangle, DefaultStrips)
	require.Len(t, lines, DefaultStrips)

	for i, l := range lines {
		tt := float64(i+1) / float64(DefaultStrips+1)
		assert.Greater(t, tt, 0.0)
		assert.Less(t, tt, 1.0)
		assert.InDelta(t, 52.0+0.002*tt, l[0].Lat(), 1e-12)
		assert.InDelta(t, -1.0, l[0].Lng(), 1e-12)
		assert.InDelta(t, 52.0+0.002*tt, l[1].Lat(), 1e-12)
		assert.InDelta(t, -0.998, l[1].Lng(), 1e-12)
	}
}

func TestGridLinesCount(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for n := 1; n <= 12; n++ {
		b := randomBoundary(r, 4+r.Intn(6))
		assert.Len(t, GridLines(b, n), n)
	}
	assert.Empty(t, GridLines(rectangle, 0))
}

func TestZigZag(t *testing.T) {
	path := ZigZag(rectangle, DefaultColumns)
	require.Len(t, path, 2*(DefaultColumns+1))

	rails, _ := ExtremeEdges(rectangle)
	for i := 0; i <= DefaultColumns; i++ {
		tt := float64(i) / float64(DefaultColumns)
		bottom, top := rails.Left.At(tt), rails.Right.At(tt)
		if i%2 == 0 {
			assert.Equal(t, bottom, path[2*i], "pass %d", i)
			assert.Equal(t, top, path[2*i+1], "pass %d", i)
		} else {
			assert.Equal(t, top, path[2*i], "pass %d", i)
			assert.Equal(t, bottom, path[2*i+1], "pass %d", i)
		}
	}
	assert.Equal(t, rails.Left[0], path[0])
	assert.InDelta(t, rails.Left[1].Lat(), path[len(path)-2].Lat(), 1e-12)
}

func TestZigZagCount(t *testing.T) {
	for c := 1; c <= 10; c++ {
		assert.Len(t, ZigZag(rectangle, c), 2*(c+1))
	}
	assert.Empty(t, ZigZag(rectangle, 0))
}

func TestGeneratorsShareRails(t *testing.T) {
	b := entities.Boundary{{0, 0}, {1, 0.5}, {0.2, 3}, {1.4, 2.5}, {0.5, 1}}
	rails, ok := ExtremeEdges(b)
	require.True(t, ok)

	lines := GridLines(b, 1)
	path := ZigZag(b, 2)
	assert.Equal(t, rails.Left.At(0.5), lines[0][0])
	assert.Equal(t, rails.Right.At(0.5), lines[0][1])
	assert.Equal(t, lines[0][1], path[2])
	assert.Equal(t, lines[0][0], path[3])
}

func TestSegmentAt(t *testing.T) {
	s := Segment{{0, 0}, {2, 4}}
	assert.Equal(t, entities.Point{0, 0}, s.At(0))
	assert.Equal(t, entities.Point{1, 2}, s.At(0.5))
	assert.Equal(t, entities.Point{2, 4}, s.At(1))
}
