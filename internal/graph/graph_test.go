package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/calc"
	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/graph"
)

var window = graph.Axes{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

func TestSample(t *testing.T) {
	ax := graph.Axes{XMin: -2, XMax: 2, YMin: -10, YMax: 10}
	pts, err := graph.Sample("x^2", ax, 5)
	require.NoError(t, err)
	require.Equal(t, []calc.Point{{X: -2, Y: 4}, {X: -1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}, pts)
}

func TestSampleStep(t *testing.T) {
	pts, err := graph.Sample("x", graph.Axes{XMin: 0, XMax: 1, YMin: -10, YMax: 10}, 11)
	require.NoError(t, err)
	require.Len(t, pts, 11)
	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 1.0, pts[10].X)
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, 0.1, pts[i].X-pts[i-1].X, 1e-9)
	}
}

func TestSampleSkipsUndefinedPoints(t *testing.T) {
	// 1/x is undefined at 0; the curve must survive the hole.
	pts, err := graph.Sample("1/x", graph.Axes{XMin: -1, XMax: 1, YMin: -10, YMax: 10}, 3)
	require.NoError(t, err)
	require.Equal(t, []calc.Point{{X: -1, Y: -1}, {X: 1, Y: 1}}, pts)
}

func TestSampleClipsYRange(t *testing.T) {
	ax := graph.Axes{XMin: -2, XMax: 2, YMin: 0, YMax: 2}
	pts, err := graph.Sample("x^2", ax, 5)
	require.NoError(t, err)
	require.Equal(t, []calc.Point{{X: -1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}}, pts)
}

func TestSampleInputError(t *testing.T) {
	pts, err := graph.Sample("2**x", window, 5)
	require.Error(t, err)
	assert.Nil(t, pts)
	var in calc.InputError
	assert.ErrorAs(t, err, &in)
}

func TestSampleBadRanges(t *testing.T) {
	cases := []struct {
		name string
		ax   graph.Axes
	}{
		{"inverted-x", graph.Axes{XMin: 5, XMax: -5, YMin: -10, YMax: 10}},
		{"empty-x", graph.Axes{XMin: 1, XMax: 1, YMin: -10, YMax: 10}},
		{"inverted-y", graph.Axes{XMin: -5, XMax: 5, YMin: 10, YMax: -10}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := graph.Sample("x", c.ax, 5)
			var re *graph.RangeError
			require.ErrorAs(t, err, &re)
		})
	}
}

func TestSampleBadCount(t *testing.T) {
	_, err := graph.Sample("x", window, 1)
	var ce *graph.CountError
	require.ErrorAs(t, err, &ce)
}
