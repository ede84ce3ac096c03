package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   Shape
		wantOK bool
	}{
		{name: "lower", input: "nw", want: NW, wantOK: true},
		{name: "upper", input: "WNW", want: WNW, wantOK: true},
		{name: "mixed", input: "sSe", want: SSE, wantOK: true},
		{name: "single", input: "e", want: E, wantOK: true},
		{name: "unknown", input: "nn", want: -1, wantOK: false},
		{name: "empty", input: "", want: -1, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.input)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	for s := NW; s < NumShapes; s++ {
		got, ok := Parse(s.Name())
		require.True(t, ok, "shape %d", s)
		require.Equal(t, s, got)
	}

	require.Equal(t, "", Shape(NumShapes).Name())
	require.Equal(t, "NNE", NNE.String())
}

func TestOnSide(t *testing.T) {
	require.True(t, OnSide(NW, North))
	require.True(t, OnSide(NW, West))
	require.False(t, OnSide(NW, East))
	require.True(t, OnSide(ESE, East))
	require.False(t, OnSide(ESE, South))
	require.False(t, OnSide(N, Side(7)))
}

func TestIsCorner(t *testing.T) {
	for _, c := range Corners {
		require.True(t, c.IsCorner())
	}
	require.False(t, N.IsCorner())
	require.False(t, WSW.IsCorner())
}

func TestEntryEmptiness(t *testing.T) {
	var undefined Entry
	require.True(t, undefined.IsEmpty())
	require.True(t, undefined.IsDeepEmpty())

	blank := Entry{Lines: []string{"  ", "  "}, Width: 2}
	require.False(t, blank.IsEmpty())
	require.True(t, blank.IsDeepEmpty())

	star := Entry{Lines: []string{" *"}, Width: 2}
	require.False(t, star.IsDeepEmpty())
}

func TestHighestWidestEmptySide(t *testing.T) {
	var design [NumShapes]Entry
	design[NW] = Entry{Lines: []string{"/*"}, Width: 2}
	design[N] = Entry{Lines: []string{"*", "*", "*"}, Width: 1}
	design[NE] = Entry{Lines: []string{"*\\", " *"}, Width: 2}

	require.Equal(t, 3, Highest(&design, NorthSide[:]...))
	require.Equal(t, 2, Widest(&design, NorthSide[:]...))
	require.Equal(t, 0, Highest(&design, SSE, S))

	require.False(t, EmptySide(&design, North))
	require.True(t, EmptySide(&design, South))
}
