// Package shape holds the compass-named shapes a box design is assembled from,
// together with their grouping into box sides and corners.
package shape

import "strings"

// Shape identifies one of the 16 positions around a box, named clockwise after the
// points of the compass starting from the north-west corner.
type Shape int

const (
	NW Shape = iota
	NNW
	N
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
)

const (
	NumShapes      = 16
	ShapesPerSide  = 5
	CornersPerSide = 2
	NumSides       = 4
	NumCorners     = 4
)

// Side enumerates the box sides in the order of [Sides].
type Side int

const (
	North Side = iota
	East
	South
	West
)

var names = [NumShapes]string{
	"nw", "nnw", "n", "nne", "ne", "ene", "e", "ese",
	"se", "sse", "s", "ssw", "sw", "wsw", "w", "wnw",
}

// Groups of shapes per side, clockwise. Each group starts and ends with a corner.
var (
	NorthSide    = [ShapesPerSide]Shape{NW, NNW, N, NNE, NE}
	EastSide     = [ShapesPerSide]Shape{NE, ENE, E, ESE, SE}
	SouthSide    = [ShapesPerSide]Shape{SE, SSE, S, SSW, SW}
	SouthSideRev = [ShapesPerSide]Shape{SW, SSW, S, SSE, SE}
	WestSide     = [ShapesPerSide]Shape{SW, WSW, W, WNW, NW}
	Corners      = [NumCorners]Shape{NW, NE, SE, SW}
	Sides        = [NumSides]*[ShapesPerSide]Shape{&NorthSide, &EastSide, &SouthSide, &WestSide}
)

// Name returns the lower case compass name of the shape, or an empty string
// if s is out of range.
func (s Shape) Name() string {
	if !s.Valid() {
		return ""
	}
	return names[s]
}

func (s Shape) String() string {
	return strings.ToUpper(s.Name())
}

// Valid reports whether s is one of the 16 known shapes.
func (s Shape) Valid() bool {
	return s >= NW && s < NumShapes
}

// IsCorner reports whether s is one of the four box corners.
func (s Shape) IsCorner() bool {
	for _, c := range Corners {
		if c == s {
			return true
		}
	}
	return false
}

// Parse looks up the shape by its compass name, ignoring case.
func Parse(name string) (Shape, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Shape(i), true
		}
	}
	return -1, false
}

// OnSide reports whether s belongs to the given side.
// Corners belong to the two sides they join.
func OnSide(s Shape, side Side) bool {
	if side < North || side > West {
		return false
	}
	for _, x := range Sides[side] {
		if x == s {
			return true
		}
	}
	return false
}

// Entry is the definition of one shape inside a box design.
type Entry struct {
	// Lines holds the shape's text, one element per line. All lines have the same width.
	Lines []string

	// Width is the number of columns of every line.
	Width int

	// Elastic is true if the shape may be repeated to fill the box side.
	Elastic bool
}

// Height is the number of lines of the shape.
func (e Entry) Height() int {
	return len(e.Lines)
}

// IsEmpty reports whether the shape has not been defined at all.
func (e Entry) IsEmpty() bool {
	return len(e.Lines) == 0 || e.Width == 0
}

// IsDeepEmpty reports whether the shape is undefined or made of blanks only.
func (e Entry) IsDeepEmpty() bool {
	if e.IsEmpty() {
		return true
	}
	for _, l := range e.Lines {
		if strings.TrimLeft(l, " ") != "" {
			return false
		}
	}
	return true
}

// Highest returns the largest height among the given shapes of the design.
func Highest(design *[NumShapes]Entry, shapes ...Shape) int {
	h := 0
	for _, s := range shapes {
		if s.Valid() {
			h = max(h, design[s].Height())
		}
	}
	return h
}

// Widest returns the largest width among the given shapes of the design.
func Widest(design *[NumShapes]Entry, shapes ...Shape) int {
	w := 0
	for _, s := range shapes {
		if s.Valid() {
			w = max(w, design[s].Width)
		}
	}
	return w
}

// EmptySide reports whether every shape on the side is deep-empty.
func EmptySide(design *[NumShapes]Entry, side Side) bool {
	if side < North || side > West {
		return true
	}
	for _, s := range Sides[side] {
		if !design[s].IsDeepEmpty() {
			return false
		}
	}
	return true
}
