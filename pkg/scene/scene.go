// Package scene defines the backend-agnostic vector drawing model shared by
// every chart backend. Plot builders append Primitives to a Scene in paint
// order; a backend walks the element list front to back and renders each
// primitive however its output medium allows.
//
// Coordinates are abstract "scene pixels" with the origin at the top-left
// and y growing downward, matching SVG conventions.
package scene

// TextAnchor controls how a Text primitive is positioned horizontally
// relative to its x coordinate.
type TextAnchor int

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// Primitive is one drawing instruction within a Scene. Backends dispatch on
// the concrete type with a type switch.
type Primitive interface {
	isPrimitive()
}

// Circle is a filled circle centered at (CX, CY).
type Circle struct {
	CX, CY, R float64
	Fill      string
}

// Text is a single run of text. Rotate is in degrees, clockwise, about
// (X, Y); zero means unrotated.
type Text struct {
	X, Y    float64
	Content string
	Size    int
	Anchor  TextAnchor
	Rotate  float64
	Bold    bool
}

// Line is a straight stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
}

// Path is an SVG-style path. D follows the SVG path data grammar. An empty
// or "none" Stroke means unstroked; an empty or "none" Fill means unfilled.
type Path struct {
	D           string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
	Fill                string
	Stroke              string
	StrokeWidth         float64
}

// GroupStart opens a group of primitives sharing a transform. Only the
// single-function form "translate(tx[,ty])" is understood by backends;
// groups nest, and translations compose by addition.
type GroupStart struct {
	Transform string
}

// GroupEnd closes the innermost open group.
type GroupEnd struct{}

func (Circle) isPrimitive()     {}
func (Text) isPrimitive()       {}
func (Line) isPrimitive()       {}
func (Path) isPrimitive()       {}
func (Rect) isPrimitive()       {}
func (GroupStart) isPrimitive() {}
func (GroupEnd) isPrimitive()   {}

// Scene is an ordered vector drawing list. Elements order is paint order.
// BackgroundColor, TextColor and FontFamily are optional styling hints;
// the empty string means unset. FontFamily is only meaningful to backends
// with real font rendering.
type Scene struct {
	Width, Height   float64
	BackgroundColor string
	TextColor       string
	FontFamily      string
	Elements        []Primitive
}

// New creates an empty Scene with a white background.
func New(width, height float64) *Scene {
	return &Scene{Width: width, Height: height, BackgroundColor: "white"}
}

// WithBackground sets the background color ("" or "none" for transparent)
// and returns the Scene for chaining.
func (s *Scene) WithBackground(color string) *Scene {
	s.BackgroundColor = color
	return s
}

// Add appends a primitive to the paint list.
func (s *Scene) Add(p Primitive) {
	s.Elements = append(s.Elements, p)
}
