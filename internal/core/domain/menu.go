package domain

// Point is a position in CSS pixels.
type Point struct {
	X float64
	Y float64
}

// Size is a width and height in CSS pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a rendered box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the right edge of r.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge of r.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// AdjustMenuPosition flips the menu origin so a measured menu stays inside the viewport.
// The rect must come from post-layout measurement of the menu placed at origin.
func AdjustMenuPosition(origin Point, measured Rect, viewport Size) Point {
	pos := origin
	if measured.Right() > viewport.Width {
		pos.X = origin.X - measured.Width
	}
	if measured.Bottom() > viewport.Height {
		pos.Y = origin.Y - measured.Height
	}
	return pos
}

// MenuState is the visibility of the context menu.
type MenuState uint8

const (
	// MenuHidden means the menu is not displayed (or not yet created).
	MenuHidden MenuState = iota
	// MenuVisible means the menu is displayed.
	MenuVisible
)

// String implements fmt.Stringer.
func (s MenuState) String() string {
	if s == MenuVisible {
		return "visible"
	}
	return "hidden"
}

// WidgetState is the attachment state of a widget instance.
type WidgetState uint8

const (
	// WidgetUnattached means no listener has been registered.
	WidgetUnattached WidgetState = iota
	// WidgetAttached means listeners are in place; it never goes back.
	WidgetAttached
)

// String implements fmt.Stringer.
func (s WidgetState) String() string {
	if s == WidgetAttached {
		return "attached"
	}
	return "unattached"
}
