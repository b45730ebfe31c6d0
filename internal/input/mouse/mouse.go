package mouse

// Button represents a mouse button.
//
// The numeric value of a Button is stable and is used as the button's
// identity when it takes part in key binding lookup.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the auxiliary (middle) mouse button, usually the
	// scroll wheel click.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
	// ButtonBack is the back navigation button (mouse button 4, X1).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5, X2).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown ||
		b == ButtonScrollLeft || b == ButtonScrollRight
}

// IsNavigation returns true for the back and forward side buttons.
func (b Button) IsNavigation() bool {
	return b == ButtonBack || b == ButtonForward
}
