package viewer

// DefaultSensitivity converts pointer pixels to radians of rotation
const DefaultSensitivity = 0.01

// DragController accumulates pointer-drag deltas into a RotationState.
// It is a two-state machine: idle until Press, then every Move adds
// delta*sensitivity to the angles until Release. Moves outside a drag
// are ignored, there is no momentum after release, and angles grow
// without bound across a session.
type DragController struct {
	state       RotationState
	sensitivity float64
	dragging    bool
}

// NewDragController creates a controller with the given sensitivity in
// radians per pixel. Non-positive values fall back to the default.
func NewDragController(sensitivity float64) *DragController {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &DragController{sensitivity: sensitivity}
}

// Press starts a drag
func (c *DragController) Press() {
	c.dragging = true
}

// Release ends a drag
func (c *DragController) Release() {
	c.dragging = false
}

// Dragging reports whether a drag is in progress
func (c *DragController) Dragging() bool {
	return c.dragging
}

// Move feeds a pointer delta in pixels. Horizontal motion turns the
// mesh about the vertical axis, vertical motion tilts it.
func (c *DragController) Move(dx, dy float64) {
	if !c.dragging {
		return
	}
	c.state.Yaw += dx * c.sensitivity
	c.state.Pitch += dy * c.sensitivity
}

// Rotation returns the accumulated rotation state
func (c *DragController) Rotation() RotationState {
	return c.state
}

// Reset returns the view to zero rotation without ending a drag
func (c *DragController) Reset() {
	c.state = RotationState{}
}
