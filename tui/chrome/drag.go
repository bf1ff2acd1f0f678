package chrome

// SwipeCloseRatio is the share of the sidebar width a leftward drag must
// exceed to close it.
const SwipeCloseRatio = 0.4

// Dragging reports whether a sidebar drag gesture is in progress.
func (d *Document) Dragging() bool {
	return d.Sidebar != nil && d.Sidebar.drag.active
}

// DragStart begins a gesture at column x. Ignored unless the sidebar is open.
func (d *Document) DragStart(x int) bool {
	if !d.SidebarOpen() {
		return false
	}
	d.Sidebar.drag = dragState{active: true, startX: x}
	return true
}

// DragMove tracks the pointer. Only leftward displacement moves the sidebar.
func (d *Document) DragMove(x int) {
	if !d.Dragging() {
		return
	}
	if diff := x - d.Sidebar.drag.startX; diff < 0 {
		d.Sidebar.Offset = diff
	}
}

// DragEnd finishes the gesture. The sidebar closes, and the overlay is
// deactivated, when the leftward displacement exceeds SwipeCloseRatio of its
// width; otherwise it snaps back. Reports whether it closed.
func (d *Document) DragEnd() bool {
	if !d.Dragging() {
		return false
	}
	s := d.Sidebar
	threshold := float64(s.Width) * SwipeCloseRatio
	closed := float64(s.Offset) < -threshold

	s.drag = dragState{}
	s.Offset = 0
	if closed {
		d.CloseSidebar()
		d.setOverlay(false)
	}
	return closed
}
