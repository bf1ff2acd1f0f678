package chrome

// ComposeAction is an entry of the floating compose menu.
type ComposeAction string

const (
	ActionVideo ComposeAction = "video"
	ActionAudio ComposeAction = "audio"
	ActionImage ComposeAction = "image"
)

// ComposeActions lists the menu entries in display order.
var ComposeActions = []ComposeAction{ActionVideo, ActionAudio, ActionImage}

// ComposeOpen reports whether the compose menu is expanded.
func (d *Document) ComposeOpen() bool {
	return d.Compose != nil && d.Compose.Open
}

// SidebarOpen reports whether the sidebar is shown.
func (d *Document) SidebarOpen() bool {
	return d.Sidebar != nil && d.Sidebar.Open
}

// ToggleCompose flips the compose menu and the overlay in the same step.
func (d *Document) ToggleCompose() {
	if d.Compose == nil {
		return
	}
	d.Compose.Open = !d.Compose.Open
	if d.Overlay != nil {
		d.Overlay.Active = !d.Overlay.Active
	}
}

// CloseCompose collapses the compose menu and deactivates the overlay.
func (d *Document) CloseCompose() {
	if d.Compose != nil {
		d.Compose.Open = false
	}
	d.setOverlay(false)
}

// OpenSidebar shows the sidebar and activates the overlay.
func (d *Document) OpenSidebar() {
	if d.Sidebar == nil {
		return
	}
	d.Sidebar.Open = true
	d.setOverlay(true)
}

// CloseSidebar hides the sidebar. The overlay is left as is.
func (d *Document) CloseSidebar() {
	if d.Sidebar != nil {
		d.Sidebar.Open = false
	}
}

// ClickOverlay closes both menus.
func (d *Document) ClickOverlay() {
	d.CloseCompose()
	d.CloseSidebar()
}

// RunComposeAction closes the menu; the actions themselves are not
// implemented.
func (d *Document) RunComposeAction(ComposeAction) {
	d.CloseCompose()
}
