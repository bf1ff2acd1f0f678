package chrome

// OnScroll reacts to one scroll event at offset (rows from the top).
// Scrolling down hides header, tabs, bottom nav and the compose trigger;
// scrolling up or staying put shows them. An open compose menu is closed on
// every event. Reports whether the event was a downward scroll.
func (d *Document) OnScroll(offset int) bool {
	down := offset > d.lastScrollTop

	if d.Header != nil {
		d.Header.Hidden = down
	}
	if d.Tabs != nil {
		d.Tabs.Hidden = down
	}
	if d.BottomNav != nil {
		d.BottomNav.Hidden = down
	}
	if d.Compose != nil {
		d.Compose.Hidden = down
		if d.Compose.Open {
			d.CloseCompose()
		}
	}
	if d.BackToTop != nil {
		d.BackToTop.Visible = offset > d.BackToTop.Threshold
	}

	d.lastScrollTop = max(offset, 0)
	return down
}

// LastScrollTop is the previous scroll sample.
func (d *Document) LastScrollTop() int {
	return d.lastScrollTop
}
