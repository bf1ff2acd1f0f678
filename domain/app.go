package domain

const (
	AppName    = "terminalfeed"
	AppTagline = "<your timeline, minus the browser>"
)

// DisplayAppTitle is the title shown in the header and on the splash screen.
func DisplayAppTitle() string {
	return "𝕏 " + AppName
}
