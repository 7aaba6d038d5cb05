package tui

// MountMsg starts the first fetch once the program is running
type MountMsg struct{}

// FetchResultMsg is sent when a fetch settles
type FetchResultMsg struct {
	ImageURL string
	Err      error
}
