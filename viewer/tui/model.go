package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// State is the view's fetch lifecycle. Exactly one variant is current:
// Idle, Loading, Loaded or Failed.
type State interface {
	isState()
}

// Idle is the state before the first fetch starts
type Idle struct{}

// Loading means one fetch is in flight
type Loading struct{}

// Loaded holds the image from the last successful fetch
type Loaded struct {
	ImageURL string
}

// Failed holds the message of the last failed fetch
type Failed struct {
	Message string
}

func (Idle) isState()    {}
func (Loading) isState() {}
func (Loaded) isState()  {}
func (Failed) isState()  {}

// Model is the terminal view of a random dog image
type Model struct {
	Source     DogSource
	BackendURL string
	State      State
}

// NewModel creates a model in the Idle state
func NewModel(source DogSource, backendURL string) Model {
	return Model{
		Source:     source,
		BackendURL: backendURL,
		State:      Idle{},
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return mount()
}

// IsLoading reports whether a fetch is in flight
func (m Model) IsLoading() bool {
	_, ok := m.State.(Loading)
	return ok
}

// canRefresh reports whether a user refresh may start a fetch.
// Idle is excluded so an early key press never races the mount fetch.
func (m Model) canRefresh() bool {
	switch m.State.(type) {
	case Loaded, Failed:
		return true
	default:
		return false
	}
}
