package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// mount creates a command that triggers the initial fetch
func mount() tea.Cmd {
	return func() tea.Msg {
		return MountMsg{}
	}
}

// fetchDog creates a command that asks the backend for one image
func fetchDog(source DogSource) tea.Cmd {
	return func() tea.Msg {
		url, err := source.RandomDog(context.Background())
		return FetchResultMsg{ImageURL: url, Err: err}
	}
}
