package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case MountMsg:
		return m.handleMount()
	case FetchResultMsg:
		return m.handleFetchResult(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "R", "enter", " ":
		if !m.canRefresh() {
			return m, nil
		}
		return m.startFetch()
	}
	return m, nil
}

// handleMount starts the first fetch
func (m Model) handleMount() (tea.Model, tea.Cmd) {
	if _, ok := m.State.(Idle); !ok {
		return m, nil
	}
	return m.startFetch()
}

// handleFetchResult settles the in-flight fetch
func (m Model) handleFetchResult(msg FetchResultMsg) (tea.Model, tea.Cmd) {
	if !m.IsLoading() {
		return m, nil
	}
	if msg.Err != nil {
		m.State = Failed{Message: msg.Err.Error()}
		return m, nil
	}
	if msg.ImageURL == "" {
		m.State = Failed{Message: TextInvalidResponse}
		return m, nil
	}
	m.State = Loaded{ImageURL: msg.ImageURL}
	return m, nil
}

func (m Model) startFetch() (tea.Model, tea.Cmd) {
	m.State = Loading{}
	return m, fetchDog(m.Source)
}
