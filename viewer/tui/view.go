package tui

import (
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	sections := []string{titleStyle.Render(TextTitle)}
	if content := m.content(); content != "" {
		sections = append(sections, content)
	}
	sections = append(sections, m.button(), footerStyle.Render(TextFooter))

	return strings.Join(sections, "\n\n") + "\n"
}

// content renders the single block selected by the current state
func (m Model) content() string {
	switch s := m.State.(type) {
	case Loading:
		return loadingStyle.Render("⏳ " + TextLoading)
	case Failed:
		return failureStyle.Render("❌ Error: "+s.Message) + "\n" +
			hintStyle.Render(TextServerHint+m.BackendURL)
	case Loaded:
		return imageFrameStyle.Render("🖼  " + s.ImageURL)
	default:
		return ""
	}
}

// button renders the refresh control, dimmed while loading
func (m Model) button() string {
	if m.IsLoading() {
		return buttonDisabledStyle.Render("[ " + TextLoading + " ]")
	}
	return buttonStyle.Render("[ " + TextButton + " ]")
}
