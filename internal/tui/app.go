package tui

import (
	"github.com/MKhiriev/go-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the notes screen:
// 1) handles global Ctrl+C quit, cancelling outstanding requests
// 2) toggles the build info window
// 3) delegates all other messages to the notes screen
type RootModel struct {
	main      mainLoopModel
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel opens the notes screen.
func NewRootModel(main mainLoopModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		main:      main,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.main.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			r.main.close()
			return r, tea.Quit
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.buildInfo) && r.acceptsHotkeys():
			r.showBuildInfo = true
			return r, nil
		}
	}

	updated, cmd := r.main.Update(msg)
	r.main = updated.(mainLoopModel)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.main.View()
}

// acceptsHotkeys reports whether letter keys are commands rather than text
// typed into the form.
func (r RootModel) acceptsHotkeys() bool {
	return r.main.detail == nil && r.main.focus == focusList
}
