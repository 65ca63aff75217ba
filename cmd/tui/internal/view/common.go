package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// LogoutMsg asks the root model to clear the session and return to the
// auth screen.
type LogoutMsg struct{}

func Logout() tea.Msg {
	return LogoutMsg{}
}
