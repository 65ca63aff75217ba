package main

import (
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spendlens/spendlens/cmd/tui/internal/view"
	"github.com/spendlens/spendlens/internal/api"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/session"
	"github.com/spendlens/spendlens/internal/session/store"
)

type View int

const (
	ViewAuth         View = 0
	ViewMenu         View = 1
	ViewDashboard    View = 2
	ViewTransactions View = 3
)

type model struct {
	client   *api.Client
	keychain *session.Keychain

	session *session.Session
	store   *store.Store

	currentView View

	authView         view.AuthModel
	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
}

func initialModel() model {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	stateDir := cfg.Client.StateDir
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			slog.Error("failed to resolve state directory", "error", err)
			os.Exit(1)
		}

		stateDir = filepath.Join(base, "spendlens")
	}

	client := api.New(cfg.Client.APIBaseURL, cfg.Client.Timeout)
	keychain := session.NewKeychain(stateDir)

	m := model{
		client:      client,
		keychain:    keychain,
		currentView: ViewAuth,
		authView:    view.NewAuthModel(client),
	}

	sess, err := keychain.Load()
	if err != nil {
		slog.Warn("failed to restore session", "error", err)
	}

	if sess != nil {
		m.startSession(*sess)
	}

	return m
}

// startSession wires the store to an authenticated client and moves past
// the auth screen.
func (m *model) startSession(sess session.Session) {
	m.session = &sess
	m.store = store.New(m.client.WithToken(sess.Token))
	m.currentView = ViewMenu
}

func (m *model) endSession() {
	if err := m.keychain.Clear(); err != nil {
		slog.Warn("failed to clear session", "error", err)
	}

	if m.store != nil {
		m.store.Clear()
	}

	m.session = nil
	m.store = nil
	m.currentView = ViewAuth
	m.authView = view.NewAuthModel(m.client)
}

func (m model) Init() tea.Cmd {
	if m.currentView == ViewAuth {
		return m.authView.Init()
	}

	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.store)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.store)

				return m, m.transactionsView.Init()
			case "l":
				m.endSession()
				return m, m.authView.Init()
			}
		}

	case view.AuthenticatedMsg:
		if err := m.keychain.Save(&msg.Session); err != nil {
			slog.Warn("failed to persist session", "error", err)
		}

		m.startSession(msg.Session)

		return m, nil

	case view.LogoutMsg:
		m.endSession()
		return m, m.authView.Init()

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAuth:
		var newModel tea.Model
		newModel, cmd = m.authView.Update(msg)
		m.authView = newModel.(view.AuthModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewAuth:
		return m.authView.View()
	case ViewMenu:
		name := m.session.User.Name
		if name == "" {
			name = m.session.User.Email
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"SpendLens\n\n" +
				"Signed in as " + name + "\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"l. Log Out\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
