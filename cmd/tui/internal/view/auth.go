package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/spendlens/spendlens/internal/api"
	"github.com/spendlens/spendlens/internal/session"
)

type authState int

const (
	authStateLogin authState = iota
	authStateRegister
)

// AuthenticatedMsg carries the session of a successful login to the root
// model.
type AuthenticatedMsg struct {
	Session session.Session
}

type AuthModel struct {
	CommonModel
	client *api.Client

	state   authState
	form    *huh.Form
	loading bool
	status  string

	formName     string
	formEmail    string
	formPassword string
}

func NewAuthModel(client *api.Client) AuthModel {
	m := AuthModel{client: client, state: authStateLogin}
	m.form = m.newForm()

	return m
}

func (m AuthModel) Title() string { return "Sign In" }
func (m AuthModel) ShortHelp() string {
	return "Tab: next field | Enter: submit | Ctrl+R: switch login/register"
}

func (m AuthModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginMsg:
		if msg.err != nil {
			m.loading = false
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.form = m.newForm()

			return m, m.form.Init()
		}

		// Stay loading: the root model swaps screens on AuthenticatedMsg,
		// this model only has to keep ignoring input until then.
		user := session.User{Email: m.formEmail}
		if msg.result.User != nil {
			user = *msg.result.User
		}

		return m, func() tea.Msg {
			return AuthenticatedMsg{Session: session.Session{Token: msg.result.Token, User: user}}
		}

	case registerMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Account created. Log in to continue."
			m.state = authStateLogin
		}

		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+r" && !m.loading {
			if m.state == authStateLogin {
				m.state = authStateRegister
			} else {
				m.state = authStateLogin
			}

			m.status = ""
			m.form = m.newForm()

			return m, m.form.Init()
		}
	}

	if m.loading {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Read the submitted values back through the form. The Value bindings
	// point into a stale copy of this model, so only the form itself holds
	// what was actually typed.
	m.loading = true
	m.formEmail = m.form.GetString("email")
	m.formPassword = m.form.GetString("password")

	if m.state == authStateRegister {
		m.formName = m.form.GetString("name")
		return m, m.registerCmd()
	}

	return m, m.loginCmd()
}

func (m AuthModel) View() string {
	title := "Log In"
	if m.state == authStateRegister {
		title = "Create Account"
	}

	content := lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(title)

	if m.loading {
		content += "\nWorking..."
	} else {
		content += "\n" + m.form.View()
	}

	if m.status != "" {
		content += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	content += "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m *AuthModel) newForm() *huh.Form {
	m.formPassword = ""

	fields := []huh.Field{}

	if m.state == authStateRegister {
		fields = append(fields,
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Key("email").
			Title("Email").
			Value(&m.formEmail).
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return fmt.Errorf("enter a valid email")
				}
				return nil
			}),
		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.formPassword).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password cannot be empty")
				}
				return nil
			}),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(45).WithShowHelp(false)
}

// Messages

type loginMsg struct {
	result api.LoginResult
	err    error
}

func (m AuthModel) loginCmd() tea.Cmd {
	email, password := m.formEmail, m.formPassword

	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		result, err := m.client.Login(ctx, email, password)
		return loginMsg{result: result, err: err}
	}
}

type registerMsg struct {
	err error
}

func (m AuthModel) registerCmd() tea.Cmd {
	name, email, password := m.formName, m.formEmail, m.formPassword

	return func() tea.Msg {
		ctx, cancel := ReqCtx()
		defer cancel()

		return registerMsg{err: m.client.Register(ctx, name, email, password)}
	}
}
