package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/auth"
)

const (
	msgInvalidEmail       = "Please enter a valid email."
	msgInvalidCredentials = "Invalid credentials. Try again."
)

type loginModel struct {
	auth   *auth.Manager
	width  int
	height int

	form    *huh.Form
	err     string
	pending bool // credentials submitted, awaiting the result

	// Form values as pointers (survive value copies)
	email    *string
	password *string
	remember *bool
}

func newLoginModel(m *auth.Manager) loginModel {
	email, password, remember := "", "", false
	l := loginModel{
		auth:     m,
		email:    &email,
		password: &password,
		remember: &remember,
	}
	l.form = l.buildForm()
	return l
}

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l loginModel) Init() tea.Cmd {
	return l.form.Init()
}

func validateEmail(s string) error {
	if auth.ValidateEmail(s) != nil {
		return errors.New(msgInvalidEmail)
	}
	return nil
}

func (l loginModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Placeholder("name@example.com").
				Value(l.email).Validate(validateEmail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
				Value(l.password),
			huh.NewConfirm().Title("Remember me").Value(l.remember),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// login checks credentials off the update loop.
func (l loginModel) login() tea.Cmd {
	email, password, remember := *l.email, *l.password, *l.remember
	return func() tea.Msg {
		sess, err := l.auth.Login(email, password, remember)
		return loginResultMsg{session: sess, err: err}
	}
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	if res, ok := msg.(loginResultMsg); ok {
		l.pending = false
		if res.err == nil {
			return l, nil
		}
		l.err = loginError(res.err)
		*l.password = ""
		l.form = l.buildForm()
		return l, l.form.Init()
	}
	if l.pending {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	switch l.form.State {
	case huh.StateCompleted:
		l.pending = true
		return l, l.login()
	case huh.StateAborted:
		return l, tea.Quit
	}
	return l, cmd
}

func loginError(err error) string {
	if errors.Is(err, auth.ErrInvalidEmail) {
		return msgInvalidEmail
	}
	return msgInvalidCredentials
}

func (l loginModel) view() string {
	title := titleStyle.Render("Welcome back")
	sub := mutedStyle.Render("Sign in to manage your timesheets")

	rows := []string{title, sub, ""}
	if l.err != "" {
		rows = append(rows, errorStyle.Render(l.err), "")
	}
	rows = append(rows, l.form.View())

	w := min(max(l.width-4, 20), 60)
	panel := activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if l.width == 0 || l.height == 0 {
		return panel
	}
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, panel)
}
