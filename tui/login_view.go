// ABOUTME: TUI login view
// ABOUTME: Email/password form submitting against the auth API
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calldeck/models"
)

type loginState struct {
	inputs     []textinput.Model
	focusIndex int
	submitting bool
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return loginState{inputs: []textinput.Model{email, password}}
}

// loginResultMsg is sent when the login request completes.
type loginResultMsg struct {
	user *models.User
	err  error
}

func (m Model) renderLoginView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CALLDECK"))
	s.WriteString("\n\n")
	s.WriteString("Sign in to your AI Sales Agent account\n\n")

	for i, input := range m.login.inputs {
		label := "Email:    "
		if i == 1 {
			label = "Password: "
		}
		s.WriteString(label + input.View() + "\n")
	}

	if m.login.submitting {
		s.WriteString("\nSigning in...\n")
	}
	if m.lastErr != nil {
		s.WriteString("\n" + errorStyle.Render(m.lastErr.Error()) + "\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Tab: Next field • Enter: Sign in • Ctrl+C: Quit"))
	return s.String()
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "down", "up":
		m.login.focusIndex = (m.login.focusIndex + 1) % len(m.login.inputs)
		for i := range m.login.inputs {
			if i == m.login.focusIndex {
				m.login.inputs[i].Focus()
			} else {
				m.login.inputs[i].Blur()
			}
		}
		return m, nil

	case "enter":
		if m.login.submitting {
			return m, nil
		}
		email := strings.TrimSpace(m.login.inputs[0].Value())
		password := m.login.inputs[1].Value()
		m.login.submitting = true
		m.lastErr = nil
		client := m.client
		return m, func() tea.Msg {
			user, err := client.Login(context.Background(), email, password)
			return loginResultMsg{user: user, err: err}
		}
	}

	return m.updateLoginInputs(msg)
}

func (m Model) updateLoginInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.login.inputs))
	for i := range m.login.inputs {
		m.login.inputs[i], cmds[i] = m.login.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}
	m.lastErr = nil
	m.user = msg.user
	m.viewMode = ViewDashboard
	return m, m.loadContactsPage()
}
