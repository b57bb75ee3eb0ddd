// ABOUTME: TUI business profile form: description, audience, USPs, competitors
// ABOUTME: USP/competitor lists accumulate in insertion order, no dedupe
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calldeck/draft"
)

const (
	fieldDescription = iota
	fieldAudience
	fieldUSP
	fieldCompetitor
)

type profileState struct {
	inputs     []textinput.Model
	focusIndex int
	submitting bool
}

func newProfileState() profileState {
	description := textinput.New()
	description.Placeholder = "what does the business do?"
	description.Focus()
	description.CharLimit = 500

	audience := textinput.New()
	audience.Placeholder = "who are the customers?"
	audience.CharLimit = 300

	usp := textinput.New()
	usp.Placeholder = "add a selling point, press enter"
	usp.CharLimit = 200

	competitor := textinput.New()
	competitor.Placeholder = "add a competitor, press enter"
	competitor.CharLimit = 200

	return profileState{inputs: []textinput.Model{description, audience, usp, competitor}}
}

// profileResultMsg is sent when the profile submission completes.
type profileResultMsg struct {
	err error
}

func (m Model) renderProfileView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("BUSINESS PROFILE"))
	s.WriteString("\n")

	labels := []string{"Description", "Target audience", "Selling points", "Competitors"}
	for i, input := range m.profile.inputs {
		label := labels[i]
		if i == m.profile.focusIndex {
			label = optionSelectedStyle.Render(label)
		}
		s.WriteString(label + "\n" + input.View() + "\n")

		switch i {
		case fieldUSP:
			writeItemList(&s, m.builder.USPs())
		case fieldCompetitor:
			writeItemList(&s, m.builder.Competitors())
		}
		s.WriteString("\n")
	}

	if m.profile.submitting {
		s.WriteString("Submitting...\n")
	}
	if m.lastErr != nil {
		s.WriteString(errorStyle.Render(m.lastErr.Error()) + "\n")
	}
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("Tab: Next field • Enter: Add item • ctrl+d: Remove last item • ctrl+s: Submit • Esc: Back"))
	return s.String()
}

func writeItemList(s *strings.Builder, items []string) {
	for i, item := range items {
		s.WriteString(fmt.Sprintf("  %d. %s\n", i+1, item))
	}
}

func (m Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ps := &m.profile

	switch msg.String() {
	case "esc":
		m.viewMode = ViewWizard
		m.status = ""
		return m, nil
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			ps.focusIndex = (ps.focusIndex + 1) % len(ps.inputs)
		} else {
			ps.focusIndex = (ps.focusIndex + len(ps.inputs) - 1) % len(ps.inputs)
		}
		for i := range ps.inputs {
			if i == ps.focusIndex {
				ps.inputs[i].Focus()
			} else {
				ps.inputs[i].Blur()
			}
		}
		return m, nil
	case "enter":
		switch ps.focusIndex {
		case fieldUSP:
			if m.builder.AddUSP(ps.inputs[fieldUSP].Value()) {
				ps.inputs[fieldUSP].SetValue("")
			}
		case fieldCompetitor:
			if m.builder.AddCompetitor(ps.inputs[fieldCompetitor].Value()) {
				ps.inputs[fieldCompetitor].SetValue("")
			}
		}
		return m, nil
	case "ctrl+d":
		switch ps.focusIndex {
		case fieldUSP:
			m.builder.RemoveUSP(len(m.builder.USPs()) - 1)
		case fieldCompetitor:
			m.builder.RemoveCompetitor(len(m.builder.Competitors()) - 1)
		}
		return m, nil
	case "ctrl+s":
		return m.submitProfile()
	}

	var cmd tea.Cmd
	ps.inputs[ps.focusIndex], cmd = ps.inputs[ps.focusIndex].Update(msg)
	m.syncBuilderFields()
	return m, cmd
}

func (m *Model) syncBuilderFields() {
	m.builder.SetDescription(m.profile.inputs[fieldDescription].Value())
	m.builder.SetTargetAudience(m.profile.inputs[fieldAudience].Value())
}

func (m Model) submitProfile() (tea.Model, tea.Cmd) {
	if m.profile.submitting {
		return m, nil
	}
	m.syncBuilderFields()
	if err := m.builder.Validate(); err != nil {
		m.lastErr = err
		return m, nil
	}
	if !m.wizard.CanProceed() {
		m.lastErr = fmt.Errorf("business type selection is incomplete")
		return m, nil
	}

	m.profile.submitting = true
	m.lastErr = nil
	payload := m.builder.Payload(m.wizard.Selection())
	client := m.client
	return m, func() tea.Msg {
		if err := client.SubmitBusinessProfile(context.Background(), payload); err != nil {
			return profileResultMsg{err: err}
		}
		// The durable draft only exists until the profile lands.
		if store, err := draft.Open(draft.DefaultPath()); err == nil {
			_ = store.ClearSelection()
			_ = store.Close()
		}
		return profileResultMsg{}
	}
}

func (m Model) handleProfileResult(msg profileResultMsg) (tea.Model, tea.Cmd) {
	m.profile.submitting = false
	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}
	m.lastErr = nil
	m.status = "✓ Business profile saved"
	m.viewMode = ViewDashboard
	return m, nil
}

func (m Model) updateProfileInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.profile.inputs[m.profile.focusIndex], cmd = m.profile.inputs[m.profile.focusIndex].Update(msg)
	return m, cmd
}
