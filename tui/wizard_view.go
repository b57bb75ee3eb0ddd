// ABOUTME: TUI business-type wizard: four dependent selection levels
// ABOUTME: Choosing a level clears everything deeper; Back never clears
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	optionSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	optionChosenStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10"))
)

func (m Model) renderWizardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("BUSINESS SETUP"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Step %d of 4: %s\n\n", m.wizard.Level(), m.wizard.LevelTitle()))

	sel := m.wizard.Selection()
	crumbs := []string{sel.Industry, sel.Subcategory, sel.BusinessType, sel.BusinessModel}
	var picked []string
	for _, c := range crumbs {
		if c != "" {
			picked = append(picked, c)
		}
	}
	if len(picked) > 0 {
		s.WriteString("Selected: " + strings.Join(picked, " › ") + "\n\n")
	}

	if m.wizard.Blocked() {
		s.WriteString(errorStyle.Render("No options are available for this combination.") + "\n")
		s.WriteString("Go back and pick a different branch.\n")
	} else {
		options := m.wizard.Options()
		chosen := currentLevelValue(m)
		for i, opt := range options {
			cursor := "  "
			line := fmt.Sprintf("%s — %s", opt.Name, opt.Description)
			if opt.Description == "" {
				line = opt.Name
			}
			switch {
			case i == m.wizardCursor:
				cursor = "> "
				line = optionSelectedStyle.Render(line)
			case opt.ID == chosen:
				line = optionChosenStyle.Render("✓ " + line)
			}
			s.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		s.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	help := "↑/↓: Navigate • Enter: Choose • b: Back • Esc: Dashboard"
	if m.wizard.CanProceed() {
		help += " • p: Continue to profile"
	}
	s.WriteString("\n" + helpStyle.Render(help))
	return s.String()
}

func currentLevelValue(m Model) string {
	sel := m.wizard.Selection()
	switch m.wizard.Level() {
	case 1:
		return sel.Industry
	case 2:
		return sel.Subcategory
	case 3:
		return sel.BusinessType
	case 4:
		return sel.BusinessModel
	}
	return ""
}

func (m Model) handleWizardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.wizard.Options()

	switch msg.String() {
	case "esc":
		m.viewMode = ViewDashboard
		m.status = ""
		return m, nil
	case "up", "k":
		if m.wizardCursor > 0 {
			m.wizardCursor--
		}
		return m, nil
	case "down", "j":
		if m.wizardCursor < len(options)-1 {
			m.wizardCursor++
		}
		return m, nil
	case "enter":
		if m.wizardCursor >= 0 && m.wizardCursor < len(options) {
			m.wizard.Choose(options[m.wizardCursor].ID)
			m.wizardCursor = 0
			m.status = ""
		}
		return m, nil
	case "b", "left":
		m.wizard.Back()
		m.wizardCursor = 0
		return m, nil
	case "p":
		if m.wizard.CanProceed() {
			m.viewMode = ViewProfileForm
			m.status = ""
		} else {
			m.status = "Finish all four steps first"
		}
		return m, nil
	}
	return m, nil
}
