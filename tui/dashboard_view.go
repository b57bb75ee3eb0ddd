// ABOUTME: TUI dashboard view with stat cards and navigation
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2).
	MarginRight(2)

func (m Model) renderDashboardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CALLDECK DASHBOARD"))
	s.WriteString("\n")
	if m.user != nil {
		s.WriteString(fmt.Sprintf("Signed in as %s %s\n\n", m.user.FirstName, m.user.LastName))
	}

	total := "-"
	active := "-"
	groups := "-"
	imported := "-"
	if m.contactsView.loaded && m.contactsView.stats != nil {
		stats := m.contactsView.stats
		total = fmt.Sprintf("%d", stats.Total)
		active = fmt.Sprintf("%d", stats.ByStatus["active"])
		groups = fmt.Sprintf("%d", len(m.contactsView.groups))
		imported = fmt.Sprintf("%d", stats.BySource["import"])
	}

	cards := []string{
		cardStyle.Render("Total Contacts\n" + total),
		cardStyle.Render("Active\n" + active),
		cardStyle.Render("Groups\n" + groups),
		cardStyle.Render("Imported\n" + imported),
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	s.WriteString("\n\n")

	if m.lastErr != nil {
		s.WriteString(errorStyle.Render(m.lastErr.Error()) + "\n\n")
	}
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status) + "\n\n")
	}

	s.WriteString(helpStyle.Render("c: Contacts • l: Leads • h: Call history • o: Onboarding • i: Import • r: Refresh • q: Quit"))
	return s.String()
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		m.viewMode = ViewContacts
		if !m.contactsView.loaded {
			return m, m.loadContactsPage()
		}
		m.refreshContactsTable()
	case "l":
		m.viewMode = ViewLeads
	case "h":
		m.viewMode = ViewCalls
	case "o":
		m.viewMode = ViewWizard
	case "i":
		m.viewMode = ViewImport
	case "r":
		m.status = ""
		return m, m.loadContactsPage()
	}
	return m, nil
}
