// ABOUTME: TUI read-only leads and call-history views
// ABOUTME: Sample-backed until the telephony endpoints ship
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"calldeck/models"
)

func (m Model) renderLeadsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("LEADS"))
	s.WriteString("\n")

	for _, lead := range models.SampleLeads() {
		s.WriteString(fmt.Sprintf("%-26s %-12s score %3d  %s\n",
			lead.Contact.FullName(), lead.Status, lead.Score, lead.Contact.CompanyName))
	}

	s.WriteString("\n" + helpStyle.Render("Esc: Back"))
	return s.String()
}

func (m Model) renderCallsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CALL HISTORY"))
	s.WriteString("\n")

	for _, call := range models.SampleCallHistory() {
		outcome := call.Outcome
		if outcome == "" {
			outcome = "-"
		}
		s.WriteString(fmt.Sprintf("%-26s %-10s %-16s %s\n",
			call.Contact.FullName(), call.Status, outcome,
			call.StartedAt.Format("Jan 2 15:04")))
	}

	s.WriteString("\n" + helpStyle.Render("Esc: Back"))
	return s.String()
}

func (m Model) handleListOnlyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.viewMode = ViewDashboard
	}
	return m, nil
}
