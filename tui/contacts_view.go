// ABOUTME: TUI contacts view: filterable table, row selection, bulk actions
// ABOUTME: Select-all binds to the filtered rows; bulk success clears and refetches
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calldeck/api"
	"calldeck/contacts"
	"calldeck/models"
)

// statusCycle and sourceCycle are the filter values stepped through by the
// s and o keys; the empty entry is the wildcard.
var statusCycle = []string{"", models.ContactStatusActive, models.ContactStatusInactive, models.ContactStatusBlocked, models.ContactStatusDND}

var sourceCycle = []string{"", models.SourceManual, models.SourceImport, models.SourceAPI, models.SourceWebsite}

type contactsState struct {
	all     []models.Contact
	groups  []models.ContactGroup
	stats   *models.ContactStats
	loaded  bool
	visible []models.Contact

	filter    contacts.Filter
	groupIdx  int // index into groups+1; 0 = wildcard
	selection *contacts.Selection
	table     table.Model
	search    textinput.Model
	searching bool
	bulkMenu  bool
}

func newContactsState() contactsState {
	search := textinput.New()
	search.Placeholder = "search contacts..."
	search.CharLimit = 80

	t := table.New(
		table.WithColumns(contactColumns()),
		table.WithFocused(true),
	)

	return contactsState{
		selection: contacts.NewSelection(),
		search:    search,
		table:     t,
	}
}

func contactColumns() []table.Column {
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "Name", Width: 24},
		{Title: "Phone", Width: 16},
		{Title: "Company", Width: 18},
		{Title: "Status", Width: 9},
		{Title: "Group", Width: 12},
	}
}

// bulkResultMsg is sent when a bulk action request completes.
type bulkResultMsg struct {
	action string
	count  int
	err    error
}

func (m *Model) refreshContactsTable() {
	m.contactsView.visible = m.visibleContacts()

	rows := make([]table.Row, 0, len(m.contactsView.visible))
	for _, contact := range m.contactsView.visible {
		mark := " "
		if m.contactsView.selection.Has(contact.ID) {
			mark = "✓"
		}
		groupName := ""
		if contact.Group != nil {
			groupName = contact.Group.Name
		}
		rows = append(rows, table.Row{mark, contact.FullName(), contact.Phone, contact.CompanyName, contact.Status, groupName})
	}

	height := m.height - 12
	if height < 3 {
		height = 3
	}
	m.contactsView.table.SetRows(rows)
	m.contactsView.table.SetHeight(height)
}

func (m Model) renderContactsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CONTACTS"))
	s.WriteString("\n")

	cv := &m.contactsView
	filters := []struct {
		label string
		value string
	}{
		{"search", cv.filter.Search},
		{"status", cv.filter.Status},
		{"group", m.groupFilterName()},
		{"source", cv.filter.Source},
	}
	var tabs []string
	for _, f := range filters {
		style := tabInactiveStyle
		if f.value != "" {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(f.label+": "+orAll(f.value)))
	}
	s.WriteString(strings.Join(tabs, " "))
	s.WriteString("\n\n")

	if cv.searching {
		s.WriteString("Search: " + cv.search.View() + "\n\n")
	}

	if !cv.loaded {
		s.WriteString("Loading...\n")
	} else {
		s.WriteString(cv.table.View())
		s.WriteString("\n")
		s.WriteString(fmt.Sprintf("%d of %d contact(s), %d selected\n", len(cv.visible), len(cv.all), cv.selection.Count()))
	}

	if m.lastErr != nil {
		s.WriteString("\n" + errorStyle.Render(m.lastErr.Error()) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	if cv.bulkMenu {
		s.WriteString("\nBulk action: d: delete • t: set active • n: set inactive • g: assign filtered group • c: schedule calls • Esc: cancel\n")
	} else {
		s.WriteString("\n" + helpStyle.Render("↑/↓: Navigate • space: Select • a: Select all visible • x: Clear • /: Search • s/o/g: Filters • b: Bulk • r: Refresh • Esc: Back"))
	}
	return s.String()
}

func (m Model) handleContactsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cv := &m.contactsView

	if cv.searching {
		switch msg.String() {
		case "enter", "esc":
			cv.searching = false
			cv.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		cv.search, cmd = cv.search.Update(msg)
		cv.filter.Search = cv.search.Value()
		m.refreshContactsTable()
		return m, cmd
	}

	if cv.bulkMenu {
		return m.handleBulkMenuKeys(msg)
	}

	switch msg.String() {
	case "esc", "q":
		m.viewMode = ViewDashboard
		m.status = ""
		return m, nil
	case "/":
		cv.searching = true
		cv.search.Focus()
		return m, nil
	case "s":
		cv.filter.Status = cycleNext(statusCycle, cv.filter.Status)
		m.refreshContactsTable()
		return m, nil
	case "o":
		cv.filter.Source = cycleNext(sourceCycle, cv.filter.Source)
		m.refreshContactsTable()
		return m, nil
	case "g":
		cv.groupIdx = (cv.groupIdx + 1) % (len(cv.groups) + 1)
		if cv.groupIdx == 0 {
			cv.filter.GroupID = nil
		} else {
			id := cv.groups[cv.groupIdx-1].ID
			cv.filter.GroupID = &id
		}
		m.refreshContactsTable()
		return m, nil
	case " ":
		if row := cv.table.Cursor(); row >= 0 && row < len(cv.visible) {
			cv.selection.Toggle(cv.visible[row].ID)
			m.refreshContactsTable()
		}
		return m, nil
	case "a":
		cv.selection.SelectAll(cv.visible)
		m.refreshContactsTable()
		return m, nil
	case "x":
		cv.selection.Clear()
		m.refreshContactsTable()
		return m, nil
	case "b":
		if cv.selection.Count() > 0 {
			cv.bulkMenu = true
		} else {
			m.status = "Nothing selected"
		}
		return m, nil
	case "r":
		m.status = ""
		return m, m.loadContactsPage()
	}

	var cmd tea.Cmd
	cv.table, cmd = cv.table.Update(msg)
	return m, cmd
}

func (m Model) handleBulkMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cv := &m.contactsView
	cv.bulkMenu = false

	ids := cv.selection.IDs()
	switch msg.String() {
	case "d":
		return m, m.runBulk(&api.BulkRequest{ContactIDs: ids, Action: contacts.BulkDelete})
	case "t":
		return m, m.runBulk(&api.BulkRequest{
			ContactIDs: ids,
			Action:     contacts.BulkSetStatus,
			Params:     map[string]string{"status": models.ContactStatusActive},
		})
	case "n":
		return m, m.runBulk(&api.BulkRequest{
			ContactIDs: ids,
			Action:     contacts.BulkSetStatus,
			Params:     map[string]string{"status": models.ContactStatusInactive},
		})
	case "g":
		if cv.filter.GroupID == nil {
			m.status = "Pick a group filter first (g) to choose the target group"
			return m, nil
		}
		return m, m.runBulk(&api.BulkRequest{
			ContactIDs: ids,
			Action:     contacts.BulkAssignGroup,
			Params:     map[string]string{"group": cv.filter.GroupID.String()},
		})
	case "c":
		client := m.client
		at := time.Now().Add(time.Hour).Truncate(time.Minute)
		count := len(ids)
		return m, func() tea.Msg {
			err := client.BulkScheduleCalls(context.Background(), ids, at, models.PriorityNormal)
			return bulkResultMsg{action: contacts.BulkScheduleCall, count: count, err: err}
		}
	}
	return m, nil
}

func (m Model) runBulk(req *api.BulkRequest) tea.Cmd {
	client := m.client
	count := len(req.ContactIDs)
	return func() tea.Msg {
		err := client.BulkAction(context.Background(), req)
		return bulkResultMsg{action: req.Action, count: count, err: err}
	}
}

func (m Model) handleBulkResult(msg bulkResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}
	m.lastErr = nil
	m.status = fmt.Sprintf("✓ %s applied to %d contact(s)", msg.action, msg.count)
	m.contactsView.selection.Clear()
	return m, m.loadContactsPage()
}

func (m Model) updateContactsInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.contactsView.searching {
		return m, nil
	}
	var cmd tea.Cmd
	m.contactsView.search, cmd = m.contactsView.search.Update(msg)
	m.contactsView.filter.Search = m.contactsView.search.Value()
	m.refreshContactsTable()
	return m, cmd
}

func (m Model) groupFilterName() string {
	if m.contactsView.filter.GroupID == nil {
		return ""
	}
	for _, g := range m.contactsView.groups {
		if g.ID == *m.contactsView.filter.GroupID {
			return g.Name
		}
	}
	return m.contactsView.filter.GroupID.String()[:8]
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

func cycleNext(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
