// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen console for the sales-calling admin surface
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calldeck/api"
	"calldeck/config"
	"calldeck/models"
	"calldeck/onboarding"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewLogin ViewMode = iota
	ViewDashboard
	ViewContacts
	ViewWizard
	ViewProfileForm
	ViewImport
	ViewLeads
	ViewCalls
)

// Model is the main bubbletea model
type Model struct {
	client *api.Client
	cfg    *config.Config

	viewMode ViewMode
	user     *models.User

	// Login view state
	login loginState

	// Contacts view state
	contactsView contactsState

	// Onboarding state
	wizard       *onboarding.Wizard
	wizardCursor int
	builder      *onboarding.ProfileBuilder
	profile      profileState

	// Import view state
	importView importState

	// UI state
	width   int
	height  int
	status  string
	lastErr error
}

// NewModel creates the TUI model. The starting view depends on whether a
// session is already stored.
func NewModel(client *api.Client, cfg *config.Config) Model {
	m := Model{
		client:   client,
		cfg:      cfg,
		viewMode: ViewLogin,
		wizard:   onboarding.NewWizard(nil),
		builder:  onboarding.NewProfileBuilder(),
		width:    80,
		height:   24,
	}
	m.login = newLoginState()
	m.contactsView = newContactsState()
	m.profile = newProfileState()
	m.importView = newImportState()

	if sess, err := client.Session(); err == nil && sess.Authenticated() {
		m.user = sess.User
		m.viewMode = ViewDashboard
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.viewMode == ViewDashboard {
		return m.loadContactsPage()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loginResultMsg:
		return m.handleLoginResult(msg)
	case pageDataMsg:
		return m.handlePageData(msg)
	case bulkResultMsg:
		return m.handleBulkResult(msg)
	case profileResultMsg:
		return m.handleProfileResult(msg)
	case importStartedMsg:
		return m.handleImportStarted(msg)
	case importProgressMsg:
		return m.handleImportProgress(msg)
	}

	// Text inputs need the raw message stream while focused.
	switch m.viewMode {
	case ViewLogin:
		return m.updateLoginInputs(msg)
	case ViewContacts:
		return m.updateContactsInputs(msg)
	case ViewProfileForm:
		return m.updateProfileInputs(msg)
	case ViewImport:
		return m.updateImportInputs(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewLogin:
		return m.renderLoginView()
	case ViewDashboard:
		return m.renderDashboardView()
	case ViewContacts:
		return m.renderContactsView()
	case ViewWizard:
		return m.renderWizardView()
	case ViewProfileForm:
		return m.renderProfileView()
	case ViewImport:
		return m.renderImportView()
	case ViewLeads:
		return m.renderLeadsView()
	case ViewCalls:
		return m.renderCallsView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewLogin:
		return m.handleLoginKeys(msg)
	case ViewDashboard:
		return m.handleDashboardKeys(msg)
	case ViewContacts:
		return m.handleContactsKeys(msg)
	case ViewWizard:
		return m.handleWizardKeys(msg)
	case ViewProfileForm:
		return m.handleProfileKeys(msg)
	case ViewImport:
		return m.handleImportKeys(msg)
	case ViewLeads, ViewCalls:
		return m.handleListOnlyKeys(msg)
	}
	return m, nil
}

// pageDataMsg delivers the parallel page-load results. The view becomes
// ready only once all three fetches have resolved; the joining happens in
// the command so a stale completion can never touch a switched-away view's
// state directly.
type pageDataMsg struct {
	contacts []models.Contact
	groups   []models.ContactGroup
	stats    *models.ContactStats
	err      error
}

func (m Model) loadContactsPage() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		type contactsResult struct {
			contacts []models.Contact
			err      error
		}
		type groupsResult struct {
			groups []models.ContactGroup
			err    error
		}
		type statsResult struct {
			stats *models.ContactStats
			err   error
		}

		contactsCh := make(chan contactsResult, 1)
		groupsCh := make(chan groupsResult, 1)
		statsCh := make(chan statsResult, 1)

		go func() {
			list, err := client.ListContacts(ctx)
			contactsCh <- contactsResult{list, err}
		}()
		go func() {
			groups, err := client.ListGroups(ctx)
			groupsCh <- groupsResult{groups, err}
		}()
		go func() {
			stats, err := client.Stats(ctx)
			statsCh <- statsResult{stats, err}
		}()

		cRes := <-contactsCh
		gRes := <-groupsCh
		sRes := <-statsCh

		msg := pageDataMsg{contacts: cRes.contacts, groups: gRes.groups, stats: sRes.stats}
		for _, err := range []error{cRes.err, gRes.err, sRes.err} {
			if err != nil {
				msg.err = err
				break
			}
		}
		return msg
	}
}

func (m Model) handlePageData(msg pageDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}
	m.lastErr = nil
	m.contactsView.all = msg.contacts
	m.contactsView.groups = msg.groups
	m.contactsView.stats = msg.stats
	m.contactsView.loaded = true
	m.refreshContactsTable()
	return m, nil
}

func (m *Model) visibleContacts() []models.Contact {
	return m.contactsView.filter.Apply(m.contactsView.all)
}

// Shared styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)
