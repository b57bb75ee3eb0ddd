// ABOUTME: TUI CSV import view with live progress from the status poller
// ABOUTME: The poll loop ends on completed, failed, or a transport error
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calldeck/importer"
	"calldeck/models"
)

type importState struct {
	path    textinput.Model
	bar     progress.Model
	running bool
	id      string
	percent float64
	final   *models.ImportStatus

	updates <-chan importer.Progress
	cancel  context.CancelFunc
}

func newImportState() importState {
	path := textinput.New()
	path.Placeholder = "path to contacts.csv"
	path.Focus()
	path.CharLimit = 256

	return importState{
		path: path,
		bar:  progress.New(progress.WithDefaultGradient()),
	}
}

type importStartedMsg struct {
	id      string
	updates <-chan importer.Progress
	cancel  context.CancelFunc
	err     error
}

type importProgressMsg struct {
	progress importer.Progress
	ok       bool
}

func (m Model) renderImportView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IMPORT CONTACTS"))
	s.WriteString("\n")

	iv := &m.importView
	if !iv.running && iv.final == nil {
		s.WriteString("CSV file: " + iv.path.View() + "\n\n")
	}

	if iv.id != "" {
		s.WriteString("Import " + iv.id + "\n")
		s.WriteString(iv.bar.ViewAs(iv.percent/100) + "\n")
		if iv.final != nil {
			s.WriteString(fmt.Sprintf("%d of %d rows processed, %d failed\n",
				iv.final.ProcessedRows, iv.final.TotalRows, iv.final.FailedImports))
			if iv.final.Status == models.ImportStatusCompleted {
				s.WriteString(statusStyle.Render("✓ Import completed") + "\n")
			} else {
				s.WriteString(errorStyle.Render("Import failed") + "\n")
			}
		}
	}

	if m.lastErr != nil {
		s.WriteString("\n" + errorStyle.Render(m.lastErr.Error()) + "\n")
	}

	help := "Enter: Start import • Esc: Back"
	if iv.running {
		help = "Esc: Cancel and go back"
	}
	s.WriteString("\n" + helpStyle.Render(help))
	return s.String()
}

func (m Model) handleImportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	iv := &m.importView

	switch msg.String() {
	case "esc":
		if iv.cancel != nil {
			iv.cancel()
			iv.cancel = nil
		}
		iv.running = false
		m.viewMode = ViewDashboard
		m.status = ""
		return m, nil
	case "enter":
		if iv.running {
			return m, nil
		}
		path := strings.TrimSpace(iv.path.Value())
		if path == "" {
			m.lastErr = fmt.Errorf("enter a CSV file path")
			return m, nil
		}
		m.lastErr = nil
		iv.final = nil
		iv.percent = 0
		return m, m.startImport(path)
	}

	var cmd tea.Cmd
	iv.path, cmd = iv.path.Update(msg)
	return m, cmd
}

func (m Model) startImport(path string) tea.Cmd {
	client := m.client
	interval := m.cfg.PollInterval
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return importStartedMsg{err: err}
		}

		ctx, cancel := context.WithCancel(context.Background())
		id, err := client.StartImport(ctx, filepath.Base(path), content, "")
		if err != nil {
			cancel()
			return importStartedMsg{err: err}
		}

		poller := importer.New(func(ctx context.Context) (*models.ImportStatus, error) {
			return client.ImportStatus(ctx, id)
		}, interval)
		return importStartedMsg{id: id, updates: poller.Run(ctx), cancel: cancel}
	}
}

func (m Model) handleImportStarted(msg importStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}
	m.importView.running = true
	m.importView.id = msg.id
	m.importView.updates = msg.updates
	m.importView.cancel = msg.cancel
	return m, waitForImportProgress(msg.updates)
}

func waitForImportProgress(updates <-chan importer.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-updates
		return importProgressMsg{progress: p, ok: ok}
	}
}

func (m Model) handleImportProgress(msg importProgressMsg) (tea.Model, tea.Cmd) {
	iv := &m.importView
	if !msg.ok {
		iv.running = false
		if iv.cancel != nil {
			iv.cancel()
			iv.cancel = nil
		}
		return m, nil
	}

	p := msg.progress
	if p.Err != nil {
		m.lastErr = p.Err
		iv.running = false
		return m, nil
	}
	iv.percent = p.Percent
	if p.Status != nil && p.Status.Terminal() {
		iv.final = p.Status
		iv.running = false
		// New contacts are visible after a completed import.
		return m, m.loadContactsPage()
	}
	return m, waitForImportProgress(iv.updates)
}

func (m Model) updateImportInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.importView.path, cmd = m.importView.path.Update(msg)
	return m, cmd
}
