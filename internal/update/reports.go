package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/report"
	"github.com/complymate/complymate/internal/views"
)

func (m Model) handleReportsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down", "k", "up", "pgup", "pgdown":
		var cmd tea.Cmd
		m.summaryView, cmd = m.summaryView.Update(msg)
		return m, cmd
	case "x":
		path, err := m.exportCSV("")
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "exported " + path, IsError: false}
		}
	case "p":
		path, err := m.exportSummary("")
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "exported " + path, IsError: false}
		}
	}
	return m, nil
}

func (m Model) renderReportsView() string {
	return views.RenderReportsPanel(views.ReportsPanelData{
		SummaryView: m.summaryView.View(),
		ExportHint:  "export dir: " + m.ExportDir,
	})
}

// exportCSV writes the task collection to the export directory, or to the
// given path when one is supplied.
func (m Model) exportCSV(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join(m.ExportDir, report.ExportFileName(m.Clock()))
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("update: create export file: %w", err)
	}
	defer f.Close()
	if err := report.WriteCSV(f, m.Session.Tasks(), m.Session.Users()); err != nil {
		return "", err
	}
	return path, nil
}

// exportSummary writes the markdown executive summary alongside the CSV
// exports.
func (m Model) exportSummary(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		name := strings.TrimSuffix(report.ExportFileName(m.Clock()), ".csv") + ".md"
		path = filepath.Join(m.ExportDir, name)
	}
	md := report.Summary(m.Session.Tasks(), m.Session.Users(), m.Clock())
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("update: write summary file: %w", err)
	}
	return path, nil
}
