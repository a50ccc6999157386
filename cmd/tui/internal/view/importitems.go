package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/techbeamdesigns/invoicer/internal/importer"
	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/session"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateResult
)

// ImportItemsModel bulk-adds line items from a CSV file
// (description;sub-description;qty;unit price).
type ImportItemsModel struct {
	CommonModel
	sess          *session.Session
	importService *importer.Service

	state      importState
	filePicker filepicker.Model
	status     string
}

func NewImportItemsModel(sess *session.Session, impSvc *importer.Service) ImportItemsModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(12)

	return ImportItemsModel{
		sess:          sess,
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportItemsModel) Title() string { return "Import Items" }

func (m ImportItemsModel) ShortHelp() string { return "Enter: select file | Esc: back" }

func (m ImportItemsModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == importStateResult {
			m.state = importStateFilePick
			m.status = ""

			return m, m.filePicker.Init()
		}

	case parsedItemsMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		added := m.sess.AddItems(msg.items)
		m.status = fmt.Sprintf("Added %d items (%d rows skipped).", added, msg.skipped)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.status = fmt.Sprintf("Importing %s...", path)
		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportItemsModel) View() string {
	if m.state == importStateResult {
		return lipgloss.NewStyle().Padding(1).Render(
			m.status + "\n\n" + faintStyle().Render("Any key: import another | Esc: back"),
		)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		"Pick an item CSV file:\n\n" + m.filePicker.View() + "\n\n" +
			faintStyle().Render(m.ShortHelp()),
	)
}

type parsedItemsMsg struct {
	items   []invoice.ItemParams
	skipped int
	err     error
}

func (m ImportItemsModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parsedItemsMsg{err: fmt.Errorf("opening item file: %w", err)}
		}
		defer f.Close()

		items, skipped, err := m.importService.Import(importer.FormatCSV, f)

		return parsedItemsMsg{items: items, skipped: skipped, err: err}
	}
}
