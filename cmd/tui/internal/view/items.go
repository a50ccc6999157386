package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/render"
	"github.com/techbeamdesigns/invoicer/internal/session"
)

const itemCols = 4

// column order: description, sub-description, quantity, unit price
var itemFields = [itemCols]invoice.ItemField{
	invoice.FieldDescription,
	invoice.FieldSubDescription,
	invoice.FieldQuantity,
	invoice.FieldUnitPrice,
}

type itemRow struct {
	id     int
	inputs [itemCols]textinput.Model
}

// ItemsModel edits the line-item grid. Field edits write straight into the
// session without rebuilding the inputs, so typing never loses focus; only
// structural changes (add/remove) rebuild the rows.
type ItemsModel struct {
	CommonModel
	sess *session.Session

	rows     []itemRow
	focusRow int
	focusCol int
	status   string
}

func NewItemsModel(sess *session.Session) ItemsModel {
	m := ItemsModel{sess: sess}
	m.rebuildRows()

	return m
}

func (m ItemsModel) Title() string { return "Line Items" }

func (m ItemsModel) ShortHelp() string {
	return "Tab/arrows: move | ctrl+n: add item | ctrl+d: delete item | Esc: back"
}

func (m ItemsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "ctrl+n":
			id := m.sess.AddItem()
			m.rebuildRows()
			m.focusOn(len(m.rows)-1, 0)
			m.status = fmt.Sprintf("Added item %d.", id)

			return m, nil
		case "ctrl+d":
			if len(m.rows) == 0 {
				return m, nil
			}

			id := m.rows[m.focusRow].id
			m.sess.RemoveItem(id)
			m.rebuildRows()
			m.status = fmt.Sprintf("Removed item %d.", id)

			return m, nil
		case "tab", "right":
			if keyMsg.String() == "tab" || m.atFieldEnd() {
				m.moveFocus(0, 1)
				return m, nil
			}
		case "shift+tab":
			m.moveFocus(0, -1)
			return m, nil
		case "up":
			m.moveFocus(-1, 0)
			return m, nil
		case "down", "enter":
			m.moveFocus(1, 0)
			return m, nil
		}
	}

	if len(m.rows) == 0 {
		return m, nil
	}

	row := &m.rows[m.focusRow]
	input := &row.inputs[m.focusCol]

	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if after := input.Value(); after != before {
		m.sess.UpdateItemField(row.id, itemFields[m.focusCol], after)
	}

	return m, cmd
}

func (m ItemsModel) View() string {
	if len(m.rows) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			"No line items.\n\n" + faintStyle().Render(m.ShortHelp()),
		)
	}

	var b strings.Builder

	for i, row := range m.rows {
		marker := "  "
		if i == m.focusRow {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("> ")
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, row.inputs[0].View(), row.inputs[2].View()))
		b.WriteString(fmt.Sprintf("  %s %s\n\n", row.inputs[1].View(), row.inputs[3].View()))
	}

	if m.status != "" {
		b.WriteString(faintStyle().Render(m.status) + "\n")
	}

	b.WriteString(faintStyle().Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

// rebuildRows recreates every input row from the current item sequence.
// Called only after structural changes; rebuilding on field edits would
// drop keyboard focus mid-typing.
func (m *ItemsModel) rebuildRows() {
	items := m.sess.Items()
	m.rows = make([]itemRow, len(items))

	for i, it := range items {
		desc := newItemInput("Item Name", it.Description, 26)
		sub := newItemInput("Description (optional)", it.SubDescription, 26)
		qty := newItemInput("Qty", render.FormatNumber(it.Quantity), 8)
		price := newItemInput("Price", render.FormatNumber(it.UnitPrice), 12)

		m.rows[i] = itemRow{
			id:     it.ID,
			inputs: [itemCols]textinput.Model{desc, sub, qty, price},
		}
	}

	if m.focusRow >= len(m.rows) {
		m.focusRow = len(m.rows) - 1
	}

	if m.focusRow < 0 {
		m.focusRow = 0
	}

	m.focusOn(m.focusRow, m.focusCol)
}

func newItemInput(placeholder, value string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = width
	ti.Prompt = ""
	ti.SetValue(value)

	return ti
}

func (m *ItemsModel) focusOn(row, col int) {
	for i := range m.rows {
		for j := range m.rows[i].inputs {
			m.rows[i].inputs[j].Blur()
		}
	}

	if len(m.rows) == 0 {
		return
	}

	m.focusRow = clamp(row, 0, len(m.rows)-1)
	m.focusCol = clamp(col, 0, itemCols-1)
	m.rows[m.focusRow].inputs[m.focusCol].Focus()
}

func (m *ItemsModel) moveFocus(dRow, dCol int) {
	row := m.focusRow + dRow
	col := m.focusCol + dCol

	if col >= itemCols {
		col = 0
		row++
	}

	if col < 0 {
		col = itemCols - 1
		row--
	}

	if row >= len(m.rows) {
		row = 0
	}

	if row < 0 {
		row = len(m.rows) - 1
	}

	m.focusOn(row, col)
}

func (m ItemsModel) atFieldEnd() bool {
	if len(m.rows) == 0 {
		return true
	}

	input := m.rows[m.focusRow].inputs[m.focusCol]

	return input.Position() >= len(input.Value())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
