package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/session"
)

// PartiesModel edits the sender and client blocks with the same live
// diff-apply behavior as the details form.
type PartiesModel struct {
	CommonModel
	sess *session.Session

	form    *huh.Form
	applied map[string]string
}

const (
	keySenderName    = "sender_name"
	keySenderEmail   = "sender_email"
	keySenderAddress = "sender_address"
	keyClientName    = "client_name"
	keyClientEmail   = "client_email"
	keyClientAddress = "client_address"
)

func NewPartiesModel(sess *session.Session) PartiesModel {
	doc := sess.Document()

	initial := map[string]string{
		keySenderName:    doc.Sender.Name,
		keySenderEmail:   doc.Sender.Email,
		keySenderAddress: doc.Sender.Address,
		keyClientName:    doc.Client.Name,
		keyClientEmail:   doc.Client.Email,
		keyClientAddress: doc.Client.Address,
	}

	values := make(map[string]*string, len(initial))
	for key, v := range initial {
		value := v
		values[key] = &value
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key(keySenderName).Title("Your Company").Placeholder("Company Name").Value(values[keySenderName]),
			huh.NewInput().Key(keySenderEmail).Title("Your Email").Value(values[keySenderEmail]),
			huh.NewInput().Key(keySenderAddress).Title("Your Address").Value(values[keySenderAddress]),
		),
		huh.NewGroup(
			huh.NewInput().Key(keyClientName).Title("Client").Placeholder("Client Name").Value(values[keyClientName]),
			huh.NewInput().Key(keyClientEmail).Title("Client Email").Value(values[keyClientEmail]),
			huh.NewInput().Key(keyClientAddress).Title("Client Address").Value(values[keyClientAddress]),
		),
	).WithWidth(46).WithShowHelp(false)

	return PartiesModel{
		sess:    sess,
		form:    form,
		applied: initial,
	}
}

func (m PartiesModel) Title() string { return "Sender & Client" }

func (m PartiesModel) ShortHelp() string { return "Enter/Tab: next field | Esc: back" }

func (m PartiesModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m PartiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	m.syncChanges()

	if m.form.State == huh.StateCompleted {
		return m, Back
	}

	return m, cmd
}

func (m PartiesModel) syncChanges() {
	for key, apply := range partyCommands {
		value := m.form.GetString(key)
		if value == m.applied[key] {
			continue
		}

		m.sess.Apply(apply(value))
		m.applied[key] = value
	}
}

var partyCommands = map[string]func(string) invoice.Command{
	keySenderName: func(v string) invoice.Command {
		return invoice.SetPartyName{Role: invoice.RoleSender, Value: v}
	},
	keySenderEmail: func(v string) invoice.Command {
		return invoice.SetPartyEmail{Role: invoice.RoleSender, Value: v}
	},
	keySenderAddress: func(v string) invoice.Command {
		return invoice.SetPartyAddress{Role: invoice.RoleSender, Value: v}
	},
	keyClientName: func(v string) invoice.Command {
		return invoice.SetPartyName{Role: invoice.RoleClient, Value: v}
	},
	keyClientEmail: func(v string) invoice.Command {
		return invoice.SetPartyEmail{Role: invoice.RoleClient, Value: v}
	},
	keyClientAddress: func(v string) invoice.Command {
		return invoice.SetPartyAddress{Role: invoice.RoleClient, Value: v}
	},
}

func (m PartiesModel) View() string {
	return lipgloss.NewStyle().Padding(1).Render(
		m.form.View() + "\n" + faintStyle().Render(m.ShortHelp()),
	)
}
