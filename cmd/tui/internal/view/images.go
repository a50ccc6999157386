package view

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/techbeamdesigns/invoicer/internal/imageio"
	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/session"
)

type imageTarget int

const (
	targetLogo imageTarget = iota
	targetQR
)

type imagesState int

const (
	imagesStateSelect imagesState = iota
	imagesStateFilePick
)

// ImagesModel manages the logo and payment QR. File ingestion is the only
// asynchronous edge in the editor: reading and encoding happen off the
// update loop, and the completion message applies the result as a normal
// command. Two in-flight ingestions race last-write-wins.
type ImagesModel struct {
	CommonModel
	sess *session.Session

	state      imagesState
	target     imageTarget
	filePicker filepicker.Model
	status     string
}

func NewImagesModel(sess *session.Session) ImagesModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".png", ".jpg", ".jpeg", ".gif"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(12)

	return ImagesModel{
		sess:       sess,
		filePicker: fp,
	}
}

func (m ImagesModel) Title() string { return "Logo & QR" }

func (m ImagesModel) ShortHelp() string {
	if m.state == imagesStateFilePick {
		return "Enter: select file | Esc: cancel"
	}

	return "l: set logo | q: set QR | d: remove logo | r: reset QR | Esc: back"
}

func (m ImagesModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == imagesStateSelect {
			return m.updateSelect(msg)
		}

		if msg.Type == tea.KeyEsc {
			m.state = imagesStateSelect
			return m, nil
		}

	case ingestedMsg:
		return m.applyIngested(msg)
	}

	if m.state != imagesStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = imagesStateSelect
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, ingestCmd(m.target, path)
	}

	return m, cmd
}

func (m ImagesModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, Back
	case "l":
		m.state = imagesStateFilePick
		m.target = targetLogo

		return m, m.filePicker.Init()
	case "q":
		m.state = imagesStateFilePick
		m.target = targetQR

		return m, m.filePicker.Init()
	case "d":
		m.sess.Apply(invoice.ClearLogo{})
		m.status = "Logo removed."

		return m, nil
	case "r":
		m.sess.Apply(invoice.ResetQR{})
		m.status = "QR reset to default."

		return m, nil
	}

	return m, nil
}

func (m ImagesModel) applyIngested(msg ingestedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("image ingestion failed", "request_id", msg.requestID, "error", msg.err)
		m.status = fmt.Sprintf("Error: %v", msg.err)

		return m, nil
	}

	if msg.payload == "" {
		// Nothing selected; deliberately not an error.
		m.status = ""
		return m, nil
	}

	// Two in-flight ingestions race last-write-wins; the request id makes
	// the interleaving visible in logs.
	slog.Debug("applying ingested image", "request_id", msg.requestID, "bytes", len(msg.payload))

	switch msg.target {
	case targetLogo:
		m.sess.Apply(invoice.SetLogoImage{Source: msg.payload})
		m.status = "Logo updated."
	case targetQR:
		m.sess.Apply(invoice.SetQRImage{Source: msg.payload})
		m.status = "QR updated."
	}

	return m, nil
}

func (m ImagesModel) View() string {
	if m.state == imagesStateFilePick {
		label := "logo"
		if m.target == targetQR {
			label = "payment QR"
		}

		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Pick an image for the %s:\n\n%s\n\n%s",
				label, m.filePicker.View(), faintStyle().Render(m.ShortHelp())),
		)
	}

	doc := m.sess.Document()

	logo := "none"
	if doc.LogoImage != "" {
		logo = fmt.Sprintf("set (%d bytes)", len(doc.LogoImage))
	}

	qr := doc.Payment.QRImage
	if qr == doc.Payment.DefaultQRImage {
		qr = qr + " (default)"
	} else {
		qr = fmt.Sprintf("custom (%d bytes)", len(qr))
	}

	content := fmt.Sprintf("Logo: %s\nPayment QR: %s\n", logo, qr)

	if m.status != "" {
		content += "\n" + faintStyle().Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		content + "\n\n" + faintStyle().Render(m.ShortHelp()),
	)
}

type ingestedMsg struct {
	requestID uuid.UUID
	target    imageTarget
	payload   string
	err       error
}

func ingestCmd(target imageTarget, path string) tea.Cmd {
	requestID := uuid.New()

	return func() tea.Msg {
		slog.Debug("ingesting image", "request_id", requestID, "path", path)
		payload, err := imageio.FromFile(path)

		return ingestedMsg{requestID: requestID, target: target, payload: payload, err: err}
	}
}
