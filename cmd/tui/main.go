package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/techbeamdesigns/invoicer/cmd/tui/internal/view"
	"github.com/techbeamdesigns/invoicer/internal/config"
	"github.com/techbeamdesigns/invoicer/internal/importer"
	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/money"
	"github.com/techbeamdesigns/invoicer/internal/preview"
	"github.com/techbeamdesigns/invoicer/internal/printer"
	"github.com/techbeamdesigns/invoicer/internal/render"
	"github.com/techbeamdesigns/invoicer/internal/session"
)

type View int

const (
	ViewMenu    View = 0
	ViewDetails View = 1
	ViewParties View = 2
	ViewItems   View = 3
	ViewImages  View = 4
	ViewImport  View = 5
)

var themes = []render.Theme{render.ThemeClassic, render.ThemeMono}

type model struct {
	sess          *session.Session
	importService *importer.Service
	print         *printer.Printer

	textSurface *render.TextSurface
	htmlSurface *preview.HTMLSurface
	previewAddr string
	themeIdx    int

	currentView View
	status      string

	detailsView view.DetailsModel
	partiesView view.PartiesModel
	itemsView   view.ItemsModel
	imagesView  view.ImagesModel
	importView  view.ImportItemsModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	doc := invoice.NewDocument(invoice.Defaults{
		Currency:       cfg.Invoice.Currency,
		TaxRatePercent: cfg.Invoice.TaxRate,
		UPIID:          cfg.Invoice.UPIID,
		QRImage:        cfg.Invoice.QRImage,
		Notes:          cfg.Invoice.Notes,
	})

	formatter := money.NewFormatter(cfg.Locale.Tag)

	textSurface := render.NewTextSurface(render.Theme(cfg.Preview.Theme))
	htmlSurface := preview.NewHTMLSurface(cfg.Preview.Theme)
	pdfSurface := render.NewPDFSurface()

	pipeline := render.NewPipeline(formatter, textSurface, pdfSurface)

	logger := slog.Default()
	sess := session.New(doc, pipeline, logger)
	prt := printer.New(pdfSurface, logger)
	server := preview.NewServer(htmlSurface, prt.Invoke, logger)

	// The browser projection joins the pipeline alongside the server that
	// serves it.
	pipeline.Attach(htmlSurface)

	sess.OnRender(server.NotifyReload)
	sess.Refresh()

	go func() {
		if err := server.Start(cfg.PreviewAddr()); err != nil {
			slog.Error("preview server stopped", "error", err)
		}
	}()

	impSvc := importer.NewService()

	return model{
		sess:          sess,
		importService: impSvc,
		print:         prt,
		textSurface:   textSurface,
		htmlSurface:   htmlSurface,
		previewAddr:   cfg.PreviewAddr(),
		currentView:   ViewMenu,
		detailsView:   view.NewDetailsModel(sess),
		partiesView:   view.NewPartiesModel(sess),
		itemsView:     view.NewItemsModel(sess),
		imagesView:    view.NewImagesModel(sess),
		importView:    view.NewImportItemsModel(sess, impSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDetails
				m.detailsView = view.NewDetailsModel(m.sess)

				return m, m.detailsView.Init()
			case "2":
				m.currentView = ViewParties
				m.partiesView = view.NewPartiesModel(m.sess)

				return m, m.partiesView.Init()
			case "3":
				m.currentView = ViewItems
				m.itemsView = view.NewItemsModel(m.sess)

				return m, m.itemsView.Init()
			case "4":
				m.currentView = ViewImages
				m.imagesView = view.NewImagesModel(m.sess)

				return m, m.imagesView.Init()
			case "5":
				m.currentView = ViewImport
				m.importView = view.NewImportItemsModel(m.sess, m.importService)

				return m, m.importView.Init()
			case "p":
				m.print.Invoke()
				m.status = "Sent to platform print handler."

				return m, nil
			case "t":
				m.themeIdx = (m.themeIdx + 1) % len(themes)
				theme := themes[m.themeIdx]
				m.textSurface.SetTheme(theme)
				m.htmlSurface.SetTheme(string(theme))
				m.sess.Refresh()
				m.status = "Theme: " + string(theme)

				return m, nil
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDetails:
		var newModel tea.Model
		newModel, cmd = m.detailsView.Update(msg)
		m.detailsView = newModel.(view.DetailsModel)
	case ViewParties:
		var newModel tea.Model
		newModel, cmd = m.partiesView.Update(msg)
		m.partiesView = newModel.(view.PartiesModel)
	case ViewItems:
		var newModel tea.Model
		newModel, cmd = m.itemsView.Update(msg)
		m.itemsView = newModel.(view.ItemsModel)
	case ViewImages:
		var newModel tea.Model
		newModel, cmd = m.imagesView.Update(msg)
		m.imagesView = newModel.(view.ImagesModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportItemsModel)
	}

	return m, cmd
}

func (m model) View() string {
	var editor string

	switch m.currentView {
	case ViewMenu:
		menu := "Invoicer\n\n" +
			"1. Invoice Details\n" +
			"2. Sender & Client\n" +
			"3. Line Items\n" +
			"4. Logo & QR\n" +
			"5. Import Items (CSV)\n\n" +
			"p. Print\n" +
			"t. Cycle Theme\n" +
			"q. Quit\n\n" +
			"Browser preview: http://" + m.previewAddr

		if m.status != "" {
			menu += "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
		}

		editor = lipgloss.NewStyle().Padding(2).Render(menu)
	case ViewDetails:
		editor = m.detailsView.View()
	case ViewParties:
		editor = m.partiesView.View()
	case ViewItems:
		editor = m.itemsView.View()
	case ViewImages:
		editor = m.imagesView.View()
	case ViewImport:
		editor = m.importView.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, editor, m.textSurface.String())
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
