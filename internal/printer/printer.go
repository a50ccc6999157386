// Package printer implements the opaque "invoke platform print" capability:
// the current PDF projection is written to a temporary file and handed to
// the operating system. No parameters, no result; failures are logged only.
package printer

import (
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/techbeamdesigns/invoicer/internal/render"
)

type Printer struct {
	surface *render.PDFSurface
	log     *slog.Logger
}

func New(surface *render.PDFSurface, log *slog.Logger) *Printer {
	return &Printer{surface: surface, log: log}
}

// Invoke materializes the invoice PDF and opens it with the platform
// handler, which presents the print dialog.
func (p *Printer) Invoke() {
	f, err := os.CreateTemp("", "invoice-*.pdf")
	if err != nil {
		p.log.Error("failed to create print file", "error", err)
		return
	}

	if err := p.surface.Output(f); err != nil {
		p.log.Error("failed to write print file", "error", err)
		f.Close()

		return
	}

	if err := f.Close(); err != nil {
		p.log.Error("failed to close print file", "error", err)
		return
	}

	cmd := openCommand(f.Name())
	if err := cmd.Start(); err != nil {
		p.log.Error("failed to hand off to platform", "error", err, "path", f.Name())
		return
	}

	p.log.Info("invoice sent to platform print handler", "path", f.Name())
}

func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
