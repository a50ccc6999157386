package preview_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/money"
	"github.com/techbeamdesigns/invoicer/internal/preview"
	"github.com/techbeamdesigns/invoicer/internal/render"
)

func newRenderedSurface(t *testing.T) *preview.HTMLSurface {
	t.Helper()

	doc := invoice.NewDocument(invoice.Defaults{
		Currency:       "USD",
		TaxRatePercent: 10,
		UPIID:          "jabir84@fifederal",
		QRImage:        "qr-code.jpg",
		Notes:          "Payment due within 14 days.",
	})
	doc.Apply(invoice.SetPartyName{Role: invoice.RoleClient, Value: "Acme Corp"})

	surface := preview.NewHTMLSurface("classic")
	render.NewPipeline(money.NewFormatter("en-US"), surface).Render(doc)

	return surface
}

func newTestServer(t *testing.T, printFn func()) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := preview.NewServer(newRenderedSurface(t), printFn, logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return ts
}

func TestHandlePage_ServesRenderedInvoice(t *testing.T) {
	ts := newTestServer(t, func() {})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, "INV-001")
	assert.Contains(t, page, "Acme Corp")
	assert.Contains(t, page, "Web Design Project")
	assert.Contains(t, page, "jabir84@fifederal")
}

func TestHandlePage_EmptyUPIStillRendersField(t *testing.T) {
	doc := invoice.NewDocument(invoice.Defaults{
		Currency:       "USD",
		TaxRatePercent: 10,
		QRImage:        "qr-code.jpg",
	})
	require.Empty(t, doc.Payment.UPIID)

	surface := preview.NewHTMLSurface("classic")
	render.NewPipeline(money.NewFormatter("en-US"), surface).Render(doc)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := preview.NewServer(surface, func() {}, logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Non-party scalar fields show their raw value, empty included; the
	// element never disappears.
	assert.Contains(t, string(body), `<span class="upi"></span>`)
}

func TestHandlePrint_InvokesPrintCapability(t *testing.T) {
	printed := make(chan struct{}, 1)
	ts := newTestServer(t, func() { printed <- struct{}{} })

	resp, err := http.Post(ts.URL+"/print", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	select {
	case <-printed:
	default:
		t.Fatal("print capability was not invoked")
	}
}

func TestNotifyReload_PushesToConnectedClients(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := preview.NewServer(newRenderedSurface(t), func() {}, logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// The handshake response can arrive before the server registers the
	// connection; give registration a moment.
	time.Sleep(100 * time.Millisecond)

	srv.NotifyReload()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	msgType, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.Equal(t, "reload", string(msg))
}
