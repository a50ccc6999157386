// Package session owns the invoice Document for one editing session. All
// mutation flows through it, and every successful mutation synchronously
// re-renders the full preview pipeline, so no surface can observe a
// half-updated state.
package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/render"
)

// Session is the single logical owner of the Document. Mutations never fail
// outward: degenerate input resolves to a defined default, references to
// removed items are silent no-ops.
type Session struct {
	mu       sync.Mutex
	doc      *invoice.Document
	pipeline *render.Pipeline
	log      *slog.Logger
	onRender []func()
}

func New(doc *invoice.Document, pipeline *render.Pipeline, log *slog.Logger) *Session {
	log.Info("editing session started", "session_id", doc.ID)

	return &Session{
		doc:      doc,
		pipeline: pipeline,
		log:      log,
	}
}

// OnRender registers a hook invoked after every render, e.g. to push a
// reload to browser previews. Hooks must not mutate the session.
func (s *Session) OnRender(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRender = append(s.onRender, fn)
}

// Apply executes one field-set command and re-renders.
func (s *Session) Apply(cmd invoice.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Apply(cmd)
	s.render()
}

// AddItem creates a blank line item and re-renders, returning the new id so
// the editor can build its input row.
func (s *Session) AddItem() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.doc.AddItem()
	s.render()

	return item.ID
}

// AddItems bulk-creates items from imported params in one render.
func (s *Session) AddItems(params []invoice.ItemParams) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range params {
		item := s.doc.AddItem()
		item.Description = p.Description
		item.SubDescription = p.SubDescription
		item.Quantity = p.Quantity
		item.UnitPrice = p.UnitPrice
	}

	s.render()

	return len(params)
}

// UpdateItemField routes a field edit into the item with the given id. An
// unknown id mutates nothing and does not render; the row may have been
// removed between the keystroke and this call.
func (s *Session) UpdateItemField(id int, field invoice.ItemField, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.UpdateItemField(id, field, raw) {
		s.log.Debug("edit for missing item ignored", "id", id, "field", field)
		return
	}

	s.render()
}

// RemoveItem deletes the item by id and re-renders. Unknown ids are
// no-ops.
func (s *Session) RemoveItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.RemoveItem(id) {
		s.log.Debug("remove for missing item ignored", "id", id)
		return
	}

	s.render()
}

// Refresh re-renders the current state unchanged. Used for the initial
// render and after presentation-only changes like a theme switch.
func (s *Session) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.render()
}

// Items returns a copy of the current item sequence for editors that
// rebuild their rows after structural changes.
func (s *Session) Items() []invoice.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]invoice.LineItem, len(s.doc.Items))
	copy(items, s.doc.Items)

	return items
}

// ID identifies this editing session.
func (s *Session) ID() uuid.UUID {
	return s.doc.ID
}

// Document exposes the owned document for read-only inspection in tests
// and views. Mutation must go through commands.
func (s *Session) Document() *invoice.Document {
	return s.doc
}

func (s *Session) render() {
	s.pipeline.Render(s.doc)

	for _, fn := range s.onRender {
		fn()
	}
}
