package requisition

import (
	"context"
	"sync"
	"time"

	"substock/internal/core/apperror"
	"substock/internal/core/id"
	"substock/internal/core/types"
	"substock/internal/domain/inventory"
	"substock/internal/domain/settings"
	"substock/pkg/docnum"
	"substock/pkg/logger"
)

// InventorySource supplies the current derived inventory state.
type InventorySource interface {
	Items() []inventory.Item
}

// SettingsSource supplies the requester roster.
type SettingsSource interface {
	Snapshot(ctx context.Context) (settings.Snapshot, error)
}

// Service manages requisition sessions. Each session owns one Editor;
// sessions live in memory only and are discarded on restart or abandonment,
// and consumed on finalization.
type Service struct {
	inventory InventorySource
	settings  SettingsSource
	numbers   docnum.Generator

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	id        string
	docID     string
	editor    *Editor
	createdAt time.Time
}

// NewService creates the requisition service.
func NewService(inv InventorySource, cfg SettingsSource, numbers docnum.Generator) *Service {
	return &Service{
		inventory: inv,
		settings:  cfg,
		numbers:   numbers,
		sessions:  make(map[string]*session),
	}
}

// Session is the API view of a working session.
type Session struct {
	ID            string      `json:"id"`
	DocID         string      `json:"docId"`
	Lines         []Item      `json:"lines"`
	SelectedTotal types.Money `json:"selectedTotal"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Create forecasts the current inventory state into a new session.
func (s *Service) Create(ctx context.Context) Session {
	now := time.Now()
	sess := &session{
		id:        id.New().String(),
		docID:     s.numbers.Next(now),
		editor:    NewEditor(Forecast(s.inventory.Items())),
		createdAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	logger.Info(ctx, "requisition session created",
		"session_id", sess.id,
		"doc_id", sess.docID,
		"lines", len(sess.editor.lines),
	)

	return s.view(sess)
}

// Get returns the current state of a session.
func (s *Service) Get(ctx context.Context, sessionID string) (Session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}
	return s.view(sess), nil
}

// SetManualOrder edits one line of the session.
func (s *Service) SetManualOrder(ctx context.Context, sessionID, code, lotNo string, qty int64) (Session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	sess.editor.SetManualOrder(code, lotNo, qty)
	s.mu.Unlock()

	return s.view(sess), nil
}

// ApplySuggestion bulk-fills every line from a suggestion column.
func (s *Service) ApplySuggestion(ctx context.Context, sessionID string, m Multiplier) (Session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	err = sess.editor.ApplySuggestion(m)
	s.mu.Unlock()
	if err != nil {
		return Session{}, err
	}

	return s.view(sess), nil
}

// ToggleSelected flips one line's selection.
func (s *Service) ToggleSelected(ctx context.Context, sessionID, code, lotNo string) (Session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	sess.editor.ToggleSelected(code, lotNo)
	s.mu.Unlock()

	return s.view(sess), nil
}

// SelectAll sets selection uniformly.
func (s *Service) SelectAll(ctx context.Context, sessionID string, flag bool) (Session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	sess.editor.SelectAll(flag)
	s.mu.Unlock()

	return s.view(sess), nil
}

// Finalize resolves the requester, produces the immutable document and ends
// the session. Guard violations (empty selection, unknown requester) leave
// the session intact.
func (s *Service) Finalize(ctx context.Context, sessionID, requesterID string) (Document, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return Document{}, err
	}

	snap, err := s.settings.Snapshot(ctx)
	if err != nil {
		return Document{}, err
	}
	requester, ok := snap.RequesterByID(requesterID)
	if !ok {
		return Document{}, apperror.NewBusinessRule(apperror.CodeNoRequester,
			"a requester must be chosen before finalizing").
			WithDetail("requester_id", requesterID)
	}

	s.mu.Lock()
	doc, err := sess.editor.Finalize(requester.Name, sess.docID, time.Now())
	if err == nil {
		delete(s.sessions, sess.id)
	}
	s.mu.Unlock()
	if err != nil {
		return Document{}, err
	}

	logger.Info(ctx, "requisition finalized",
		"session_id", sess.id,
		"doc_id", doc.DocID,
		"lines", len(doc.Lines),
		"requester", doc.Requester,
	)

	return doc, nil
}

// Abandon discards a session without side effects.
func (s *Service) Abandon(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !exists {
		return apperror.NewNotFound("requisition session", sessionID)
	}

	logger.Info(ctx, "requisition session abandoned", "session_id", sessionID)
	return nil
}

func (s *Service) lookup(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperror.NewNotFound("requisition session", sessionID)
	}
	return sess, nil
}

func (s *Service) view(sess *session) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{
		ID:            sess.id,
		DocID:         sess.docID,
		Lines:         sess.editor.Lines(),
		SelectedTotal: sess.editor.SelectedTotal(),
		CreatedAt:     sess.createdAt,
	}
}
