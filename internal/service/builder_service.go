package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/seed"
	"landing-builder-backend/pkg/logger"
)

const (
	defaultSessionTTL    = time.Hour
	defaultSweepInterval = time.Minute
)

var ErrSessionNotFound = errors.New("builder session not found")

type BuilderConfig struct {
	SessionTTL      time.Duration
	SweepInterval   time.Duration
	DefaultTemplate string
}

// EditorView is the state of the section editor open in a session.
type EditorView struct {
	SectionID string           `json:"sectionId"`
	Draft     models.Section   `json:"draft"`
	Ruleset   sections.Ruleset `json:"ruleset"`
	Tabs      []sections.Tab   `json:"tabs"`
}

// SessionView is the snapshot of a session returned after every operation.
type SessionView struct {
	ID       string              `json:"sessionId"`
	PageID   *uint               `json:"pageId"`
	Dirty    bool                `json:"dirty"`
	Document models.PageDocument `json:"document"`
	Sections []models.Section    `json:"sections"`
	Editor   *EditorView         `json:"editor,omitempty"`
	BulkEdit *builder.BulkEdit   `json:"bulkEdit,omitempty"`
	Notice   *Notice             `json:"notice,omitempty"`
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *builder.Session
	lastUsed atomic.Int64
}

func (e *sessionEntry) touch(now time.Time) {
	e.lastUsed.Store(now.UnixNano())
}

// BuilderService keeps the open builder sessions. Each session is guarded by
// its own mutex so operations on one document are applied one at a time.
type BuilderService struct {
	store    PageStore
	catalog  *seed.Catalog
	notifier Notifier
	config   BuilderConfig
	newIDs   func() builder.IDAllocator
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	sweeperWG sync.WaitGroup
}

func NewBuilderService(store PageStore, catalog *seed.Catalog, notifier Notifier, cfg BuilderConfig) *BuilderService {
	initMetrics()

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &BuilderService{
		store:    store,
		catalog:  catalog,
		notifier: notifier,
		config:   cfg,
		newIDs:   func() builder.IDAllocator { return builder.UUIDAllocator{} },
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Templates lists the page templates a new session can start from.
func (s *BuilderService) Templates() []seed.Template {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Templates()
}

// Open starts a session on a stored page, or on a new document built from a
// template when req.PageID is nil.
func (s *BuilderService) Open(ctx context.Context, req models.OpenSessionRequest) (SessionView, error) {
	var (
		doc    models.PageDocument
		pageID *uint
		notice *Notice
	)

	if req.PageID != nil {
		loaded, err := s.store.LoadPage(ctx, *req.PageID)
		if err != nil {
			s.notifier.Notify(ctx, errorNotice(fmt.Sprintf("Failed to load page: %v", err)))
			return SessionView{}, err
		}
		loadedNotice := successNotice("Page loaded")
		s.notifier.Notify(ctx, loadedNotice)
		doc, pageID, notice = loaded, req.PageID, &loadedNotice
	} else {
		templateID := req.Template
		if templateID == "" {
			templateID = s.config.DefaultTemplate
		}
		if s.catalog == nil {
			return SessionView{}, fmt.Errorf("%w: %s", seed.ErrTemplateNotFound, templateID)
		}
		created, err := s.catalog.NewDocument(templateID, s.newIDs())
		if err != nil {
			return SessionView{}, err
		}
		doc = created
	}

	id := uuid.NewString()
	entry := &sessionEntry{session: builder.NewSession(pageID, doc, s.newIDs())}
	entry.touch(s.now())

	s.mu.Lock()
	s.sessions[id] = entry
	builderSessionsActive.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	logger.FromContext(ctx).WithField("session_id", id).Debug("Builder session opened")

	view := viewOf(id, entry.session)
	view.Notice = notice
	return view, nil
}

func (s *BuilderService) lookup(id string) (*sessionEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// Get returns the current state of a session.
func (s *BuilderService) Get(id string) (SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch(s.now())
	return viewOf(id, entry.session), nil
}

// Mutate runs fn against the session document. operation names the change in
// metrics.
func (s *BuilderService) Mutate(id, operation string, fn func(*builder.Session)) (SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	fn(entry.session)
	entry.touch(s.now())
	builderMutationsTotal.WithLabelValues(operation).Inc()
	return viewOf(id, entry.session), nil
}

// Preview renders the session document as HTML.
func (s *BuilderService) Preview(id string) (template.HTML, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return "", err
	}
	entry.mu.Lock()
	doc := entry.session.Document()
	entry.touch(s.now())
	entry.mu.Unlock()

	return sections.RenderPage(nil, doc), nil
}

// Save writes the session document to the store. On failure the session keeps
// its draft and stays dirty.
func (s *BuilderService) Save(ctx context.Context, id string) (SessionView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch(s.now())

	savedID, saved, err := s.store.SavePage(ctx, entry.session.PageID(), entry.session.Document())
	if err != nil {
		notice := errorNotice(fmt.Sprintf("Failed to save page: %v", err))
		s.notifier.Notify(ctx, notice)
		view := viewOf(id, entry.session)
		view.Notice = &notice
		return view, err
	}

	entry.session.MarkSaved(savedID, saved)
	notice := successNotice("Page saved")
	s.notifier.Notify(ctx, notice)

	view := viewOf(id, entry.session)
	view.Notice = &notice
	return view, nil
}

// Close discards a session and its unsaved changes.
func (s *BuilderService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	builderSessionsActive.Set(float64(len(s.sessions)))
	return nil
}

// Len reports the number of open sessions.
func (s *BuilderService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep closes the sessions idle for longer than the session TTL and returns
// how many it closed.
func (s *BuilderService) Sweep() int {
	cutoff := s.now().Add(-s.config.SessionTTL).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()

	closed := 0
	for id, entry := range s.sessions {
		if entry.lastUsed.Load() < cutoff {
			delete(s.sessions, id)
			closed++
		}
	}
	if closed > 0 {
		builderSessionsActive.Set(float64(len(s.sessions)))
		logger.Info("Closed idle builder sessions", map[string]interface{}{"closed": closed, "open": len(s.sessions)})
	}
	return closed
}

// StartSweeper runs Sweep on an interval until ctx is cancelled.
func (s *BuilderService) StartSweeper(ctx context.Context) {
	s.sweeperWG.Add(1)
	go func() {
		defer s.sweeperWG.Done()

		ticker := time.NewTicker(s.config.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Wait blocks until a sweeper started with StartSweeper has stopped.
func (s *BuilderService) Wait() {
	s.sweeperWG.Wait()
}

func viewOf(id string, session *builder.Session) SessionView {
	doc := session.Document()
	view := SessionView{
		ID:       id,
		PageID:   session.PageID(),
		Dirty:    session.Dirty(),
		Document: doc,
		Sections: builder.SortedForRender(doc.Content.Sections),
	}
	if editor, ok := session.Editor(); ok {
		view.Editor = &EditorView{
			SectionID: editor.SectionID(),
			Draft:     editor.Draft(),
			Ruleset:   editor.Ruleset(),
			Tabs:      editor.Tabs(),
		}
	}
	if edit, ok := session.Bulk().Editing(); ok {
		view.BulkEdit = &edit
	}
	return view
}
