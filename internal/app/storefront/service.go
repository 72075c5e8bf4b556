package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

type Settings struct {
	IdleTTL         time.Duration
	ReapInterval    time.Duration
	AutoClose       time.Duration
	PreparationTick time.Duration
	PublishTimeout  time.Duration
	EventBuffer     int
}

func DefaultSettings() Settings {
	return Settings{
		IdleTTL:         30 * time.Minute,
		ReapInterval:    time.Minute,
		AutoClose:       3 * time.Second,
		PreparationTick: 50 * time.Millisecond,
		PublishTimeout:  5 * time.Second,
		EventBuffer:     256,
	}
}

// Service owns the visitor sessions and forwards their events to the publisher
type Service struct {
	catalogRepo interfaces.CatalogRepository
	publisher   interfaces.EventPublisher
	logger      logger.Logger
	sched       scheduler.Scheduler
	settings    Settings
	now         func() time.Time

	catalog *domain.Catalog

	mu       sync.RWMutex
	sessions map[string]*Session

	eventsMu sync.RWMutex
	events   chan interfaces.StorefrontEvent
	closed   bool
	stop     chan struct{}
	wg       sync.WaitGroup
}

func NewService(
	catalogRepo interfaces.CatalogRepository,
	publisher interfaces.EventPublisher,
	logger logger.Logger,
	sched scheduler.Scheduler,
	settings Settings,
) *Service {
	if sched == nil {
		sched = scheduler.New()
	}
	if settings.EventBuffer <= 0 {
		settings.EventBuffer = DefaultSettings().EventBuffer
	}
	if settings.PublishTimeout <= 0 {
		settings.PublishTimeout = DefaultSettings().PublishTimeout
	}
	return &Service{
		catalogRepo: catalogRepo,
		publisher:   publisher,
		logger:      logger,
		sched:       sched,
		settings:    settings,
		now:         time.Now,
		sessions:    make(map[string]*Session),
		events:      make(chan interfaces.StorefrontEvent, settings.EventBuffer),
		stop:        make(chan struct{}),
	}
}

// Start loads the catalog and runs the event pump and the idle reaper until ctx is done
func (s *Service) Start(ctx context.Context) error {
	drinks := domain.DefaultDrinks()
	if s.catalogRepo != nil {
		var err error
		if drinks, err = s.catalogRepo.ListDrinks(ctx); err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}
	catalog, err := domain.NewCatalog(drinks)
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	s.catalog = catalog
	s.logger.Info("catalog_loaded", fmt.Sprintf("Loaded %d drinks", catalog.Len()), "", nil)

	s.wg.Add(1)
	go s.publishLoop()

	if s.settings.ReapInterval > 0 && s.settings.IdleTTL > 0 {
		s.wg.Add(1)
		go s.reapLoop(ctx)
	}
	return nil
}

func (s *Service) publishLoop() {
	defer s.wg.Done()
	for ev := range s.events {
		if s.publisher == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.settings.PublishTimeout)
		if err := s.publisher.PublishEvent(ctx, ev); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish storefront event", "", map[string]interface{}{
				"type":       ev.Type,
				"session_id": ev.SessionID,
			}, err)
		}
		cancel()
	}
}

func (s *Service) reapLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.settings.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.ReapIdle(s.now()); n > 0 {
				s.logger.Debug("sessions_reaped", fmt.Sprintf("Reaped %d idle sessions", n), "", nil)
			}
		}
	}
}

func (s *Service) emit(ev interfaces.StorefrontEvent) {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
		s.logger.Error("event_dropped", "Event buffer full", "", map[string]interface{}{"type": ev.Type}, nil)
	}
}

// Catalog is nil until Start succeeds
func (s *Service) Catalog() *domain.Catalog {
	return s.catalog
}

func (s *Service) Moods() []domain.Mood {
	return domain.DefaultMoods()
}

func (s *Service) CreateSession(ctx context.Context) *Session {
	id := uuid.NewString()
	sess := NewSession(SessionOptions{
		ID:              id,
		Catalog:         s.catalog,
		Listener:        newEventListener(id, s.emit, s.now),
		Scheduler:       s.sched,
		AutoClose:       s.settings.AutoClose,
		PreparationTick: s.settings.PreparationTick,
		Now:             s.now,
	})

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Debug("session_created", "Session created", logger.RequestID(ctx), map[string]interface{}{"session_id": id})
	return sess
}

func (s *Service) Session(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) DisposeSession(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.Dispose()
	s.logger.Debug("session_disposed", "Session disposed", logger.RequestID(ctx), map[string]interface{}{"session_id": id})
	return nil
}

// ReapIdle disposes sessions untouched for longer than the idle TTL
func (s *Service) ReapIdle(now time.Time) int {
	var idle []*Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.IdleSince()) > s.settings.IdleTTL {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		sess.Dispose()
	}
	return len(idle)
}

func (s *Service) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown disposes every session and drains the event queue
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.Dispose()
	}

	s.eventsMu.Lock()
	if !s.closed {
		s.closed = true
		close(s.events)
		close(s.stop)
	}
	s.eventsMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
