package clients

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// Service keeps a per-user in-memory snapshot of clients so the dispatch
// path never waits on the database. Refresh is driven by the scheduler and
// by cache misses.
type Service struct {
	repo   *Repository
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[uuid.UUID][]assistant.Client
}

// NewService creates the cached directory.
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		cache:  make(map[uuid.UUID][]assistant.Client),
	}
}

// Snapshot returns the cached client list for a user. A miss triggers a
// synchronous load; an empty list is cached too so missing users do not
// hammer the database.
func (s *Service) Snapshot(userID uuid.UUID) []assistant.Client {
	s.mu.RLock()
	cached, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	if err := s.RefreshUser(context.Background(), userID); err != nil {
		s.logger.Warn("client snapshot load failed",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[userID]
}

// RefreshUser reloads one user's clients from the repository.
func (s *Service) RefreshUser(ctx context.Context, userID uuid.UUID) error {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cache[userID] = list
	s.mu.Unlock()
	return nil
}

// RefreshAll reloads every cached user. Called by the scheduler.
func (s *Service) RefreshAll(ctx context.Context) {
	s.mu.RLock()
	ids := make([]uuid.UUID, 0, len(s.cache))
	for id := range s.cache {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		if err := s.RefreshUser(ctx, id); err != nil {
			s.logger.Warn("client cache refresh failed",
				slog.String("user_id", id.String()),
				slog.Any("err", err),
			)
		}
	}
}
