package shortcuts

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// Service caches shortcut phrases per user and matches utterances against
// them. Matching uses the same normalized substring containment as the
// built-in tables, so a shortcut behaves exactly like a navigation entry with
// higher precedence.
type Service struct {
	repo   *Repository
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[uuid.UUID][]assistant.Shortcut
}

// NewService creates the cached shortcut source.
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		cache:  make(map[uuid.UUID][]assistant.Shortcut),
	}
}

// Lookup reports the first shortcut whose phrase is contained in the
// normalized utterance.
func (s *Service) Lookup(userID uuid.UUID, utterance string) (assistant.Shortcut, bool) {
	normalized := assistant.Normalize(utterance)
	for _, sc := range s.snapshot(userID) {
		phrase := assistant.Normalize(sc.Phrase)
		if phrase != "" && strings.Contains(normalized, phrase) {
			return sc, true
		}
	}
	return assistant.Shortcut{}, false
}

func (s *Service) snapshot(userID uuid.UUID) []assistant.Shortcut {
	s.mu.RLock()
	cached, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	if err := s.RefreshUser(context.Background(), userID); err != nil {
		s.logger.Warn("shortcut load failed",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[userID]
}

// RefreshUser reloads one user's shortcuts from the repository.
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
			s.logger.Warn("shortcut cache refresh failed",
				slog.String("user_id", id.String()),
				slog.Any("err", err),
			)
		}
	}
}
