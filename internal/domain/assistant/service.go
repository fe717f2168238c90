package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/echo-assistant/pkg/ai"
)

// ConversationState is the mutable per-conversation half of the dispatch
// context: language, mode flags and the confirmation gate. The session
// package provides the standard implementation.
type ConversationState interface {
	Language() Language
	IsMicTest() bool
	AwaitingConfirmation() bool
	CurrentPath() string
	CheckLanguageCommand(utterance string) (Language, bool)
	ProcessConfirmation(utterance string) (ConfirmationResult, bool)
	SetLanguage(lang Language)
}

// ClientDirectory supplies the known client list for one user.
type ClientDirectory interface {
	Snapshot(userID uuid.UUID) []Client
}

// ShortcutSource looks up user-defined shortcut phrases.
type ShortcutSource interface {
	Lookup(userID uuid.UUID, utterance string) (Shortcut, bool)
}

// TutorialSource finds a tutorial matching an utterance.
type TutorialSource interface {
	Find(utterance string, lang Language) (Tutorial, bool)
}

// FinancialProvider supplies the aggregate snapshot data queries render.
// Backed by the remote finance database outside this service.
type FinancialProvider interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (FinancialSnapshot, error)
}

// PageContextSource describes what the current screen offers.
type PageContextSource interface {
	Describe(path string, lang Language) string
}

// Service is the server-side shell around the dispatcher: it assembles the
// conversation context from the session and collaborators, classifies the
// utterance, records telemetry, applies the language switch, and forwards
// fallback utterances to the generative responder.
type Service struct {
	dispatcher *Dispatcher
	clients    ClientDirectory
	shortcuts  ShortcutSource
	tutorials  TutorialSource
	financial  FinancialProvider
	pages      PageContextSource
	responder  ai.Responder
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewService wires the service. Responder may be nil: fallback outcomes are
// then returned without a response for the caller to forward itself.
func NewService(
	dispatcher *Dispatcher,
	clients ClientDirectory,
	shortcuts ShortcutSource,
	tutorials TutorialSource,
	financial FinancialProvider,
	pages PageContextSource,
	responder ai.Responder,
	logger *slog.Logger,
) *Service {
	if dispatcher == nil {
		dispatcher = NewDispatcher(nil)
	}
	return &Service{
		dispatcher: dispatcher,
		clients:    clients,
		shortcuts:  shortcuts,
		tutorials:  tutorials,
		financial:  financial,
		pages:      pages,
		responder:  responder,
		logger:     logger,
		tracer:     otel.Tracer("assistant"),
	}
}

// conversationContext adapts session state plus collaborators into the
// read-only snapshot the dispatcher consumes.
type conversationContext struct {
	state     ConversationState
	userID    uuid.UUID
	clients   ClientDirectory
	shortcuts ShortcutSource
	tutorials TutorialSource
	pages     PageContextSource
	financial FinancialSnapshot
}

func (c *conversationContext) Language() Language          { return c.state.Language() }
func (c *conversationContext) IsMicTest() bool             { return c.state.IsMicTest() }
func (c *conversationContext) AwaitingConfirmation() bool  { return c.state.AwaitingConfirmation() }
func (c *conversationContext) CurrentPath() string         { return c.state.CurrentPath() }
func (c *conversationContext) FinancialData() FinancialSnapshot { return c.financial }

func (c *conversationContext) Clients() []Client {
	if c.clients == nil {
		return nil
	}
	return c.clients.Snapshot(c.userID)
}

func (c *conversationContext) PageContext() string {
	if c.pages == nil {
		return ""
	}
	return c.pages.Describe(c.state.CurrentPath(), c.state.Language())
}

func (c *conversationContext) CheckCustomShortcut(utterance string) (Shortcut, bool) {
	if c.shortcuts == nil {
		return Shortcut{}, false
	}
	return c.shortcuts.Lookup(c.userID, utterance)
}

func (c *conversationContext) CheckLanguageCommand(utterance string) (Language, bool) {
	return c.state.CheckLanguageCommand(utterance)
}

func (c *conversationContext) ProcessConfirmation(utterance string) (ConfirmationResult, bool) {
	return c.state.ProcessConfirmation(utterance)
}

func (c *conversationContext) FindTutorial(utterance string) (Tutorial, bool) {
	if c.tutorials == nil {
		return Tutorial{}, false
	}
	return c.tutorials.Find(utterance, c.state.Language())
}

// HandleUtterance runs one conversation turn end to end.
func (s *Service) HandleUtterance(ctx context.Context, userID uuid.UUID, state ConversationState, utterance string, history []ai.Message) (Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "assistant.HandleUtterance")
	defer span.End()

	started := time.Now()

	var snapshot FinancialSnapshot
	if s.financial != nil {
		snap, err := s.financial.Snapshot(ctx, userID)
		if err != nil {
			// Queries degrade to zeros rather than blocking the whole turn.
			s.logger.Warn("financial snapshot unavailable", slog.Any("err", err))
		} else {
			snapshot = snap
		}
	}

	convCtx := &conversationContext{
		state:     state,
		userID:    userID,
		clients:   s.clients,
		shortcuts: s.shortcuts,
		tutorials: s.tutorials,
		pages:     s.pages,
		financial: snapshot,
	}

	outcome := s.dispatcher.Dispatch(utterance, convCtx)

	if outcome.Handled {
		dispatchTotal.WithLabelValues(string(outcome.Type), string(state.Language())).Inc()
		span.SetAttributes(attribute.String("assistant.outcome", string(outcome.Type)))
	}

	if outcome.Type == OutcomeLanguageSwitch {
		state.SetLanguage(outcome.TargetLanguage)
	}

	if outcome.Type == OutcomeAIFallback && s.responder != nil {
		reply, err := s.responder.Complete(ctx, utterance, history)
		if err != nil {
			fallbackErrors.Inc()
			s.logger.Error("fallback completion failed", slog.Any("err", err))
			dispatchDuration.WithLabelValues(string(outcome.Type)).Observe(time.Since(started).Seconds())
			return outcome, err
		}
		outcome.Response = reply.Text
		outcome.Action = reply.Action
	}

	if outcome.Handled {
		dispatchDuration.WithLabelValues(string(outcome.Type)).Observe(time.Since(started).Seconds())
	}

	s.logger.Debug("utterance dispatched",
		slog.String("outcome", string(outcome.Type)),
		slog.String("language", string(state.Language())),
		slog.Bool("handled", outcome.Handled),
	)

	return outcome, nil
}
