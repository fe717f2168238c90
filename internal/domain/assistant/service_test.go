package assistant

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/echo-assistant/pkg/ai"
)

// fakeState is a minimal ConversationState for service tests.
type fakeState struct {
	language Language
	switchTo *Language
}

func (f *fakeState) Language() Language         { return f.language }
func (f *fakeState) IsMicTest() bool            { return false }
func (f *fakeState) AwaitingConfirmation() bool { return false }
func (f *fakeState) CurrentPath() string        { return RouteDashboard }
func (f *fakeState) SetLanguage(lang Language)  { f.language = lang }

func (f *fakeState) CheckLanguageCommand(string) (Language, bool) {
	if f.switchTo == nil {
		return "", false
	}
	return *f.switchTo, true
}

func (f *fakeState) ProcessConfirmation(string) (ConfirmationResult, bool) {
	return ConfirmationResult{}, false
}

type fakeFinancial struct {
	snapshot FinancialSnapshot
	err      error
}

func (f *fakeFinancial) Snapshot(context.Context, uuid.UUID) (FinancialSnapshot, error) {
	return f.snapshot, f.err
}

type fakeResponder struct {
	reply ai.Reply
	err   error
	calls int
}

func (f *fakeResponder) Complete(context.Context, string, []ai.Message) (ai.Reply, error) {
	f.calls++
	return f.reply, f.err
}

func newTestService(financial FinancialProvider, responder ai.Responder) *Service {
	return NewService(
		NewDispatcher(nil),
		nil, nil, nil,
		financial,
		StaticPages{},
		responder,
		slog.New(slog.DiscardHandler),
	)
}

func TestService_HandleUtterance(t *testing.T) {
	userID := uuid.New()

	t.Run("data query renders from the snapshot", func(t *testing.T) {
		svc := newTestService(&fakeFinancial{
			snapshot: FinancialSnapshot{MonthExpensesCents: 123456},
		}, nil)

		out, err := svc.HandleUtterance(context.Background(), userID, &fakeState{language: LanguageSpanish}, "¿cuánto he gastado?", nil)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDataQuery, out.Type)
		assert.Equal(t, "Este mes has gastado $1.234,56.", out.Response)
	})

	t.Run("snapshot failure degrades to zeros", func(t *testing.T) {
		svc := newTestService(&fakeFinancial{err: errors.New("db down")}, nil)

		out, err := svc.HandleUtterance(context.Background(), userID, &fakeState{language: LanguageSpanish}, "¿cuánto he gastado?", nil)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDataQuery, out.Type)
		assert.Contains(t, out.Response, "$0,00")
	})

	t.Run("language switch is applied to the state", func(t *testing.T) {
		target := LanguageEnglish
		state := &fakeState{language: LanguageSpanish, switchTo: &target}
		svc := newTestService(nil, nil)

		out, err := svc.HandleUtterance(context.Background(), userID, state, "habla en inglés", nil)
		require.NoError(t, err)
		assert.Equal(t, OutcomeLanguageSwitch, out.Type)
		assert.Equal(t, LanguageEnglish, state.Language())
	})

	t.Run("fallback goes through the responder", func(t *testing.T) {
		responder := &fakeResponder{reply: ai.Reply{Text: "Here is a joke."}}
		svc := newTestService(nil, responder)

		out, err := svc.HandleUtterance(context.Background(), userID, &fakeState{language: LanguageEnglish}, "tell me a joke", nil)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAIFallback, out.Type)
		assert.Equal(t, "Here is a joke.", out.Response)
		assert.Equal(t, 1, responder.calls)
	})

	t.Run("responder failure surfaces with the fallback outcome", func(t *testing.T) {
		responder := &fakeResponder{err: errors.New("upstream down")}
		svc := newTestService(nil, responder)

		out, err := svc.HandleUtterance(context.Background(), userID, &fakeState{language: LanguageEnglish}, "tell me a joke", nil)
		require.Error(t, err)
		assert.Equal(t, OutcomeAIFallback, out.Type)
		assert.Empty(t, out.Response)
	})

	t.Run("nil responder leaves the fallback response empty", func(t *testing.T) {
		svc := newTestService(nil, nil)

		out, err := svc.HandleUtterance(context.Background(), userID, &fakeState{language: LanguageEnglish}, "tell me a joke", nil)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAIFallback, out.Type)
		assert.Empty(t, out.Response)
	})

	t.Run("built-in commands never reach the responder", func(t *testing.T) {
		responder := &fakeResponder{reply: ai.Reply{Text: "unused"}}
		svc := newTestService(nil, responder)

		out, err := svc.HandleUtterance(context.Background(), userID, &fakeState{language: LanguageSpanish}, "ir a gastos", nil)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNavigation, out.Type)
		assert.Zero(t, responder.calls)
	})
}
