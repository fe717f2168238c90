// Package session holds the mutable per-conversation state the assistant
// dispatches against: language, mode flags, the pending confirmation gate and
// a short history ring for the generative fallback.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
	"github.com/FACorreiaa/echo-assistant/pkg/ai"
)

// historyLimit caps how many turns are forwarded to the fallback.
const historyLimit = 10

// languageCommands map switch phrasings to the target language. Matching is
// substring containment over normalized text, both languages always active:
// a user stuck in the wrong language must be able to switch out of it.
var languageCommands = []struct {
	patterns []string
	target   assistant.Language
}{
	{[]string{"habla en ingles", "cambia a ingles", "hablame en ingles", "switch to english", "speak english", "in english please"}, assistant.LanguageEnglish},
	{[]string{"habla en espanol", "cambia a espanol", "hablame en espanol", "switch to spanish", "speak spanish", "in spanish please"}, assistant.LanguageSpanish},
}

// Affirmative and negative answer tokens for the confirmation gate, both
// languages. Matched as whole words so "no" does not fire inside "november".
var (
	yesTokens = map[string]struct{}{
		"si": {}, "claro": {}, "confirmo": {}, "dale": {}, "correcto": {}, "afirmativo": {},
		"yes": {}, "yeah": {}, "yep": {}, "confirm": {}, "sure": {}, "ok": {}, "okay": {},
	}
	noTokens = map[string]struct{}{
		"no": {}, "cancela": {}, "cancelar": {}, "negativo": {},
		"nope": {}, "cancel": {}, "nevermind": {},
	}
)

// Session is one user conversation. Safe for concurrent use; the assistant
// contract still expects one utterance in flight per conversation, but a
// racing caller must not corrupt another session.
type Session struct {
	mu sync.RWMutex

	id          string
	language    assistant.Language
	micTest     bool
	currentPath string

	pendingPrompt  string
	awaitingAnswer bool

	history  []ai.Message
	lastSeen time.Time
}

// New creates a session in the given language.
func New(id string, language assistant.Language) *Session {
	if !language.Valid() {
		language = assistant.LanguageSpanish
	}
	return &Session{
		id:          id,
		language:    language,
		currentPath: "/dashboard",
		lastSeen:    time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Language returns the conversation language.
func (s *Session) Language() assistant.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage switches the conversation language.
func (s *Session) SetLanguage(lang assistant.Language) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// IsMicTest reports whether the onboarding microphone check is active.
func (s *Session) IsMicTest() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.micTest
}

// SetMicTest toggles the onboarding microphone check.
func (s *Session) SetMicTest(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.micTest = active
}

// CurrentPath returns the route the user is looking at.
func (s *Session) CurrentPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPath
}

// SetCurrentPath records a route change reported by the shell.
func (s *Session) SetCurrentPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPath = path
}

// AwaitingConfirmation reports whether a yes/no question is pending.
func (s *Session) AwaitingConfirmation() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaitingAnswer
}

// RequestConfirmation arms the confirmation gate with a prompt describing
// what is being confirmed.
func (s *Session) RequestConfirmation(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPrompt = prompt
	s.awaitingAnswer = true
}

// CheckLanguageCommand reports the target language if the utterance asks to
// switch, regardless of the current conversation language.
func (s *Session) CheckLanguageCommand(utterance string) (assistant.Language, bool) {
	normalized := assistant.Normalize(utterance)
	for _, cmd := range languageCommands {
		for _, pattern := range cmd.patterns {
			if strings.Contains(normalized, pattern) {
				return cmd.target, true
			}
		}
	}
	return "", false
}

// ProcessConfirmation interprets the utterance as an answer to the pending
// question. Unrecognized input returns false so ordinary commands can
// interrupt the gate; the gate stays armed in that case.
func (s *Session) ProcessConfirmation(utterance string) (assistant.ConfirmationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.awaitingAnswer {
		return assistant.ConfirmationResult{}, false
	}

	for _, token := range strings.Fields(assistant.Normalize(utterance)) {
		if _, ok := yesTokens[token]; ok {
			s.awaitingAnswer = false
			s.pendingPrompt = ""
			return assistant.ConfirmationResult{Confirmed: true, Message: s.confirmedMessage()}, true
		}
		if _, ok := noTokens[token]; ok {
			s.awaitingAnswer = false
			s.pendingPrompt = ""
			return assistant.ConfirmationResult{Confirmed: false, Message: s.cancelledMessage()}, true
		}
	}
	return assistant.ConfirmationResult{}, false
}

func (s *Session) confirmedMessage() string {
	if s.language == assistant.LanguageSpanish {
		return "Confirmado."
	}
	return "Confirmed."
}

func (s *Session) cancelledMessage() string {
	if s.language == assistant.LanguageSpanish {
		return "Cancelado."
	}
	return "Cancelled."
}

// AppendHistory records one turn for the fallback, trimming to the ring size.
func (s *Session) AppendHistory(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, ai.Message{Role: role, Content: content})
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}
	s.lastSeen = time.Now()
}

// History returns a copy of the recorded turns.
func (s *Session) History() []ai.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ai.Message, len(s.history))
	copy(out, s.history)
	return out
}

// LastSeen returns when the session last recorded activity.
func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}
