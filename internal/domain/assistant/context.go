package assistant

// ConversationContext is the read-only snapshot of conversation state plus the
// collaborator lookups a single dispatch call may consult. Implementations
// must not be mutated while a dispatch is in flight; the dispatcher itself
// never writes through this interface.
//
// A nil context, or an implementation that cannot answer one of these calls,
// is a wiring bug in the host application: the dispatcher panics rather than
// degrading silently.
type ConversationContext interface {
	// Language is the conversation language used for table lookups,
	// localized responses and the client-open grammar.
	Language() Language

	// IsMicTest reports whether the onboarding microphone check is active.
	// While set, every utterance is echoed back and nothing else runs.
	IsMicTest() bool

	// AwaitingConfirmation reports whether a yes/no question is pending.
	AwaitingConfirmation() bool

	// CurrentPath is the route the user is looking at.
	CurrentPath() string

	// Clients is the known client list used by the open-client tier.
	Clients() []Client

	// FinancialData is the aggregate snapshot rendered by data queries.
	FinancialData() FinancialSnapshot

	// PageContext describes what the current screen offers, supplied by
	// the shell for the "what can I do here" tier.
	PageContext() string

	// CheckCustomShortcut reports a user-defined shortcut matching the
	// utterance, if any.
	CheckCustomShortcut(utterance string) (Shortcut, bool)

	// CheckLanguageCommand reports the target language if the utterance
	// asks to switch languages.
	CheckLanguageCommand(utterance string) (Language, bool)

	// ProcessConfirmation interprets the utterance as an answer to the
	// pending question. A false second return lets ordinary commands
	// interrupt the confirmation gate.
	ProcessConfirmation(utterance string) (ConfirmationResult, bool)

	// FindTutorial reports a tutorial matching the utterance, if any.
	FindTutorial(utterance string) (Tutorial, bool)
}
