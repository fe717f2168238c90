package assistant

// OutcomeType tags the variant of an Outcome. The set is closed: every
// consumer switching on it must handle all of these plus the unhandled case.
type OutcomeType string

const (
	OutcomeMicTest        OutcomeType = "onboarding-mic-test"
	OutcomeLanguageSwitch OutcomeType = "language-switch"
	OutcomeConfirmation   OutcomeType = "confirmation"
	OutcomeCustomShortcut OutcomeType = "custom-shortcut"
	OutcomeTutorial       OutcomeType = "tutorial"
	OutcomeExpense        OutcomeType = "expense-creation"
	OutcomeIncome         OutcomeType = "income-creation"
	OutcomePageContext    OutcomeType = "page-context"
	OutcomeOpenClient     OutcomeType = "open-client"
	OutcomeNavigation     OutcomeType = "navigation"
	OutcomeDataQuery      OutcomeType = "data-query"
	OutcomeAIFallback     OutcomeType = "ai-fallback"
)

// Outcome is the single result of one dispatch call. Handled is false only
// for empty/whitespace utterances; every handled outcome carries a Type and
// exactly the fields its kind requires.
type Outcome struct {
	Handled bool        `json:"handled"`
	Type    OutcomeType `json:"type,omitempty"`

	// Response is ready-to-display-or-speak text. Empty for tutorial
	// outcomes (multi-step rendering belongs to the shell) and for the
	// fallback before the generative service replies.
	Response string `json:"response,omitempty"`

	// Route targets navigation, custom-shortcut, open-client and the
	// clients-page soft failure of the open-client tier.
	Route  string `json:"route,omitempty"`
	Action string `json:"action,omitempty"`

	TargetLanguage Language `json:"target_language,omitempty"`
	Confirmed      bool     `json:"confirmed,omitempty"`

	Expense  *ParsedExpense `json:"expense,omitempty"`
	Income   *ParsedIncome  `json:"income,omitempty"`
	Client   *Client        `json:"client,omitempty"`
	Tutorial *Tutorial      `json:"tutorial,omitempty"`
	Query    QueryType      `json:"query,omitempty"`
}

func unhandled() Outcome {
	return Outcome{Handled: false}
}
