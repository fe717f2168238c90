package assistant

import (
	"fmt"
	"strings"
)

// micTestEchoLimit caps how much of the utterance is echoed back during the
// onboarding microphone check.
const micTestEchoLimit = 60

// pageContextPhrases are the bilingual "what can I do here" phrasings.
// Both languages are checked regardless of the conversation language, same
// as the structured parsers.
var pageContextPhrases = []string{
	"que puedo hacer aqui",
	"que puedo hacer en esta pagina",
	"que se puede hacer aqui",
	"donde estoy",
	"ayuda en esta pagina",
	"what can i do here",
	"what can i do on this page",
	"where am i",
	"help on this page",
	"what is this page",
}

// Dispatcher is the ordered decision chain. It is pure and stateless: one
// utterance plus one context in, exactly one Outcome out, no I/O and no
// mutation of caller state. Safe for concurrent use.
type Dispatcher struct {
	expenses  *ExpenseParser
	incomes   *IncomeParser
	formatter *Formatter
}

// NewDispatcher wires the parsers and formatter. A nil formatter gets the
// default locale pairings.
func NewDispatcher(formatter *Formatter) *Dispatcher {
	if formatter == nil {
		formatter = NewFormatter(nil)
	}
	return &Dispatcher{
		expenses:  NewExpenseParser(),
		incomes:   NewIncomeParser(),
		formatter: formatter,
	}
}

// Dispatch classifies one utterance through the priority chain. Tiers run in
// strict order and the first to claim the utterance wins; the AI fallback at
// the bottom guarantees a handled outcome for every non-empty utterance.
//
// Panics on a nil context: that is a wiring bug in the host, not a runtime
// condition to recover from.
func (d *Dispatcher) Dispatch(utterance string, ctx ConversationContext) Outcome {
	if ctx == nil {
		panic("assistant: Dispatch called with nil context")
	}

	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return unhandled()
	}

	lang := ctx.Language()
	if !lang.Valid() {
		lang = LanguageSpanish
	}

	// 1. Mic-test mode absorbs everything: the user is verifying capture,
	// nothing may be reinterpreted as a real command.
	if ctx.IsMicTest() {
		return Outcome{
			Handled:  true,
			Type:     OutcomeMicTest,
			Response: d.micTestEcho(trimmed, lang),
		}
	}

	// 2. Language switch.
	if target, ok := ctx.CheckLanguageCommand(trimmed); ok {
		return Outcome{
			Handled:        true,
			Type:           OutcomeLanguageSwitch,
			TargetLanguage: target,
			Response:       languageSwitchMessage(target),
		}
	}

	// 3. Pending confirmation. An unrecognized answer falls through so
	// ordinary commands can interrupt the gate.
	if ctx.AwaitingConfirmation() {
		if result, ok := ctx.ProcessConfirmation(trimmed); ok {
			return Outcome{
				Handled:   true,
				Type:      OutcomeConfirmation,
				Confirmed: result.Confirmed,
				Response:  result.Message,
			}
		}
	}

	// 4. Custom shortcut: user-defined phrases override built-ins.
	if shortcut, ok := ctx.CheckCustomShortcut(trimmed); ok && shortcut.Route != "" {
		return Outcome{
			Handled:  true,
			Type:     OutcomeCustomShortcut,
			Route:    shortcut.Route,
			Response: navigationMessage(shortcut.Name, lang),
		}
	}

	// 5. Tutorial request. Response text stays empty: rendering the steps
	// needs multi-turn state the dispatcher does not own.
	if tutorial, ok := ctx.FindTutorial(trimmed); ok {
		t := tutorial
		return Outcome{Handled: true, Type: OutcomeTutorial, Tutorial: &t}
	}

	// 6. Expense creation. Mutations come before read-only queries so
	// "I spent 50 on Uber" is never misread as a balance question.
	if expense := d.expenses.Parse(trimmed); expense != nil {
		return Outcome{
			Handled:  true,
			Type:     OutcomeExpense,
			Expense:  expense,
			Response: expenseMessage(expense, lang),
		}
	}

	// 7. Income creation.
	if income := d.incomes.Parse(trimmed); income != nil {
		return Outcome{
			Handled:  true,
			Type:     OutcomeIncome,
			Income:   income,
			Response: incomeMessage(income, lang),
		}
	}

	// 8. Page-context query.
	if matchesPageContext(trimmed) {
		return Outcome{
			Handled:  true,
			Type:     OutcomePageContext,
			Route:    ctx.CurrentPath(),
			Response: pageContextMessage(ctx.PageContext(), lang),
		}
	}

	// 9. Open client by name. Falling short of a resolution is a soft
	// failure pointed at the clients page, not an error.
	if candidate, ok := ParseClientOpen(trimmed, lang); ok {
		if clients := ctx.Clients(); len(clients) > 0 {
			if client, found := ResolveClient(candidate, clients); found {
				c := client
				return Outcome{
					Handled:  true,
					Type:     OutcomeOpenClient,
					Client:   &c,
					Route:    RouteClients + "/" + c.ID.String(),
					Response: openClientMessage(c.Name, lang),
				}
			}
			return Outcome{
				Handled:  true,
				Type:     OutcomePageContext,
				Route:    RouteClients,
				Response: clientNotFoundMessage(candidate, lang),
			}
		}
	}

	// 10. Navigation table.
	if nav, ok := MatchNavigation(trimmed, lang); ok {
		return Outcome{
			Handled:  true,
			Type:     OutcomeNavigation,
			Route:    nav.Route,
			Action:   nav.Action,
			Response: navigationMessage(nav.Name, lang),
		}
	}

	// 11. Data query.
	if query, ok := MatchQuery(trimmed, lang); ok {
		return Outcome{
			Handled:  true,
			Type:     OutcomeDataQuery,
			Query:    query,
			Response: d.formatter.Format(query, ctx.FinancialData(), lang),
		}
	}

	// 12. Everything else goes to the generative fallback. This tier cannot
	// fail: it is the totality guarantee of the chain.
	return Outcome{Handled: true, Type: OutcomeAIFallback}
}

func (d *Dispatcher) micTestEcho(utterance string, lang Language) string {
	echo := utterance
	if runes := []rune(echo); len(runes) > micTestEchoLimit {
		echo = string(runes[:micTestEchoLimit])
	}
	if lang == LanguageSpanish {
		return fmt.Sprintf("¡Te escucho! Dijiste: \"%s\"", echo)
	}
	return fmt.Sprintf("I can hear you! You said: \"%s\"", echo)
}

func matchesPageContext(utterance string) bool {
	normalized := Normalize(utterance)
	for _, phrase := range pageContextPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

func languageSwitchMessage(target Language) string {
	if target == LanguageSpanish {
		return "Listo, ahora hablamos en español."
	}
	return "Done, switching to English."
}

func navigationMessage(name string, lang Language) string {
	if lang == LanguageSpanish {
		return fmt.Sprintf("Te llevo a %s.", name)
	}
	return fmt.Sprintf("Taking you to %s.", name)
}

func openClientMessage(name string, lang Language) string {
	if lang == LanguageSpanish {
		return fmt.Sprintf("Abriendo el cliente %s.", name)
	}
	return fmt.Sprintf("Opening client %s.", name)
}

func clientNotFoundMessage(candidate string, lang Language) string {
	if lang == LanguageSpanish {
		return fmt.Sprintf("No encontré un cliente llamado \"%s\". Aquí está tu lista de clientes.", candidate)
	}
	return fmt.Sprintf("I could not find a client named \"%s\". Here is your client list.", candidate)
}

func pageContextMessage(pageContext string, lang Language) string {
	hint := " You can also ask me to create expenses or navigate anywhere."
	if lang == LanguageSpanish {
		hint = " También puedes pedirme crear gastos o navegar a cualquier sección."
	}
	return pageContext + hint
}

func expenseMessage(e *ParsedExpense, lang Language) string {
	if lang == LanguageSpanish {
		return fmt.Sprintf("Anotado: %s en %s.", e.Amount.String(), e.Vendor)
	}
	return fmt.Sprintf("Got it: %s at %s.", e.Amount.String(), e.Vendor)
}

func incomeMessage(i *ParsedIncome, lang Language) string {
	if lang == LanguageSpanish {
		if i.Source == "" {
			return fmt.Sprintf("Ingreso registrado: %s.", i.Amount.String())
		}
		return fmt.Sprintf("Ingreso registrado: %s de %s.", i.Amount.String(), i.Source)
	}
	if i.Source == "" {
		return fmt.Sprintf("Income recorded: %s.", i.Amount.String())
	}
	return fmt.Sprintf("Income recorded: %s from %s.", i.Amount.String(), i.Source)
}
