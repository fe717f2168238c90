package assistant

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext is a fully scriptable ConversationContext for dispatcher tests.
type fakeContext struct {
	language      Language
	micTest       bool
	awaiting      bool
	currentPath   string
	clients       []Client
	financial     FinancialSnapshot
	pageContext   string
	shortcut      *Shortcut
	languageCmd   *Language
	confirmation  *ConfirmationResult
	tutorial      *Tutorial
}

func (f *fakeContext) Language() Language              { return f.language }
func (f *fakeContext) IsMicTest() bool                 { return f.micTest }
func (f *fakeContext) AwaitingConfirmation() bool      { return f.awaiting }
func (f *fakeContext) CurrentPath() string             { return f.currentPath }
func (f *fakeContext) Clients() []Client               { return f.clients }
func (f *fakeContext) FinancialData() FinancialSnapshot { return f.financial }
func (f *fakeContext) PageContext() string             { return f.pageContext }

func (f *fakeContext) CheckCustomShortcut(string) (Shortcut, bool) {
	if f.shortcut == nil {
		return Shortcut{}, false
	}
	return *f.shortcut, true
}

func (f *fakeContext) CheckLanguageCommand(string) (Language, bool) {
	if f.languageCmd == nil {
		return "", false
	}
	return *f.languageCmd, true
}

func (f *fakeContext) ProcessConfirmation(string) (ConfirmationResult, bool) {
	if f.confirmation == nil {
		return ConfirmationResult{}, false
	}
	return *f.confirmation, true
}

func (f *fakeContext) FindTutorial(string) (Tutorial, bool) {
	if f.tutorial == nil {
		return Tutorial{}, false
	}
	return *f.tutorial, true
}

func spanishContext() *fakeContext {
	return &fakeContext{
		language:    LanguageSpanish,
		currentPath: RouteDashboard,
		pageContext: "Estás en el panel principal.",
	}
}

func TestDispatcher_EmptyUtterance(t *testing.T) {
	d := NewDispatcher(nil)

	for _, utterance := range []string{"", "   ", "\t\n"} {
		out := d.Dispatch(utterance, spanishContext())
		assert.False(t, out.Handled)
		assert.Empty(t, out.Type)
	}
}

func TestDispatcher_NilContextPanics(t *testing.T) {
	d := NewDispatcher(nil)
	assert.Panics(t, func() { d.Dispatch("hola", nil) })
}

func TestDispatcher_MicTestAbsorbsEverything(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.micTest = true
	target := LanguageEnglish
	ctx.languageCmd = &target // would otherwise be a language switch

	out := d.Dispatch("habla en inglés", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeMicTest, out.Type)
	assert.Contains(t, out.Response, "Te escucho")
	assert.Contains(t, out.Response, "habla en inglés")
}

func TestDispatcher_MicTestEchoTruncation(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.micTest = true
	ctx.language = LanguageEnglish

	long := strings.Repeat("a", 100)
	out := d.Dispatch(long, ctx)
	require.True(t, out.Handled)
	assert.Contains(t, out.Response, strings.Repeat("a", 60))
	assert.NotContains(t, out.Response, strings.Repeat("a", 61))
}

func TestDispatcher_LanguageSwitch(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	target := LanguageEnglish
	ctx.languageCmd = &target

	out := d.Dispatch("habla en inglés", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeLanguageSwitch, out.Type)
	assert.Equal(t, LanguageEnglish, out.TargetLanguage)
}

func TestDispatcher_Confirmation(t *testing.T) {
	d := NewDispatcher(nil)

	t.Run("recognized answer resolves the gate", func(t *testing.T) {
		ctx := spanishContext()
		ctx.awaiting = true
		ctx.confirmation = &ConfirmationResult{Confirmed: true, Message: "Confirmado."}

		out := d.Dispatch("sí", ctx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomeConfirmation, out.Type)
		assert.True(t, out.Confirmed)
		assert.Equal(t, "Confirmado.", out.Response)
	})

	t.Run("unrecognized answer falls through to later tiers", func(t *testing.T) {
		ctx := spanishContext()
		ctx.awaiting = true
		ctx.confirmation = nil // session did not recognize a yes/no

		out := d.Dispatch("ir a gastos", ctx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomeNavigation, out.Type)
		assert.Equal(t, RouteExpenses, out.Route)
	})
}

func TestDispatcher_ShortcutBeatsNavigation(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.shortcut = &Shortcut{
		ID:     uuid.New(),
		Phrase: "gastos",
		Route:  RouteReports,
		Name:   "mis reportes",
	}

	// "ir a gastos" would hit the navigation table, but the user's own
	// phrase takes precedence.
	out := d.Dispatch("ir a gastos", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeCustomShortcut, out.Type)
	assert.Equal(t, RouteReports, out.Route)
}

func TestDispatcher_Tutorial(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.tutorial = &Tutorial{ID: "es-create-expense", Title: "Registrar un gasto", Language: LanguageSpanish}

	out := d.Dispatch("cómo registro un gasto", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeTutorial, out.Type)
	require.NotNil(t, out.Tutorial)
	assert.Equal(t, "es-create-expense", out.Tutorial.ID)
	assert.Empty(t, out.Response, "step rendering belongs to the shell")
}

func TestDispatcher_ExpenseBeforeQueries(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()

	out := d.Dispatch("gasto de 50 en restaurante", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeExpense, out.Type)
	require.NotNil(t, out.Expense)
	assert.Equal(t, CategoryMeals, out.Expense.Category)
	assert.Equal(t, "Restaurante", out.Expense.Vendor)
	assert.Contains(t, out.Response, "Restaurante")
}

func TestDispatcher_Income(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()

	out := d.Dispatch("recibí 1000 del cliente Acme", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeIncome, out.Type)
	require.NotNil(t, out.Income)
	assert.Equal(t, IncomeClientPayment, out.Income.IncomeType)
}

func TestDispatcher_PageContext(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.currentPath = RouteExpenses
	ctx.pageContext = "Estás en gastos."

	t.Run("accent insensitive match", func(t *testing.T) {
		out := d.Dispatch("¿Qué puedo hacer aquí?", ctx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomePageContext, out.Type)
		assert.Equal(t, RouteExpenses, out.Route)
		assert.Contains(t, out.Response, "Estás en gastos.")
		assert.Contains(t, out.Response, "También puedes")
	})

	t.Run("english phrasing", func(t *testing.T) {
		enCtx := spanishContext()
		enCtx.language = LanguageEnglish
		enCtx.pageContext = "You are on the dashboard."

		out := d.Dispatch("what can i do here", enCtx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomePageContext, out.Type)
		assert.Contains(t, out.Response, "You can also ask me")
	})
}

func TestDispatcher_OpenClient(t *testing.T) {
	d := NewDispatcher(nil)
	acme := Client{ID: uuid.New(), Name: "Acme Corporation"}

	t.Run("resolved client routes to its page", func(t *testing.T) {
		ctx := spanishContext()
		ctx.clients = []Client{acme}

		out := d.Dispatch("abre el cliente acme", ctx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomeOpenClient, out.Type)
		require.NotNil(t, out.Client)
		assert.Equal(t, acme.ID, out.Client.ID)
		assert.Equal(t, RouteClients+"/"+acme.ID.String(), out.Route)
	})

	t.Run("unresolved name is a soft failure at the clients page", func(t *testing.T) {
		ctx := spanishContext()
		ctx.clients = []Client{acme}

		out := d.Dispatch("abre el cliente globex", ctx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomePageContext, out.Type)
		assert.Equal(t, RouteClients, out.Route)
		assert.Contains(t, out.Response, "globex")
	})

	t.Run("empty client list falls through", func(t *testing.T) {
		ctx := spanishContext()
		ctx.clients = nil

		out := d.Dispatch("abre el cliente globex", ctx)
		require.True(t, out.Handled)
		assert.Equal(t, OutcomeAIFallback, out.Type)
	})
}

func TestDispatcher_DataQuery(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.financial = FinancialSnapshot{MonthExpensesCents: 123456}

	out := d.Dispatch("¿cuánto he gastado?", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeDataQuery, out.Type)
	assert.Equal(t, QueryMonthExpenses, out.Query)
	assert.Equal(t, "Este mes has gastado $1.234,56.", out.Response)
}

func TestDispatcher_FallbackIsTotal(t *testing.T) {
	d := NewDispatcher(nil)

	for _, utterance := range []string{
		"tell me a joke",
		"cuéntame un chiste",
		"asdf qwerty",
		"what is the meaning of life",
	} {
		out := d.Dispatch(utterance, spanishContext())
		require.True(t, out.Handled, utterance)
		assert.Equal(t, OutcomeAIFallback, out.Type, utterance)
	}
}

func TestDispatcher_InvalidLanguageDefaultsToSpanish(t *testing.T) {
	d := NewDispatcher(nil)
	ctx := spanishContext()
	ctx.language = Language("fr")

	out := d.Dispatch("ir a gastos", ctx)
	require.True(t, out.Handled)
	assert.Equal(t, OutcomeNavigation, out.Type)
	assert.Equal(t, RouteExpenses, out.Route)
}

func TestDispatcher_ConcurrentDispatches(t *testing.T) {
	d := NewDispatcher(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := d.Dispatch("gasto de 50 en restaurante", spanishContext())
			assert.Equal(t, OutcomeExpense, out.Type)
		}()
	}
	wg.Wait()
}
