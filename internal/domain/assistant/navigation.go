package assistant

import "strings"

// Route targets known to the assistant. The shell owns what lives at each
// path; the dispatcher only names them.
const (
	RouteDashboard = "/dashboard"
	RouteExpenses  = "/expenses"
	RouteIncome    = "/income"
	RouteClients   = "/clients"
	RouteProjects  = "/projects"
	RouteReceipts  = "/receipts"
	RouteTaxes     = "/taxes"
	RouteReports   = "/reports"
	RouteSettings  = "/settings"
)

// NavigationCommand is one navigation table entry: any of its patterns
// matching sends the user to Route. Action carries an optional UI action the
// shell runs after navigating (for example opening the "new entry" form).
type NavigationCommand struct {
	Patterns []string
	Route    string
	Name     string
	Action   string
}

// navigationTables hold the per-language navigation entries. Matching is
// substring containment over normalized text; table order is the tie-break,
// so entries with an action ("new expense") sit above the plain section
// entries whose patterns they contain.
var navigationTables = map[Language][]NavigationCommand{
	LanguageSpanish: {
		{Patterns: []string{"nuevo gasto", "agregar gasto", "registrar gasto"}, Route: RouteExpenses, Name: "gastos", Action: "new"},
		{Patterns: []string{"nuevo ingreso", "agregar ingreso", "registrar ingreso"}, Route: RouteIncome, Name: "ingresos", Action: "new"},
		{Patterns: []string{"nuevo cliente", "agregar cliente"}, Route: RouteClients, Name: "clientes", Action: "new"},
		{Patterns: []string{"inicio", "panel principal", "dashboard", "pantalla principal"}, Route: RouteDashboard, Name: "inicio"},
		{Patterns: []string{"gastos"}, Route: RouteExpenses, Name: "gastos"},
		{Patterns: []string{"ingresos"}, Route: RouteIncome, Name: "ingresos"},
		{Patterns: []string{"ir a clientes", "abre clientes", "ver clientes", "mis clientes", "pagina de clientes"}, Route: RouteClients, Name: "clientes"},
		{Patterns: []string{"proyectos"}, Route: RouteProjects, Name: "proyectos"},
		{Patterns: []string{"recibos", "facturas", "boletas"}, Route: RouteReceipts, Name: "recibos"},
		{Patterns: []string{"impuestos"}, Route: RouteTaxes, Name: "impuestos"},
		{Patterns: []string{"reportes", "informes"}, Route: RouteReports, Name: "reportes"},
		{Patterns: []string{"configuracion", "ajustes", "opciones"}, Route: RouteSettings, Name: "configuracion"},
	},
	LanguageEnglish: {
		{Patterns: []string{"new expense", "add expense", "add an expense"}, Route: RouteExpenses, Name: "expenses", Action: "new"},
		{Patterns: []string{"new income", "add income"}, Route: RouteIncome, Name: "income", Action: "new"},
		{Patterns: []string{"new client", "add client", "add a client"}, Route: RouteClients, Name: "clients", Action: "new"},
		{Patterns: []string{"home", "dashboard", "main screen"}, Route: RouteDashboard, Name: "home"},
		{Patterns: []string{"expenses"}, Route: RouteExpenses, Name: "expenses"},
		{Patterns: []string{"income page", "my income", "income section"}, Route: RouteIncome, Name: "income"},
		{Patterns: []string{"go to clients", "open clients", "show clients", "my clients", "clients page"}, Route: RouteClients, Name: "clients"},
		{Patterns: []string{"projects"}, Route: RouteProjects, Name: "projects"},
		{Patterns: []string{"receipts", "invoices"}, Route: RouteReceipts, Name: "receipts"},
		{Patterns: []string{"taxes", "tax page"}, Route: RouteTaxes, Name: "taxes"},
		{Patterns: []string{"reports"}, Route: RouteReports, Name: "reports"},
		{Patterns: []string{"settings", "preferences"}, Route: RouteSettings, Name: "settings"},
	},
}

// MatchNavigation finds the first navigation entry whose any pattern is
// contained in the normalized utterance. First entry, first pattern wins.
func MatchNavigation(utterance string, lang Language) (NavigationCommand, bool) {
	normalized := Normalize(utterance)
	for _, entry := range navigationTables[lang] {
		for _, pattern := range entry.Patterns {
			if containsPattern(normalized, pattern) {
				return entry, true
			}
		}
	}
	return NavigationCommand{}, false
}

func containsPattern(normalizedUtterance, pattern string) bool {
	p := Normalize(pattern)
	if p == "" {
		return false
	}
	return strings.Contains(normalizedUtterance, p)
}
