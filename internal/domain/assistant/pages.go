package assistant

// StaticPages is the built-in PageContextSource: a fixed description of what
// each screen offers, per language. The shell can supply its own source when
// screens are dynamic.
type StaticPages struct{}

var pageDescriptions = map[Language]map[string]string{
	LanguageSpanish: {
		RouteDashboard: "Estás en el panel principal. Aquí ves tu balance, tus últimos movimientos y accesos rápidos.",
		RouteExpenses:  "Estás en gastos. Aquí puedes revisar, crear y categorizar tus gastos.",
		RouteIncome:    "Estás en ingresos. Aquí puedes revisar y registrar lo que has ganado.",
		RouteClients:   "Estás en clientes. Aquí puedes ver tu lista de clientes y abrir cualquiera por nombre.",
		RouteProjects:  "Estás en proyectos. Aquí puedes ver el estado de cada proyecto.",
		RouteReceipts:  "Estás en recibos. Aquí puedes subir y asociar tus recibos.",
		RouteTaxes:     "Estás en impuestos. Aquí ves tu resumen de deducibles e impuesto estimado.",
		RouteReports:   "Estás en reportes. Aquí puedes generar informes de tus finanzas.",
		RouteSettings:  "Estás en configuración. Aquí puedes ajustar tu idioma y preferencias.",
	},
	LanguageEnglish: {
		RouteDashboard: "You are on the dashboard. You can see your balance, recent activity and quick actions.",
		RouteExpenses:  "You are on expenses. You can review, create and categorize your expenses here.",
		RouteIncome:    "You are on income. You can review and record what you have earned.",
		RouteClients:   "You are on clients. You can browse your client list and open any client by name.",
		RouteProjects:  "You are on projects. You can check the status of each project.",
		RouteReceipts:  "You are on receipts. You can upload and link your receipts.",
		RouteTaxes:     "You are on taxes. You can see your deductible summary and estimated tax.",
		RouteReports:   "You are on reports. You can generate reports of your finances.",
		RouteSettings:  "You are on settings. You can adjust your language and preferences.",
	},
}

// Describe returns the description for a route, falling back to a generic
// sentence for unknown routes.
func (StaticPages) Describe(path string, lang Language) string {
	if desc, ok := pageDescriptions[lang][path]; ok {
		return desc
	}
	if lang == LanguageSpanish {
		return "Estás en la aplicación de finanzas."
	}
	return "You are in the finance app."
}
