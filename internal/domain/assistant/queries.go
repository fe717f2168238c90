package assistant

// QueryType identifies one financial aggregate question the formatter can
// answer locally, without the generative fallback.
type QueryType string

const (
	QueryMonthExpenses   QueryType = "month-expenses"
	QueryYearExpenses    QueryType = "year-expenses"
	QueryMonthIncome     QueryType = "month-income"
	QueryYearIncome      QueryType = "year-income"
	QueryBalance         QueryType = "balance"
	QueryClientCount     QueryType = "client-count"
	QueryProjectCount    QueryType = "project-count"
	QueryPendingReceipts QueryType = "pending-receipts"
	QueryBiggestExpense  QueryType = "biggest-expense"
	QueryTopCategory     QueryType = "top-category"
	QueryTaxSummary      QueryType = "tax-summary"
	QueryEstimatedTax    QueryType = "estimated-tax"
	QueryDeductible      QueryType = "deductible"
	QueryBillable        QueryType = "billable"
)

// dataQuery is one query table entry.
type dataQuery struct {
	Patterns []string
	Query    QueryType
}

// queryTables hold the per-language data-query entries. Same containment
// matching as navigation. Phrasings deliberately avoid the navigation
// section names ("gastos", "expenses"): the navigation tier runs first and
// would otherwise claim them.
var queryTables = map[Language][]dataQuery{
	LanguageSpanish: {
		{Patterns: []string{"cuanto he gastado este ano", "cuanto gaste este ano", "gastado en el ano"}, Query: QueryYearExpenses},
		{Patterns: []string{"cuanto he gastado", "cuanto gaste este mes", "cuanto llevo gastado"}, Query: QueryMonthExpenses},
		{Patterns: []string{"cuanto he ganado este ano", "cuanto gane este ano", "ganado en el ano"}, Query: QueryYearIncome},
		{Patterns: []string{"cuanto he ganado", "cuanto gane este mes", "cuanto llevo ganado"}, Query: QueryMonthIncome},
		{Patterns: []string{"cual es mi balance", "como voy este mes", "como van mis finanzas"}, Query: QueryBalance},
		{Patterns: []string{"cuantos clientes tengo", "numero de clientes"}, Query: QueryClientCount},
		{Patterns: []string{"cuantos proyectos tengo", "numero de proyectos"}, Query: QueryProjectCount},
		{Patterns: []string{"recibos pendientes", "facturas pendientes", "boletas pendientes"}, Query: QueryPendingReceipts},
		{Patterns: []string{"mi gasto mas grande", "mayor gasto", "gasto mas alto"}, Query: QueryBiggestExpense},
		{Patterns: []string{"en que gasto mas", "donde gasto mas", "categoria con mas gasto"}, Query: QueryTopCategory},
		{Patterns: []string{"resumen de impuestos", "como van mis impuestos"}, Query: QueryTaxSummary},
		{Patterns: []string{"cuanto debo de impuestos", "impuesto estimado"}, Query: QueryEstimatedTax},
		{Patterns: []string{"cuanto llevo deducible", "total deducible"}, Query: QueryDeductible},
		{Patterns: []string{"cuanto llevo facturable", "total facturable"}, Query: QueryBillable},
	},
	LanguageEnglish: {
		{Patterns: []string{"how much have i spent this year", "spent this year"}, Query: QueryYearExpenses},
		{Patterns: []string{"how much have i spent", "how much did i spend this month", "spent this month"}, Query: QueryMonthExpenses},
		{Patterns: []string{"how much have i earned this year", "earned this year"}, Query: QueryYearIncome},
		{Patterns: []string{"how much have i earned", "how much did i make this month", "earned this month"}, Query: QueryMonthIncome},
		{Patterns: []string{"what is my balance", "whats my balance", "how am i doing this month"}, Query: QueryBalance},
		{Patterns: []string{"how many clients do i have", "number of clients"}, Query: QueryClientCount},
		{Patterns: []string{"how many projects do i have", "number of projects"}, Query: QueryProjectCount},
		{Patterns: []string{"pending receipts", "missing receipts"}, Query: QueryPendingReceipts},
		{Patterns: []string{"my biggest expense", "largest expense"}, Query: QueryBiggestExpense},
		{Patterns: []string{"where do i spend the most", "top spending category"}, Query: QueryTopCategory},
		{Patterns: []string{"tax summary", "how are my taxes"}, Query: QueryTaxSummary},
		{Patterns: []string{"how much tax do i owe", "estimated tax"}, Query: QueryEstimatedTax},
		{Patterns: []string{"deductible total", "how much is deductible"}, Query: QueryDeductible},
		{Patterns: []string{"billable total", "how much is billable"}, Query: QueryBillable},
	},
}

// MatchQuery finds the first query entry whose any pattern is contained in
// the normalized utterance.
func MatchQuery(utterance string, lang Language) (QueryType, bool) {
	normalized := Normalize(utterance)
	for _, entry := range queryTables[lang] {
		for _, pattern := range entry.Patterns {
			if containsPattern(normalized, pattern) {
				return entry.Query, true
			}
		}
	}
	return "", false
}
