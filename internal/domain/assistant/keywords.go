package assistant

import (
	"github.com/cloudflare/ahocorasick"
)

// keywordEntry binds one keyword to a classification label. Entries are
// matched in declaration order: when several keywords hit the same text, the
// one declared first wins.
type keywordEntry struct {
	Keyword string
	Label   string
}

// keywordClassifier classifies free text by scanning a static keyword table
// in a single pass. All keywords are matched simultaneously; declaration
// order is the tie-break.
type keywordClassifier struct {
	matcher  *ahocorasick.Matcher
	labels   []string
	fallback string
}

func newKeywordClassifier(entries []keywordEntry, fallback string) *keywordClassifier {
	patterns := make([][]byte, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		patterns[i] = []byte(Normalize(e.Keyword))
		labels[i] = e.Label
	}
	return &keywordClassifier{
		matcher:  ahocorasick.NewMatcher(patterns),
		labels:   labels,
		fallback: fallback,
	}
}

// classify returns the label of the earliest-declared keyword found in the
// text, or the fallback when nothing matches. Classifiers are shared across
// requests, so matching must not touch the matcher's internal counters;
// Matcher.Match does, MatchThreadSafe does not.
func (c *keywordClassifier) classify(text string) string {
	hits := c.matcher.MatchThreadSafe([]byte(Normalize(text)))
	if len(hits) == 0 {
		return c.fallback
	}
	best := hits[0]
	for _, idx := range hits[1:] {
		if idx < best {
			best = idx
		}
	}
	if best < 0 || best >= len(c.labels) {
		return c.fallback
	}
	return c.labels[best]
}

// expenseKeywords maps vendor text to an expense category. Language-agnostic:
// Spanish and English keywords share one table.
var expenseKeywords = []keywordEntry{
	{"restaurante", string(CategoryMeals)},
	{"restaurant", string(CategoryMeals)},
	{"cafe", string(CategoryMeals)},
	{"cafeteria", string(CategoryMeals)},
	{"coffee", string(CategoryMeals)},
	{"comida", string(CategoryMeals)},
	{"almuerzo", string(CategoryMeals)},
	{"lunch", string(CategoryMeals)},
	{"dinner", string(CategoryMeals)},
	{"pizza", string(CategoryMeals)},
	{"supermercado", string(CategoryMeals)},
	{"grocery", string(CategoryMeals)},

	{"uber", string(CategoryTransport)},
	{"taxi", string(CategoryTransport)},
	{"gasolina", string(CategoryTransport)},
	{"bencina", string(CategoryTransport)},
	{"gas station", string(CategoryTransport)},
	{"parking", string(CategoryTransport)},
	{"estacionamiento", string(CategoryTransport)},
	{"metro", string(CategoryTransport)},
	{"bus", string(CategoryTransport)},

	{"software", string(CategorySoftware)},
	{"licencia", string(CategorySoftware)},
	{"license", string(CategorySoftware)},
	{"adobe", string(CategorySoftware)},
	{"figma", string(CategorySoftware)},
	{"github", string(CategorySoftware)},
	{"hosting", string(CategorySoftware)},
	{"dominio", string(CategorySoftware)},
	{"domain", string(CategorySoftware)},
	{"suscripcion", string(CategorySoftware)},
	{"subscription", string(CategorySoftware)},

	{"oficina", string(CategoryOffice)},
	{"office", string(CategoryOffice)},
	{"papeleria", string(CategoryOffice)},
	{"stationery", string(CategoryOffice)},
	{"escritorio", string(CategoryOffice)},
	{"desk", string(CategoryOffice)},
	{"silla", string(CategoryOffice)},
	{"monitor", string(CategoryOffice)},

	{"vuelo", string(CategoryTravel)},
	{"flight", string(CategoryTravel)},
	{"hotel", string(CategoryTravel)},
	{"airbnb", string(CategoryTravel)},
	{"viaje", string(CategoryTravel)},
	{"pasaje", string(CategoryTravel)},

	{"publicidad", string(CategoryMarketing)},
	{"ads", string(CategoryMarketing)},
	{"anuncio", string(CategoryMarketing)},
	{"marketing", string(CategoryMarketing)},
	{"facebook", string(CategoryMarketing)},
	{"instagram", string(CategoryMarketing)},

	{"luz", string(CategoryUtilities)},
	{"agua", string(CategoryUtilities)},
	{"internet", string(CategoryUtilities)},
	{"telefono", string(CategoryUtilities)},
	{"phone", string(CategoryUtilities)},
	{"electric", string(CategoryUtilities)},
	{"electricidad", string(CategoryUtilities)},
}

// incomeKeywords maps source text to an income type.
var incomeKeywords = []keywordEntry{
	{"cliente", string(IncomeClientPayment)},
	{"client", string(IncomeClientPayment)},
	{"factura", string(IncomeClientPayment)},
	{"invoice", string(IncomeClientPayment)},
	{"pago de", string(IncomeClientPayment)},

	{"venta", string(IncomeSales)},
	{"sale", string(IncomeSales)},
	{"tienda", string(IncomeSales)},
	{"store", string(IncomeSales)},

	{"consultoria", string(IncomeConsulting)},
	{"consulting", string(IncomeConsulting)},
	{"asesoria", string(IncomeConsulting)},
	{"proyecto", string(IncomeConsulting)},
	{"project", string(IncomeConsulting)},

	{"sueldo", string(IncomeSalary)},
	{"salario", string(IncomeSalary)},
	{"salary", string(IncomeSalary)},
	{"payroll", string(IncomeSalary)},
	{"nomina", string(IncomeSalary)},
}
