package assistant

import (
	"fmt"

	"github.com/FACorreiaa/echo-assistant/pkg/money"
)

// LocalePairing binds one assistant language to the display locale and
// currency used when rendering amounts. The reference deployment pairs both
// languages with CAD; the pairing is configuration, not a rule.
type LocalePairing struct {
	Locale   string
	Currency string
}

// DefaultLocalePairings reproduce the reference deployment.
func DefaultLocalePairings() map[Language]LocalePairing {
	return map[Language]LocalePairing{
		LanguageSpanish: {Locale: "es-CL", Currency: money.CAD},
		LanguageEnglish: {Locale: "en-CA", Currency: money.CAD},
	}
}

// Formatter renders localized natural-language answers for data queries.
// Total over the QueryType enumeration: unknown types get a generic
// "could not retrieve" sentence instead of failing.
type Formatter struct {
	pairings map[Language]LocalePairing
}

// NewFormatter builds a formatter; nil pairings fall back to the defaults.
func NewFormatter(pairings map[Language]LocalePairing) *Formatter {
	if pairings == nil {
		pairings = DefaultLocalePairings()
	}
	return &Formatter{pairings: pairings}
}

func (f *Formatter) currency(cents int64, lang Language) string {
	p, ok := f.pairings[lang]
	if !ok {
		p = DefaultLocalePairings()[LanguageEnglish]
	}
	return money.FormatCents(cents, p.Currency, p.Locale)
}

// Format renders the answer for one query type from the aggregate snapshot.
func (f *Formatter) Format(query QueryType, data FinancialSnapshot, lang Language) string {
	es := lang == LanguageSpanish

	switch query {
	case QueryMonthExpenses:
		if es {
			return fmt.Sprintf("Este mes has gastado %s.", f.currency(data.MonthExpensesCents, lang))
		}
		return fmt.Sprintf("You have spent %s this month.", f.currency(data.MonthExpensesCents, lang))

	case QueryYearExpenses:
		if es {
			return fmt.Sprintf("Este año has gastado %s.", f.currency(data.YearExpensesCents, lang))
		}
		return fmt.Sprintf("You have spent %s this year.", f.currency(data.YearExpensesCents, lang))

	case QueryMonthIncome:
		if es {
			return fmt.Sprintf("Este mes has ganado %s.", f.currency(data.MonthIncomeCents, lang))
		}
		return fmt.Sprintf("You have earned %s this month.", f.currency(data.MonthIncomeCents, lang))

	case QueryYearIncome:
		if es {
			return fmt.Sprintf("Este año has ganado %s.", f.currency(data.YearIncomeCents, lang))
		}
		return fmt.Sprintf("You have earned %s this year.", f.currency(data.YearIncomeCents, lang))

	case QueryBalance:
		qualifier := "positive"
		if es {
			qualifier = "positivo"
		}
		if data.BalanceCents < 0 {
			qualifier = "negative"
			if es {
				qualifier = "negativo"
			}
		}
		if es {
			return fmt.Sprintf("Tu balance es %s, %s.", qualifier, f.currency(data.BalanceCents, lang))
		}
		return fmt.Sprintf("Your balance is %s, %s.", qualifier, f.currency(data.BalanceCents, lang))

	case QueryClientCount:
		if es {
			return fmt.Sprintf("Tienes %d %s.", data.ClientCount, plural(data.ClientCount, "cliente", "clientes"))
		}
		return fmt.Sprintf("You have %d %s.", data.ClientCount, plural(data.ClientCount, "client", "clients"))

	case QueryProjectCount:
		if es {
			return fmt.Sprintf("Tienes %d %s.", data.ProjectCount, plural(data.ProjectCount, "proyecto", "proyectos"))
		}
		return fmt.Sprintf("You have %d %s.", data.ProjectCount, plural(data.ProjectCount, "project", "projects"))

	case QueryPendingReceipts:
		if es {
			return fmt.Sprintf("Tienes %d %s.", data.PendingReceipts, plural(data.PendingReceipts, "recibo pendiente", "recibos pendientes"))
		}
		return fmt.Sprintf("You have %d %s.", data.PendingReceipts, plural(data.PendingReceipts, "pending receipt", "pending receipts"))

	case QueryBiggestExpense:
		if data.BiggestExpense == nil {
			return f.unavailable(lang)
		}
		if es {
			return fmt.Sprintf("Tu gasto más grande es %s en %s.", f.currency(data.BiggestExpense.AmountCents, lang), data.BiggestExpense.Vendor)
		}
		return fmt.Sprintf("Your biggest expense is %s at %s.", f.currency(data.BiggestExpense.AmountCents, lang), data.BiggestExpense.Vendor)

	case QueryTopCategory:
		if data.TopCategory == nil {
			return f.unavailable(lang)
		}
		label := categoryLabel(*data.TopCategory, lang)
		if es {
			return fmt.Sprintf("Donde más gastas es en %s, %s.", label, f.currency(data.TopCategory.Cents, lang))
		}
		return fmt.Sprintf("You spend the most on %s, %s.", label, f.currency(data.TopCategory.Cents, lang))

	case QueryTaxSummary:
		if es {
			return fmt.Sprintf("Llevas %s en deducibles y tu impuesto estimado es %s.",
				f.currency(data.DeductibleCents, lang), f.currency(data.EstimatedTaxCents, lang))
		}
		return fmt.Sprintf("You have %s in deductibles and your estimated tax is %s.",
			f.currency(data.DeductibleCents, lang), f.currency(data.EstimatedTaxCents, lang))

	case QueryEstimatedTax:
		if es {
			return fmt.Sprintf("Tu impuesto estimado es %s.", f.currency(data.EstimatedTaxCents, lang))
		}
		return fmt.Sprintf("Your estimated tax is %s.", f.currency(data.EstimatedTaxCents, lang))

	case QueryDeductible:
		if es {
			return fmt.Sprintf("Llevas %s en gastos deducibles.", f.currency(data.DeductibleCents, lang))
		}
		return fmt.Sprintf("You have %s in deductible expenses.", f.currency(data.DeductibleCents, lang))

	case QueryBillable:
		if es {
			return fmt.Sprintf("Llevas %s facturable.", f.currency(data.BillableCents, lang))
		}
		return fmt.Sprintf("You have %s billable.", f.currency(data.BillableCents, lang))

	default:
		return f.unavailable(lang)
	}
}

func (f *Formatter) unavailable(lang Language) string {
	if lang == LanguageSpanish {
		return "No pude obtener esa información en este momento."
	}
	return "I could not retrieve that information right now."
}

// categoryLabel renders a category total in the conversation language,
// falling back to the aggregate's display name for unknown categories.
func categoryLabel(c CategoryTotal, lang Language) string {
	if labels, ok := categoryLabels[lang]; ok {
		if label, ok := labels[c.Category]; ok {
			return label
		}
	}
	if c.Name != "" {
		return c.Name
	}
	return string(c.Category)
}

var categoryLabels = map[Language]map[Category]string{
	LanguageSpanish: {
		CategoryMeals:     "comidas",
		CategoryTransport: "transporte",
		CategorySoftware:  "software",
		CategoryOffice:    "oficina",
		CategoryTravel:    "viajes",
		CategoryMarketing: "marketing",
		CategoryUtilities: "servicios",
		CategoryOther:     "otros",
	},
	LanguageEnglish: {
		CategoryMeals:     "meals",
		CategoryTransport: "transport",
		CategorySoftware:  "software",
		CategoryOffice:    "office",
		CategoryTravel:    "travel",
		CategoryMarketing: "marketing",
		CategoryUtilities: "utilities",
		CategoryOther:     "other",
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
