// Package assistant implements the voice/text command interpretation pipeline:
// a deterministic, ordered chain of matchers that classifies one utterance into
// exactly one outcome before anything is handed to the generative fallback.
package assistant

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Language identifies a supported assistant language.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
)

// Valid reports whether the language is one the assistant supports.
func (l Language) Valid() bool {
	return l == LanguageSpanish || l == LanguageEnglish
}

// Category is the expense category assigned by the keyword classifier.
type Category string

const (
	CategoryMeals     Category = "meals"
	CategoryTransport Category = "transport"
	CategorySoftware  Category = "software"
	CategoryOffice    Category = "office"
	CategoryTravel    Category = "travel"
	CategoryMarketing Category = "marketing"
	CategoryUtilities Category = "utilities"
	CategoryOther     Category = "other"
)

// IncomeType classifies where a parsed income entry came from.
type IncomeType string

const (
	IncomeClientPayment IncomeType = "client-payment"
	IncomeSales         IncomeType = "sales"
	IncomeConsulting    IncomeType = "consulting"
	IncomeSalary        IncomeType = "salary"
	IncomeOther         IncomeType = "other"
)

// ParsedExpense is the result of a successful expense utterance parse.
// It is consumed immediately by the caller to build a mutation request.
type ParsedExpense struct {
	Amount   decimal.Decimal
	Category Category
	Vendor   string
}

// ParsedIncome is the result of a successful income utterance parse.
// Source may be empty ("I earned 500" with no payer).
type ParsedIncome struct {
	Amount     decimal.Decimal
	IncomeType IncomeType
	Source     string
}

// Client is a known client record resolvable by name.
type Client struct {
	ID   uuid.UUID
	Name string
}

// Shortcut is a user-defined phrase bound to a route.
type Shortcut struct {
	ID     uuid.UUID
	Phrase string
	Route  string
	Name   string
}

// Tutorial is a walkthrough the tutorial finder can surface for an utterance.
type Tutorial struct {
	ID       string
	Title    string
	Steps    []string
	Language Language
}

// ConfirmationResult is what the pending-confirmation collaborator reports
// when it recognizes a yes/no answer.
type ConfirmationResult struct {
	Confirmed bool
	Message   string
}

// ExpenseRecord is a single expense referenced by financial aggregates.
type ExpenseRecord struct {
	Vendor      string
	AmountCents int64
}

// CategoryTotal is a per-category aggregate referenced by financial aggregates.
type CategoryTotal struct {
	Category Category
	Name     string
	Cents    int64
}

// FinancialSnapshot is the read-only aggregate view the formatter renders
// query answers from. Amounts are minor units (cents).
type FinancialSnapshot struct {
	MonthExpensesCents int64
	YearExpensesCents  int64
	MonthIncomeCents   int64
	YearIncomeCents    int64
	BalanceCents       int64
	ClientCount        int
	ProjectCount       int
	PendingReceipts    int
	BiggestExpense     *ExpenseRecord
	TopCategory        *CategoryTotal
	DeductibleCents    int64
	BillableCents      int64
	EstimatedTaxCents  int64
}
