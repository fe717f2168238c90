package assistant

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern accepts both decimal separators; the comma form is folded to
// a dot before the numeric parse.
const amountPattern = `\$?(?P<amount>\d+(?:[.,]\d{1,2})?)`

// expenseTemplates are tried in order against the parse-normalized utterance.
// The families cover Spanish and English verb phrases, in amount-first and
// vendor-first orders. First template to match claims the utterance.
var expenseTemplates = []*regexp.Regexp{
	// Spanish, amount first: "gaste 50 en uber", "gasto de 12,50 en cafe"
	regexp.MustCompile(`(?:gaste|pague|compre|gasto de|pago de|compra de)\s+(?:unos\s+)?` + amountPattern + `\s*(?:pesos|dolares|lucas)?\s+(?:en|de|para|con)\s+(?P<vendor>.+)$`),
	// Spanish, vendor first: "gaste en la oficina 30"
	regexp.MustCompile(`(?:gaste|pague|compre)\s+(?:en|para)\s+(?P<vendor>.+?)\s+` + amountPattern + `\s*(?:pesos|dolares|lucas)?$`),
	// English, amount first: "i spent 25.50 at amazon", "expense of 40 on ads"
	regexp.MustCompile(`(?:i spent|spent|i paid|paid|i bought|bought|expense of|expense for)\s+` + amountPattern + `\s*(?:dollars|bucks)?\s+(?:at|on|for|in)\s+(?P<vendor>.+)$`),
	// English, vendor first: "paid the hotel 120"
	regexp.MustCompile(`(?:i paid|paid)\s+(?:the\s+)?(?P<vendor>.+?)\s+` + amountPattern + `\s*(?:dollars|bucks)?$`),
}

// ExpenseParser extracts an amount, vendor and category from an expense
// utterance. Parsing is advisory: a nil return is a normal no-match, never an
// error, so the dispatcher can fall through to the next tier.
type ExpenseParser struct {
	categories *keywordClassifier
}

// NewExpenseParser builds a parser with the static category keyword table.
func NewExpenseParser() *ExpenseParser {
	return &ExpenseParser{
		categories: newKeywordClassifier(expenseKeywords, string(CategoryOther)),
	}
}

// Parse returns the parsed expense or nil when the utterance is not an
// expense command, the amount is not positive, or the vendor is empty.
func (p *ExpenseParser) Parse(text string) *ParsedExpense {
	normalized := normalizeForParse(text)
	for _, re := range expenseTemplates {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		amount, ok := parseAmount(m[re.SubexpIndex("amount")])
		if !ok {
			return nil
		}
		vendor := strings.TrimSpace(m[re.SubexpIndex("vendor")])
		if vendor == "" {
			return nil
		}
		return &ParsedExpense{
			Amount:   amount,
			Category: Category(p.categories.classify(vendor)),
			Vendor:   capitalizeFirst(vendor),
		}
	}
	return nil
}

// parseAmount folds the comma separator and parses a positive decimal.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
