package assistant

import (
	"regexp"
	"strings"
)

// incomeTemplates mirror the expense templates for "received / earned / was
// paid" phrasings. The source capture is optional: "gané 500" is a valid
// income with no payer, unlike expenses where the vendor is required.
var incomeTemplates = []*regexp.Regexp{
	// Spanish: "recibi 1000 del cliente acme", "gane 500"
	regexp.MustCompile(`(?:recibi|me pagaron|gane|cobre|ingreso de|me ingresaron|me depositaron)\s+` + amountPattern + `\s*(?:pesos|dolares|lucas)?(?:\s+(?:de la|del|de|por)\s+(?P<source>.+))?$`),
	// English: "i received 1000 from acme", "earned 350 for consulting"
	regexp.MustCompile(`(?:i received|received|i earned|earned|i was paid|got paid|income of|they paid me)\s+` + amountPattern + `\s*(?:dollars|bucks)?(?:\s+(?:from|for|by)\s+(?P<source>.+))?$`),
}

// IncomeParser extracts an amount, source and income type from an income
// utterance. Same advisory contract as the expense parser.
type IncomeParser struct {
	types *keywordClassifier
}

// NewIncomeParser builds a parser with the static income-type keyword table.
func NewIncomeParser() *IncomeParser {
	return &IncomeParser{
		types: newKeywordClassifier(incomeKeywords, string(IncomeOther)),
	}
}

// Parse returns the parsed income or nil when the utterance is not an income
// command or the amount is not positive.
func (p *IncomeParser) Parse(text string) *ParsedIncome {
	normalized := normalizeForParse(text)
	for _, re := range incomeTemplates {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		amount, ok := parseAmount(m[re.SubexpIndex("amount")])
		if !ok {
			return nil
		}
		source := strings.TrimSpace(m[re.SubexpIndex("source")])
		incomeType := IncomeOther
		if source != "" {
			incomeType = IncomeType(p.types.classify(source))
		}
		return &ParsedIncome{
			Amount:     amount,
			IncomeType: incomeType,
			Source:     capitalizeFirst(source),
		}
	}
	return nil
}
