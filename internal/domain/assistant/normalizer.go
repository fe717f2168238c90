package assistant

import "strings"

// accentFolder maps the accented letters that appear in Spanish command
// phrases to their unaccented forms. The set is fixed on purpose: pattern
// tables are written accent-free, and folding exactly these letters keeps
// "qué puedo hacer aquí" and "que puedo hacer aqui" identical after
// normalization. Runs after lower-casing, so only lowercase forms are listed.
var accentFolder = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ñ", "n",
)

// punctuationStripper removes the punctuation and quote characters that
// speech-to-text engines and typed input sprinkle into commands.
var punctuationStripper = strings.NewReplacer(
	"¿", "", "?", "",
	"¡", "", "!", "",
	".", "", ",", "",
	";", "", ":", "",
	"(", "", ")", "",
	"\"", "", "'", "",
	"«", "", "»", "",
	"“", "", "”", "",
	"‘", "", "’", "",
)

// Normalize lower-cases the text, strips punctuation, folds Spanish accents
// and collapses whitespace. It is the matching basis for every pattern lookup
// in this package. Total: empty in, empty out.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = accentFolder.Replace(s)
	s = punctuationStripper.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// normalizeForParse is the lighter fold used by the structured-data parsers:
// lower-case, accent folding and whitespace collapse, but decimal separators
// survive so "25.50" and "25,50" still parse as amounts.
func normalizeForParse(text string) string {
	s := strings.ToLower(text)
	s = accentFolder.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// capitalizeFirst upper-cases the first letter of a vendor/source phrase for
// display, leaving the rest untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
