package assistant

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// clientOpenTemplates hold the per-language "open the client <name>" pattern
// families, tried in order.
var clientOpenTemplates = map[Language][]*regexp.Regexp{
	LanguageSpanish: {
		regexp.MustCompile(`^(?:abre|abrir|muestra|muestrame|ver|busca)\s+(?:el\s+|al\s+|la\s+)?cliente\s+(.+)$`),
		regexp.MustCompile(`^cliente\s+(.+)$`),
	},
	LanguageEnglish: {
		regexp.MustCompile(`^(?:open|show|view|go to|find)\s+(?:the\s+)?client\s+(.+)$`),
		regexp.MustCompile(`^client\s+(.+)$`),
	},
}

// ParseClientOpen extracts a client-name candidate from an "open client"
// utterance. Returns the cleaned candidate and true, or "" and false when the
// utterance does not fit the grammar or the name is shorter than 3 characters.
func ParseClientOpen(text string, lang Language) (string, bool) {
	normalized := Normalize(text)
	for _, re := range clientOpenTemplates[lang] {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		name := strings.Join(strings.Fields(m[1]), " ")
		if len(name) < 3 {
			return "", false
		}
		return name, true
	}
	return "", false
}

// ResolveClient matches a parsed name candidate against the known client
// list. Rules run in order, first to yield a match wins: exact normalized
// name, client name contains candidate, candidate contains client name, and
// finally a fuzzy fold match for close misspellings.
func ResolveClient(candidate string, clients []Client) (Client, bool) {
	needle := Normalize(candidate)
	if needle == "" {
		return Client{}, false
	}

	for _, c := range clients {
		if Normalize(c.Name) == needle {
			return c, true
		}
	}
	for _, c := range clients {
		if strings.Contains(Normalize(c.Name), needle) {
			return c, true
		}
	}
	for _, c := range clients {
		if strings.Contains(needle, Normalize(c.Name)) {
			return c, true
		}
	}
	for _, c := range clients {
		if fuzzy.MatchNormalizedFold(needle, c.Name) {
			return c, true
		}
	}
	return Client{}, false
}
