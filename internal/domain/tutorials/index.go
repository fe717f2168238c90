// Package tutorials answers "how do I ..." utterances with an indexed
// walkthrough. Tutorials are full-text indexed with Bleve so phrasing does
// not have to match titles exactly.
package tutorials

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

// minScore filters out weak hits: "how do I add an expense" should land on a
// tutorial, "tell me a joke" should not.
const minScore = 0.3

// triggerPhrases gate the tier: only utterances that sound like a how-to
// question are searched at all, so the tutorial tier does not swallow
// ordinary commands or data queries that happen to share words with a
// tutorial body. Bare "como" and "help me" are too broad: "como voy este
// mes" is a balance query, not a how-to.
var triggerPhrases = []string{
	"como puedo", "como registro", "como agrego", "como creo",
	"como subo", "como subir", "como exporto", "tutorial",
	"ensename", "ayudame a", "aprender a",
	"how do i", "how to", "how can i", "teach me", "show me how",
}

// Document is one indexed tutorial.
type Document struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Language string   `json:"language"`
	Steps    []string `json:"steps"`
}

// Index is a Bleve-backed tutorial finder.
type Index struct {
	mu    sync.RWMutex
	index bleve.Index
	docs  map[string]Document
}

// NewIndex creates an in-memory index over the given tutorials.
func NewIndex(docs []Document) (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create tutorial index: %w", err)
	}

	idx := &Index{index: index, docs: make(map[string]Document, len(docs))}
	if err := idx.Reindex(docs); err != nil {
		return nil, err
	}
	return idx, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = simple.Name

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("title", textFieldMapping)
	docMapping.AddFieldMappingsAt("body", textFieldMapping)
	docMapping.AddFieldMappingsAt("language", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = simple.Name
	return indexMapping
}

// Reindex replaces the indexed set. The scheduler calls this when tutorial
// content changes.
func (i *Index) Reindex(docs []Document) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.index.NewBatch()
	for id := range i.docs {
		batch.Delete(id)
	}
	fresh := make(map[string]Document, len(docs))
	for _, doc := range docs {
		if err := batch.Index(doc.ID, doc); err != nil {
			return fmt.Errorf("index tutorial %s: %w", doc.ID, err)
		}
		fresh[doc.ID] = doc
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("batch index tutorials: %w", err)
	}
	i.docs = fresh
	return nil
}

// Find returns the best tutorial for a how-to utterance in the given
// language, or false when the utterance is not a how-to question or nothing
// scores above the floor.
func (i *Index) Find(utterance string, lang assistant.Language) (assistant.Tutorial, bool) {
	normalized := assistant.Normalize(utterance)
	if !soundsLikeHowTo(normalized) {
		return assistant.Tutorial{}, false
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	matchQuery := bleve.NewMatchQuery(normalized)
	matchQuery.SetFuzziness(1)

	langQuery := bleve.NewTermQuery(string(lang))
	langQuery.SetField("language")

	searchRequest := bleve.NewSearchRequest(bleve.NewConjunctionQuery(matchQuery, langQuery))
	searchRequest.Size = 1

	result, err := i.index.Search(searchRequest)
	if err != nil || len(result.Hits) == 0 {
		return assistant.Tutorial{}, false
	}

	hit := result.Hits[0]
	if hit.Score < minScore {
		return assistant.Tutorial{}, false
	}

	doc, ok := i.docs[hit.ID]
	if !ok {
		return assistant.Tutorial{}, false
	}
	return assistant.Tutorial{
		ID:       doc.ID,
		Title:    doc.Title,
		Steps:    doc.Steps,
		Language: assistant.Language(doc.Language),
	}, true
}

func soundsLikeHowTo(normalized string) bool {
	for _, phrase := range triggerPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
