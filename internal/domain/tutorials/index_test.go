package tutorials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(DefaultDocuments())
	require.NoError(t, err)
	return idx
}

func TestIndex_Find(t *testing.T) {
	idx := newTestIndex(t)

	t.Run("spanish how-to lands on the expense tutorial", func(t *testing.T) {
		tut, ok := idx.Find("¿cómo registro un gasto?", assistant.LanguageSpanish)
		require.True(t, ok)
		assert.Equal(t, "es-create-expense", tut.ID)
		assert.Equal(t, assistant.LanguageSpanish, tut.Language)
		assert.NotEmpty(t, tut.Steps)
	})

	t.Run("english how-to lands on the client tutorial", func(t *testing.T) {
		tut, ok := idx.Find("how do i add a client", assistant.LanguageEnglish)
		require.True(t, ok)
		assert.Equal(t, "en-add-client", tut.ID)
	})

	t.Run("language filter keeps results in the conversation language", func(t *testing.T) {
		tut, ok := idx.Find("how do i upload a receipt", assistant.LanguageEnglish)
		require.True(t, ok)
		assert.Equal(t, assistant.LanguageEnglish, tut.Language)
	})

	t.Run("non how-to utterances are gated out", func(t *testing.T) {
		_, ok := idx.Find("gasté 50 en restaurante", assistant.LanguageSpanish)
		assert.False(t, ok, "an expense command shares words with tutorial bodies but is not a how-to")

		_, ok = idx.Find("tell me a joke", assistant.LanguageEnglish)
		assert.False(t, ok)
	})

	t.Run("data-query phrasings are gated out", func(t *testing.T) {
		// These share "como"/"help" with how-to questions but ask about
		// financial state; they belong to later dispatch tiers.
		queries := []struct {
			utterance string
			lang      assistant.Language
		}{
			{"como voy este mes", assistant.LanguageSpanish},
			{"como van mis finanzas", assistant.LanguageSpanish},
			{"como van mis impuestos", assistant.LanguageSpanish},
			{"help me understand my balance", assistant.LanguageEnglish},
		}
		for _, q := range queries {
			_, ok := idx.Find(q.utterance, q.lang)
			assert.False(t, ok, "%q must not resolve to a tutorial", q.utterance)
		}
	})

	t.Run("how-to with no matching content misses", func(t *testing.T) {
		_, ok := idx.Find("how to pilot helicopters", assistant.LanguageEnglish)
		assert.False(t, ok)
	})
}

func TestIndex_Reindex(t *testing.T) {
	idx := newTestIndex(t)

	replacement := []Document{
		{
			ID:       "es-export-report",
			Title:    "Exportar un reporte",
			Body:     "exportar descargar un reporte informe pdf",
			Language: "es",
			Steps:    []string{"Abre reportes.", "Toca exportar."},
		},
	}
	require.NoError(t, idx.Reindex(replacement))

	_, ok := idx.Find("cómo subir recibos", assistant.LanguageSpanish)
	assert.False(t, ok, "old documents are gone after reindex")

	tut, ok := idx.Find("cómo exporto un reporte", assistant.LanguageSpanish)
	require.True(t, ok)
	assert.Equal(t, "es-export-report", tut.ID)
}
