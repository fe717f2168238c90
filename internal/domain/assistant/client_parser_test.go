package assistant

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientOpen(t *testing.T) {
	t.Run("spanish open phrasings", func(t *testing.T) {
		for _, utterance := range []string{
			"abre el cliente Acme",
			"abrir cliente Acme",
			"muéstrame el cliente acme",
			"busca al cliente ACME",
		} {
			name, ok := ParseClientOpen(utterance, LanguageSpanish)
			assert.True(t, ok, utterance)
			assert.Equal(t, "acme", name, utterance)
		}
	})

	t.Run("english open phrasings", func(t *testing.T) {
		name, ok := ParseClientOpen("open the client Globex Corp", LanguageEnglish)
		require.True(t, ok)
		assert.Equal(t, "globex corp", name)
	})

	t.Run("bare client prefix", func(t *testing.T) {
		name, ok := ParseClientOpen("cliente acme", LanguageSpanish)
		require.True(t, ok)
		assert.Equal(t, "acme", name)
	})

	t.Run("rejects names under three characters", func(t *testing.T) {
		_, ok := ParseClientOpen("abre el cliente ab", LanguageSpanish)
		assert.False(t, ok)
	})

	t.Run("non matching grammar", func(t *testing.T) {
		_, ok := ParseClientOpen("abre la puerta", LanguageSpanish)
		assert.False(t, ok)

		_, ok = ParseClientOpen("open the client acme", LanguageSpanish)
		assert.False(t, ok, "english grammar does not apply in spanish")
	})
}

func TestResolveClient(t *testing.T) {
	clients := []Client{
		{ID: uuid.New(), Name: "Acme Corporation"},
		{ID: uuid.New(), Name: "Globex"},
		{ID: uuid.New(), Name: "Initech"},
	}

	t.Run("exact normalized match", func(t *testing.T) {
		got, ok := ResolveClient("globex", clients)
		require.True(t, ok)
		assert.Equal(t, "Globex", got.Name)
	})

	t.Run("client name contains candidate", func(t *testing.T) {
		got, ok := ResolveClient("acme", clients)
		require.True(t, ok)
		assert.Equal(t, "Acme Corporation", got.Name)
	})

	t.Run("candidate contains client name", func(t *testing.T) {
		got, ok := ResolveClient("globex international", clients)
		require.True(t, ok)
		assert.Equal(t, "Globex", got.Name)
	})

	t.Run("fuzzy match on close misspelling", func(t *testing.T) {
		got, ok := ResolveClient("intech", clients)
		require.True(t, ok)
		assert.Equal(t, "Initech", got.Name)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := ResolveClient("zzz holdings", clients)
		assert.False(t, ok)
	})

	t.Run("empty candidate", func(t *testing.T) {
		_, ok := ResolveClient("   ", clients)
		assert.False(t, ok)
	})

	t.Run("empty client list", func(t *testing.T) {
		_, ok := ResolveClient("acme", nil)
		assert.False(t, ok)
	})
}
