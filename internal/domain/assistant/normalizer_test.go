package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Ir A GASTOS", "ir a gastos"},
		{"folds accents", "¿Qué puedo hacer aquí?", "que puedo hacer aqui"},
		{"folds enie", "este año", "este ano"},
		{"strips punctuation", "¡gastos, ahora!", "gastos ahora"},
		{"strips quotes", "abre \"clientes\"", "abre clientes"},
		{"collapses whitespace", "  ir   a \t gastos  ", "ir a gastos"},
		{"empty in empty out", "", ""},
		{"whitespace only", "   \t  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeForParse(t *testing.T) {
	t.Run("keeps decimal separators", func(t *testing.T) {
		assert.Equal(t, "gaste 25.50 en cafe", normalizeForParse("Gasté 25.50 en café"))
		assert.Equal(t, "gaste 25,50 en cafe", normalizeForParse("Gasté 25,50 en café"))
	})

	t.Run("still folds accents and case", func(t *testing.T) {
		assert.Equal(t, "gane 500", normalizeForParse("GANÉ 500"))
	})
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Restaurante", capitalizeFirst("restaurante"))
	assert.Equal(t, "Acme corp", capitalizeFirst("acme corp"))
	assert.Equal(t, "", capitalizeFirst(""))
}
