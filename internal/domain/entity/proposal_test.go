package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devstudio/agencia-api/internal/domain/entity"
)

func TestIsValidEstado(t *testing.T) {
	for _, e := range entity.Estados() {
		assert.True(t, entity.IsValidEstado(e), e)
	}
	assert.False(t, entity.IsValidEstado("CANCELADO"))
	assert.False(t, entity.IsValidEstado(""))
	assert.False(t, entity.IsValidEstado("ganado"), "los estados distinguen mayúsculas")
}

func TestNormalizeEstado_ValorDesconocidoCaeAEnPreparacion(t *testing.T) {
	// Un valor almacenado no reconocido se lee como EN_PREPARACION, no falla
	assert.Equal(t, entity.EstadoEnPreparacion, entity.NormalizeEstado("BORRADOR"))
	assert.Equal(t, entity.EstadoEnPreparacion, entity.NormalizeEstado(""))
	// Los valores válidos pasan intactos
	assert.Equal(t, entity.EstadoGanado, entity.NormalizeEstado(entity.EstadoGanado))
}
