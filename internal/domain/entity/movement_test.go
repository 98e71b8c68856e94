package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

func TestNewDirection(t *testing.T) {
	_, ok := entity.NewDirection("", "")
	assert.False(t, ok, "sin origen ni destino no es una dirección válida")

	d, ok := entity.NewDirection("", "L1")
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeIn, d.Kind())

	d, ok = entity.NewDirection("L1", "")
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeOut, d.Kind())

	d, ok = entity.NewDirection("L1", "L2")
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeTransfer, d.Kind())
	assert.Equal(t, "L1", d.Source())
	assert.Equal(t, "L2", d.Destination())
}

func TestMovement_FromTo(t *testing.T) {
	m := entity.Movement{Direction: entity.Outbound{From: "L1"}}
	assert.Equal(t, "L1", m.From())
	assert.Equal(t, "", m.To())
	assert.Equal(t, entity.MovementTypeOut, m.Type())

	var empty entity.Movement
	assert.Equal(t, "", empty.From())
	assert.Equal(t, "", empty.Type())
}
