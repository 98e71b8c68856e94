package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
)

func TestQuantity_NumeroOTexto(t *testing.T) {
	cases := map[string]dto.Quantity{
		`{"qty": 5}`:      "5",
		`{"qty": "7"}`:    "7",
		`{"qty": 2.5}`:    "2.5",
		`{"qty": 5.0}`:    "5.0",
		`{"qty": null}`:   "",
		`{"qty": "abc"}`:  "abc",
		`{}`:              "",
	}
	for body, want := range cases {
		var req dto.MovementRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.Qty, body)
	}
}

func TestQuantity_TipoInvalido(t *testing.T) {
	var req dto.MovementRequest
	assert.Error(t, json.Unmarshal([]byte(`{"qty": true}`), &req))
}
