package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/snapshot"
)

// Documento tal como lo deja el frontend en localStorage (claves extra incluidas).
const browserDoc = `{
  "products": [{"id":"PROD001","name":"Laptop","description":"High-performance laptop","createdAt":"2024-03-01T10:00:00.000Z"}],
  "locations": [{"id":"WH001","name":"Main Warehouse","address":"123 Storage Street","createdAt":"2024-03-01T10:00:00.000Z"}],
  "movements": [
    {"id":1709287200000,"productId":"PROD001","from":null,"to":"WH001","qty":20,"timestamp":"2024-03-01T10:00:00.000Z"},
    {"id":1709287200001,"productId":"PROD001","from":"WH001","to":null,"qty":2,"timestamp":"2024-03-01T10:05:00.000Z"},
    {"id":1709287200002,"productId":"PROD001","from":null,"to":null,"qty":2,"timestamp":"2024-03-01T10:06:00.000Z"}
  ],
  "currentPage": "dashboard",
  "isEditing": {"product": null, "location": null}
}`

func TestDecode_DocumentoDelNavegador(t *testing.T) {
	snap, err := snapshot.Decode([]byte(browserDoc))
	require.NoError(t, err)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Laptop", snap.Products[0].Name)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), snap.Products[0].CreatedAt.UTC())
	require.Len(t, snap.Locations, 1)
	assert.Equal(t, "123 Storage Street", snap.Locations[0].Address)

	require.Len(t, snap.Movements, 3)
	assert.Equal(t, entity.Inbound{To: "WH001"}, snap.Movements[0].Direction)
	assert.Equal(t, entity.Outbound{From: "WH001"}, snap.Movements[1].Direction)
	assert.Nil(t, snap.Movements[2].Direction, "sin origen ni destino no hay dirección válida")
	assert.Equal(t, int64(1709287200000), snap.Movements[0].ID)
}

func TestEncode_OrigenYDestinoAusentesSonNull(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	b, err := snapshot.Encode(&entity.Snapshot{
		Movements: []entity.Movement{
			{ID: 7, ProductID: "P1", Direction: entity.Transfer{From: "L1", To: "L2"}, Qty: 3, Timestamp: ts},
			{ID: 8, ProductID: "P1", Direction: entity.Inbound{To: "L1"}, Qty: 1, Timestamp: ts},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
	  "products": [],
	  "locations": [],
	  "movements": [
	    {"id":7,"productId":"P1","from":"L1","to":"L2","qty":3,"timestamp":"2024-03-01T10:00:00Z"},
	    {"id":8,"productId":"P1","from":null,"to":"L1","qty":1,"timestamp":"2024-03-01T10:00:00Z"}
	  ]
	}`, string(b))
}

func TestDecode_JSONInvalido(t *testing.T) {
	_, err := snapshot.Decode([]byte("{no es json"))
	assert.Error(t, err)
}
