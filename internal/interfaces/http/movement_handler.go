package http

import (
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

const noLocationName = "-"

// MovementHandler maneja el log de movimientos y los niveles de stock.
type MovementHandler struct {
	store *inventory.Store
}

// NewMovementHandler construye el handler.
func NewMovementHandler(store *inventory.Store) *MovementHandler {
	return &MovementHandler{store: store}
}

// Create godoc
// @Summary      Registrar movimiento (entrada, salida o traslado)
// @Description  Sin origen = entrada, sin destino = salida, ambos = traslado. qty acepta número o texto.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_id, from_location, to_location, qty"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.store.AppendMovement(c.UserContext(), dominv.MovementCandidate{
		ProductID: in.ProductID,
		From:      in.FromLocation,
		To:        in.ToLocation,
		Qty:       string(in.Qty),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(m, h.names()))
}

// List godoc
// @Summary      Log de movimientos, más reciente primero
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por texto"
// @Success      200     {object}  dto.ListResponse[dto.MovementResponse]
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	q := c.Query("search")
	names := h.names()
	var out []dto.MovementResponse
	for _, m := range h.store.Movements() {
		r := h.toResponse(m, names)
		if matchesSearch(q, r.Type, r.ProductID, r.ProductName, r.FromName, r.ToName, strconv.Itoa(r.Qty)) {
			out = append(out, r)
		}
	}
	return c.JSON(dto.NewList(out))
}

// StockLevels godoc
// @Summary      Stock por producto y ubicación (sin recortar negativos)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.StockLevelResponse]
// @Router       /api/stock [get]
func (h *MovementHandler) StockLevels(c *fiber.Ctx) error {
	levels := h.store.StockByLocation()
	out := make([]dto.StockLevelResponse, 0)
	for productID, byLoc := range levels {
		for locationID, qty := range byLoc {
			out = append(out, dto.StockLevelResponse{ProductID: productID, LocationID: locationID, Qty: qty})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].LocationID < out[j].LocationID
	})
	return c.JSON(dto.NewList(out))
}

type nameIndex struct {
	products  map[string]string
	locations map[string]string
}

func (h *MovementHandler) names() nameIndex {
	idx := nameIndex{products: map[string]string{}, locations: map[string]string{}}
	for _, p := range h.store.Products() {
		idx.products[p.ID] = p.Name
	}
	for _, l := range h.store.Locations() {
		idx.locations[l.ID] = l.Name
	}
	return idx
}

func (idx nameIndex) location(id string) string {
	if name, ok := idx.locations[id]; ok && id != "" {
		return name
	}
	return noLocationName
}

func (h *MovementHandler) toResponse(m entity.Movement, idx nameIndex) dto.MovementResponse {
	productName, ok := idx.products[m.ProductID]
	if !ok {
		productName = inventory.UnknownProductName
	}
	return dto.MovementResponse{
		ID:           m.ID,
		Type:         m.Type(),
		ProductID:    m.ProductID,
		ProductName:  productName,
		FromLocation: optionalString(m.From()),
		ToLocation:   optionalString(m.To()),
		FromName:     idx.location(m.From()),
		ToName:       idx.location(m.To()),
		Qty:          m.Qty,
		Timestamp:    m.Timestamp,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
