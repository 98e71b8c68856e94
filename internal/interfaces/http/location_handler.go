package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// LocationHandler maneja las peticiones HTTP para ubicaciones.
type LocationHandler struct {
	store *inventory.Store
}

// NewLocationHandler construye el handler.
func NewLocationHandler(store *inventory.Store) *LocationHandler {
	return &LocationHandler{store: store}
}

// List godoc
// @Summary      Listar ubicaciones con cantidad de productos en stock
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por texto"
// @Success      200     {object}  dto.ListResponse[dto.LocationResponse]
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	q := c.Query("search")
	var out []dto.LocationResponse
	for _, l := range h.store.Locations() {
		if matchesSearch(q, l.ID, l.Name, l.Address) {
			out = append(out, h.toResponse(l))
		}
	}
	return c.JSON(dto.NewList(out))
}

// GetByID godoc
// @Summary      Obtener ubicación por ID
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	l, ok := h.store.Location(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
	}
	return c.JSON(h.toResponse(l))
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LocationRequest  true  "Datos de la ubicación"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	return h.upsert(c, "", fiber.StatusCreated)
}

// Update godoc
// @Summary      Editar ubicación (un id distinto en el cuerpo la renombra)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID actual de la ubicación"
// @Param        body  body  dto.LocationRequest  true  "Datos de la ubicación"
// @Success      200   {object}  dto.LocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	return h.upsert(c, id, fiber.StatusOK)
}

func (h *LocationHandler) upsert(c *fiber.Ctx, originalID string, status int) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(&in); err != nil {
		return writeError(c, err)
	}
	l, err := h.store.UpsertLocation(c.UserContext(), originalID, inventory.LocationInput{
		ID: in.ID, Name: in.Name, Address: in.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(status).JSON(h.toResponse(l))
}

// Delete godoc
// @Summary      Eliminar ubicación (sus movimientos se conservan)
// @Tags         locations
// @Security     Bearer
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if !h.store.DeleteLocation(c.UserContext(), id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *LocationHandler) toResponse(l entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:         l.ID,
		Name:       l.Name,
		Address:    l.Address,
		StockItems: h.store.LocationStockItems(l.ID),
		CreatedAt:  l.CreatedAt,
	}
}
