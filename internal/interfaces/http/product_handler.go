package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	store *inventory.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *inventory.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List godoc
// @Summary      Listar productos con su stock total
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por texto"
// @Success      200     {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := c.Query("search")
	var out []dto.ProductResponse
	for _, p := range h.store.Products() {
		r := h.toResponse(p)
		if matchesSearch(q, r.ID, r.Name, r.Description, strconv.Itoa(r.TotalStock)) {
			out = append(out, r)
		}
	}
	return c.JSON(dto.NewList(out))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	p, ok := h.store.Product(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(h.toResponse(p))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	return h.upsert(c, "", fiber.StatusCreated)
}

// Update godoc
// @Summary      Editar producto (un id distinto en el cuerpo lo renombra)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID actual del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	return h.upsert(c, id, fiber.StatusOK)
}

func (h *ProductHandler) upsert(c *fiber.Ctx, originalID string, status int) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(&in); err != nil {
		return writeError(c, err)
	}
	p, err := h.store.UpsertProduct(c.UserContext(), originalID, inventory.ProductInput{
		ID: in.ID, Name: in.Name, Description: in.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(status).JSON(h.toResponse(p))
}

// Delete godoc
// @Summary      Eliminar producto (sus movimientos se conservan)
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if !h.store.DeleteProduct(c.UserContext(), id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stock godoc
// @Summary      Stock total del producto y desglose por ubicación
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	byLocation := h.store.StockByLocation()[id]
	if byLocation == nil {
		byLocation = map[string]int{}
	}
	// Un producto borrado con movimientos sigue teniendo stock derivable.
	return c.JSON(dto.ProductStockResponse{
		ProductID:  id,
		TotalStock: h.store.TotalStock(id),
		ByLocation: byLocation,
	})
}

func (h *ProductHandler) toResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TotalStock:  h.store.TotalStock(p.ID),
		CreatedAt:   p.CreatedAt,
	}
}
