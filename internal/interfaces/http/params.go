package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/domain"
)

// idParam devuelve el parámetro :id decodificado. Los ids son texto libre (espacios, "/", acentos)
// y Fiber entrega el segmento tal como llegó en la URL.
func idParam(c *fiber.Ctx) (string, error) {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return "", fmt.Errorf("%w: id mal codificado en la ruta", domain.ErrInvalidInput)
	}
	return id, nil
}
