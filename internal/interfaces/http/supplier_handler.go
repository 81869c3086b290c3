package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	supplier, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// List GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if supplier == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return c.JSON(supplier)
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	supplier, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if supplier == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return c.JSON(supplier)
}

// Delete DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return notFound(c, "proveedor no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
