package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/application/inventory"
)

// StockTransactionHandler maneja el registro y la consulta de movimientos de stock.
type StockTransactionHandler struct {
	uc *inventory.RecordTransactionUseCase
}

// NewStockTransactionHandler construye el handler.
func NewStockTransactionHandler(uc *inventory.RecordTransactionUseCase) *StockTransactionHandler {
	return &StockTransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  Registra la entrada o salida y ajusta la cantidad del producto en la misma
//
//	transacción. Una salida mayor que el stock deja la cantidad en 0.
//
// @Tags         stock-transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockTransactionRequest  true  "product_id, type (in|out), reason, quantity, unit_price"
// @Success      201   {object}  dto.StockTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions [post]
func (h *StockTransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordFromRequest(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más reciente primero)
// @Tags         stock-transactions
// @Produce      json
// @Success      200  {array}  dto.StockTransactionResponse
// @Router       /api/stock-transactions [get]
func (h *StockTransactionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockTransactionDetailsResponses(list))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         stock-transactions
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.StockTransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id} [get]
func (h *StockTransactionHandler) GetByID(c *fiber.Ctx) error {
	tx, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if tx == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(dto.NewStockTransactionDetailsResponse(*tx))
}
