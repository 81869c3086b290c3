package http

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/inventario-pyme/internal/application/analytics"
	"github.com/jhoicas/inventario-pyme/internal/application/dto"
)

// ReportHandler expone el reporte de stock y las exportaciones CSV.
type ReportHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

var (
	stockCSVHeader       = []string{"sku", "name", "category", "price", "quantity", "reorder_level", "stock_status", "stock_value"}
	transactionCSVHeader = []string{"timestamp", "product_sku", "product_name", "type", "reason", "quantity", "unit_price", "total_value", "supplier", "customer", "notes"}
)

// GetStock GET /api/reports/stock
func (h *ReportHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.uc.StockReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportStock GET /api/reports/stock/export
func (h *ReportHandler) ExportStock(c *fiber.Ctx) error {
	list, err := h.uc.StockReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, stockCSVHeader)
	for _, p := range list {
		rows = append(rows, []string{
			p.SKU,
			p.Name,
			p.Category,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.ReorderLevel),
			string(p.StockStatus),
			p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))).StringFixed(2),
		})
	}
	return sendCSV(c, "stock-report", rows)
}

// ExportTransactions GET /api/reports/transactions/export
func (h *ReportHandler) ExportTransactions(c *fiber.Ctx) error {
	list, err := h.uc.TransactionReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, transactionCSVHeader)
	for _, t := range list {
		rows = append(rows, transactionCSVRow(t))
	}
	return sendCSV(c, "stock-transactions", rows)
}

func transactionCSVRow(t dto.StockTransactionResponse) []string {
	return []string{
		t.Timestamp.UTC().Format(time.RFC3339),
		t.ProductSKU,
		t.ProductName,
		string(t.Type),
		string(t.Reason),
		strconv.Itoa(t.Quantity),
		decimalCell(t.UnitPrice),
		decimalCell(t.TotalValue),
		stringCell(t.SupplierName),
		stringCell(t.CustomerName),
		stringCell(t.Notes),
	}
}

func decimalCell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func stringCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sendCSV(c *fiber.Ctx, name string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return respondError(c, err)
	}
	c.Attachment(name + "-" + time.Now().UTC().Format("20060102") + ".csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}
