package inventory

import (
	"context"

	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// Enricher resuelve los nombres de producto, proveedor y cliente de los movimientos.
// Tolera referencias colgantes: producto inexistente -> placeholders; proveedor o
// cliente inexistente -> nombre ausente.
type Enricher struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
}

// NewEnricher construye el enriquecedor.
func NewEnricher(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
) *Enricher {
	return &Enricher{productRepo: productRepo, supplierRepo: supplierRepo, customerRepo: customerRepo}
}

// Enrich devuelve las vistas detalladas en el mismo orden de entrada.
func (e *Enricher) Enrich(ctx context.Context, txs []*entity.StockTransaction) ([]entity.StockTransactionWithDetails, error) {
	products := map[string]*entity.Product{}
	suppliers := map[string]*string{}
	customers := map[string]*string{}

	out := make([]entity.StockTransactionWithDetails, 0, len(txs))
	for _, t := range txs {
		d := entity.StockTransactionWithDetails{
			StockTransaction: *t,
			ProductName:      entity.UnknownProductName,
			ProductSKU:       entity.UnknownProductSKU,
		}

		p, seen := products[t.ProductID]
		if !seen {
			var err error
			if p, err = e.productRepo.GetByID(ctx, t.ProductID); err != nil {
				return nil, err
			}
			products[t.ProductID] = p
		}
		if p != nil {
			d.ProductName = p.Name
			d.ProductSKU = p.SKU
		}

		if t.SupplierID != nil {
			name, seen := suppliers[*t.SupplierID]
			if !seen {
				s, err := e.supplierRepo.GetByID(ctx, *t.SupplierID)
				if err != nil {
					return nil, err
				}
				if s != nil {
					name = &s.Name
				}
				suppliers[*t.SupplierID] = name
			}
			d.SupplierName = name
		}

		if t.CustomerID != nil {
			name, seen := customers[*t.CustomerID]
			if !seen {
				c, err := e.customerRepo.GetByID(ctx, *t.CustomerID)
				if err != nil {
					return nil, err
				}
				if c != nil {
					name = &c.Name
				}
				customers[*t.CustomerID] = name
			}
			d.CustomerName = name
		}

		out = append(out, d)
	}
	return out, nil
}
