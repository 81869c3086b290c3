package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

// SeedResult resumen de una carga de catálogo.
type SeedResult struct {
	Created []string
	Skipped []string
}

// SeedUseCase carga un catálogo inicial de productos. Es idempotente: un producto
// cuyo nombre ya existe no se vuelve a crear.
type SeedUseCase struct {
	repo     repository.ProductRepository
	products *ProductUseCase
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(repo repository.ProductRepository) *SeedUseCase {
	return &SeedUseCase{repo: repo, products: NewProductUseCase(repo)}
}

// Seed crea los productos del catálogo que falten (comparando por nombre exacto).
func (uc *SeedUseCase) Seed(ctx context.Context, catalog []dto.CreateProductRequest) (*SeedResult, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}

	res := &SeedResult{}
	for _, item := range catalog {
		if names[item.Name] {
			res.Skipped = append(res.Skipped, item.Name)
			continue
		}
		if _, err := uc.products.Create(ctx, item); err != nil {
			return res, fmt.Errorf("crear %q: %w", item.Name, err)
		}
		names[item.Name] = true
		res.Created = append(res.Created, item.Name)
	}
	return res, nil
}

// DefaultCatalog catálogo de ferretería y tableros con el que arranca una tienda nueva.
func DefaultCatalog() []dto.CreateProductRequest {
	item := func(name, category string, price int64) dto.CreateProductRequest {
		return dto.CreateProductRequest{Name: name, Category: category, Price: decimal.NewFromInt(price)}
	}
	return []dto.CreateProductRequest{
		item("Door Handle", "Hardware", 300),
		item("Padlock", "Hardware", 700),
		item("Mortise Lock", "Hardware", 500),
		item("Hinges", "Hardware", 600),
		item("Door Closer", "Hardware", 800),
		item("Drawer Slide", "Hardware", 0),
		item("Plywood Sheet", "Plywood", 0),
		item("MDF Board", "Plywood", 0),
		item("Screws", "Hardware", 0),
		item("Nails", "Hardware", 0),
		item("Bolts", "Hardware", 0),
		item("Nuts", "Hardware", 0),
		item("Washers", "Hardware", 0),
		item("Angle Bracket", "Hardware", 0),
		item("Wall Plug", "Hardware", 0),
		item("Door Stopper", "Hardware", 0),
		item("Cabinet Knob", "Hardware", 0),
		item("Window Latch", "Hardware", 0),
		item("Tower Bolt", "Hardware", 0),
		item("Hasps & Staples", "Hardware", 0),
	}
}
