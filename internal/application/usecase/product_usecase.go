package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-pyme/internal/application/dto"
	"github.com/jhoicas/inventario-pyme/internal/domain"
	"github.com/jhoicas/inventario-pyme/internal/domain/entity"
	invdomain "github.com/jhoicas/inventario-pyme/internal/domain/inventory"
	"github.com/jhoicas/inventario-pyme/internal/domain/repository"
)

const maxSKUAttempts = 5

// ProductUseCase casos de uso CRUD para productos. La cantidad solo cambia vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// generateSKU SKU-<unix ms>-<4 hex>.
func (uc *ProductUseCase) generateSKU() string {
	return fmt.Sprintf("SKU-%d-%s", uc.now().UnixMilli(), strings.ToUpper(uuid.New().String()[:4]))
}

// resolveSKU valida un SKU recibido o genera uno libre. Un SKU generado que ya
// existe se vuelve a generar; uno recibido que ya existe es domain.ErrDuplicate.
func (uc *ProductUseCase) resolveSKU(ctx context.Context, sku string) (string, error) {
	generated := sku == ""
	for attempt := 0; attempt < maxSKUAttempts; attempt++ {
		if generated {
			sku = uc.generateSKU()
		}
		existing, err := uc.repo.GetBySKU(ctx, sku)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return sku, nil
		}
		if !generated {
			break
		}
	}
	return "", domain.ErrDuplicate
}

// Create crea un nuevo producto. SKU repetido -> domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sku, err := uc.resolveSKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	reorder := entity.DefaultReorderLevel
	if in.ReorderLevel != nil {
		reorder = *in.ReorderLevel
	}
	product := &entity.Product{
		SKU:          sku,
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		Quantity:     in.Quantity,
		ReorderLevel: reorder,
		Description:  in.Description,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(invdomain.WithStock(product))
	return &resp, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	resp := dto.NewProductResponse(invdomain.WithStock(product))
	return &resp, nil
}

// List lista el catálogo con el estado de stock de cada producto.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search coincidencia parcial en nombre, SKU o categoría. q es obligatorio.
func (uc *ProductUseCase) Search(ctx context.Context, q string) ([]dto.ProductResponse, error) {
	q = strings.TrimSpace(q)
	if err := dto.ValidateVar("q", q, "required"); err != nil {
		return nil, err
	}
	list, err := uc.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualización parcial; nil si el producto no existe. Un SKU nuevo se
// valida contra los demás productos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.SKU.HasValue() {
		in.SKU.Value = strings.TrimSpace(in.SKU.Value)
		existing, err := uc.repo.GetBySKU(ctx, in.SKU.Value)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	product, err := uc.repo.Update(ctx, id, in.ToPatch())
	if err != nil || product == nil {
		return nil, err
	}
	resp := dto.NewProductResponse(invdomain.WithStock(product))
	return &resp, nil
}

// Delete elimina un producto por ID. Devuelve false si no existía. Los movimientos
// del producto se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]entity.ProductWithStock, 0, len(list))
	for _, p := range list {
		out = append(out, invdomain.WithStock(p))
	}
	return dto.NewProductResponses(out)
}
