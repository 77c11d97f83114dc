package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lmedina/abarrotes-api/internal/application/dto"
	"github.com/lmedina/abarrotes-api/internal/domain"
	"github.com/lmedina/abarrotes-api/internal/domain/entity"
	"github.com/lmedina/abarrotes-api/internal/domain/expiration"
	"github.com/lmedina/abarrotes-api/internal/domain/repository"
	"github.com/lmedina/abarrotes-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos y el reporte de caducidad.
// El stock no se edita aquí salvo por corrección directa del usuario; los
// movimientos de entrada/salida pasan por el coordinador de inventario.
type ProductUseCase struct {
	repo     repository.ProductRepository
	log      *logger.Logger
	nearDays int
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger, nearDays int) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log, nearDays: nearDays, now: time.Now}
}

// WithClock fija el reloj; solo para tests.
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

// List devuelve todos los productos anotados con su estado de caducidad.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, uc.toResponse(p, now))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID devuelve un producto anotado o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := uc.toResponse(*p, uc.now())
	return &out, nil
}

// Create valida la entrada, calcula el siguiente id numérico y crea el
// producto con ese id explícito.
//
// La estrategia de id (max conocido + 1) se conserva por compatibilidad con
// el backend existente; es frágil ante creaciones concurrentes.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := uc.now()
	if err := uc.validateCreate(in, now); err != nil {
		return nil, err
	}

	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	nextID := int64(1)
	for _, p := range products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	created, err := uc.repo.Create(ctx, entity.Product{
		ID:             nextID,
		Name:           strings.TrimSpace(in.Name),
		Price:          *in.Price,
		Stock:          *in.Stock,
		ExpirationDate: in.ExpirationDate,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("producto creado")
	out := uc.toResponse(*created, now)
	return &out, nil
}

// Update actualiza parcialmente un producto; valida solo los campos enviados.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := repository.ProductPatch{
		Name:           in.Name,
		Price:          in.Price,
		Stock:          in.Stock,
		ExpirationDate: in.ExpirationDate,
	}
	now := uc.now()
	if err := uc.validatePatch(in, now); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput)
	}

	updated, err := uc.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	out := uc.toResponse(*updated, now)
	return &out, nil
}

// Delete elimina un producto. Sus movimientos quedan en el libro y el
// historial los mostrará como "producto no encontrado".
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}

// Estados admitidos como filtro del reporte de caducidad.
const FilterAll = "all"

// ListExpiration devuelve el reporte de caducidad: productos anotados,
// filtrables por estado y por búsqueda en el nombre, ordenados del más
// urgente al menos urgente.
func (uc *ProductUseCase) ListExpiration(ctx context.Context, status, search string) (*dto.ProductListResponse, error) {
	switch status {
	case "", FilterAll,
		string(expiration.StatusExpired),
		string(expiration.StatusNearExpiry),
		string(expiration.StatusCurrent):
	default:
		return nil, fmt.Errorf("%w: estado de filtro %q", domain.ErrInvalidInput, status)
	}

	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	search = strings.ToLower(strings.TrimSpace(search))
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		r := uc.toResponse(p, now)
		if status != "" && status != FilterAll && r.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		items = append(items, r)
	}

	// Más urgente primero; las filas sin fecha válida al final.
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].DaysUntil, items[j].DaysUntil
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func (uc *ProductUseCase) validateCreate(in dto.CreateProductRequest, now time.Time) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price == nil || in.Price.IsNegative() {
		return fmt.Errorf("%w: price debe ser un número >= 0", domain.ErrInvalidInput)
	}
	if in.Stock == nil || in.Stock.IsNegative() {
		return fmt.Errorf("%w: stock debe ser un número >= 0", domain.ErrInvalidInput)
	}
	return uc.validateExpirationDate(in.ExpirationDate, now)
}

func (uc *ProductUseCase) validatePatch(in dto.UpdateProductRequest, now time.Time) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return fmt.Errorf("%w: price debe ser >= 0", domain.ErrInvalidInput)
	}
	if in.Stock != nil && in.Stock.IsNegative() {
		return fmt.Errorf("%w: stock debe ser >= 0", domain.ErrInvalidInput)
	}
	if in.ExpirationDate != nil {
		return uc.validateExpirationDate(*in.ExpirationDate, now)
	}
	return nil
}

// validateExpirationDate exige fecha válida y no anterior a hoy. Solo aplica
// a escrituras; productos ya guardados con fecha pasada siguen clasificando
// como vencidos.
func (uc *ProductUseCase) validateExpirationDate(date string, now time.Time) error {
	days, err := expiration.DaysUntil(date, now)
	if err != nil {
		return err
	}
	if days < 0 {
		return fmt.Errorf("%w: la fecha de caducidad no puede estar en el pasado", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *ProductUseCase) toResponse(p entity.Product, now time.Time) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Stock:          p.Stock,
		ExpirationDate: p.ExpirationDate,
	}
	days, err := expiration.DaysUntil(p.ExpirationDate, now)
	if err != nil {
		// Fecha corrupta en el backend: la fila se muestra sin estado.
		return out
	}
	status, _ := expiration.ClassifyWindow(p.ExpirationDate, now, uc.nearDays)
	out.Status = string(status)
	out.DaysUntil = &days
	return out
}
