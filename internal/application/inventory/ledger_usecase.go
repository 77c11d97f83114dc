// Package inventory implementa el coordinador del libro de movimientos:
// todo movimiento confirmado queda exactamente una vez en el historial
// (entries/outputs) y reflejado en el stock vivo del producto, y una salida
// nunca deja el stock por debajo de cero.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lmedina/abarrotes-api/internal/application/dto"
	"github.com/lmedina/abarrotes-api/internal/domain"
	"github.com/lmedina/abarrotes-api/internal/domain/entity"
	"github.com/lmedina/abarrotes-api/internal/domain/repository"
	"github.com/lmedina/abarrotes-api/pkg/logger"
	"github.com/lmedina/abarrotes-api/pkg/metrics"
)

// LedgerUseCase coordina la secuencia de dos pasos "registrar movimiento,
// luego ajustar stock" contra el backend.
//
// La secuencia no es transaccional: si el ajuste de stock falla después de
// registrar el movimiento, la operación termina en fallo parcial
// (domain.ErrPartialFailure) y NO se revierte el registro — el libro es
// append-only y la inconsistencia se concilia manualmente.
//
// No hay control de concurrencia entre escritores simultáneos sobre el mismo
// producto: dos salidas concurrentes pueden pasar ambas la validación y
// sobregirar el stock. Limitación conocida y asumida para la escala objetivo
// (un solo cliente interactivo); con varios escritores el ajuste debería
// migrar a un update transaccional o compare-and-swap del backend.
type LedgerUseCase struct {
	products repository.ProductRepository
	entries  repository.MovementRepository
	outputs  repository.MovementRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewLedgerUseCase construye el coordinador.
func NewLedgerUseCase(
	products repository.ProductRepository,
	entries repository.MovementRepository,
	outputs repository.MovementRepository,
	log *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		products: products,
		entries:  entries,
		outputs:  outputs,
		log:      log,
		now:      time.Now,
	}
}

// WithClock fija el reloj; solo para tests.
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// RecordEntry registra una entrada de stock: añade el movimiento al libro y
// después incrementa el stock del producto en quantity kilogramos.
func (uc *LedgerUseCase) RecordEntry(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementCommitResponse, error) {
	if err := uc.validate(entity.MovementTypeEntry, in); err != nil {
		return nil, err
	}

	// Precondición: el producto debe existir antes de tocar el libro.
	if _, err := uc.products.GetByID(ctx, in.ProductID); err != nil {
		metrics.RecordRejection(entity.MovementTypeEntry, "product_not_found")
		return nil, err
	}

	return uc.commit(ctx, entity.MovementTypeEntry, uc.entries, in, false)
}

// RecordOutput registra una salida de stock. Antes de escribir nada revalida
// con una lectura fresca que quantity no exceda el stock actual; si excede,
// la operación se rechaza con domain.ErrInsufficientStock y el libro queda
// intacto.
func (uc *LedgerUseCase) RecordOutput(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementCommitResponse, error) {
	if err := uc.validate(entity.MovementTypeOutput, in); err != nil {
		return nil, err
	}

	// Puerta de validación con lectura fresca, antes de cualquier escritura.
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		metrics.RecordRejection(entity.MovementTypeOutput, "product_not_found")
		return nil, err
	}
	if in.Quantity.GreaterThan(product.Stock) {
		metrics.RecordRejection(entity.MovementTypeOutput, "insufficient_stock")
		return nil, fmt.Errorf("%w: se piden %s kg y hay %s kg del producto %d",
			domain.ErrInsufficientStock, in.Quantity.String(), product.Stock.String(), in.ProductID)
	}

	return uc.commit(ctx, entity.MovementTypeOutput, uc.outputs, in, true)
}

// commit ejecuta la secuencia de dos pasos. El orden importa: el movimiento
// debe quedar confirmado en el libro antes de tocar el stock, para que un
// fallo del paso 2 deje rastro auditable de lo que se intentó.
func (uc *LedgerUseCase) commit(
	ctx context.Context,
	movType string,
	ledger repository.MovementRepository,
	in dto.RecordMovementRequest,
	subtract bool,
) (*dto.MovementCommitResponse, error) {
	date := uc.now()
	if in.Date != nil {
		date = *in.Date
	}

	// Paso 1: añadir el movimiento al libro.
	movement, err := ledger.Create(ctx, entity.Movement{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      date,
	})
	if err != nil {
		// Nada se escribió: fallo limpio, el usuario puede reintentar.
		return nil, err
	}

	// Paso 2: releer el producto y persistir el nuevo stock.
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, uc.partialFailure(movType, movement, in.ProductID, err)
	}
	newStock := product.Stock.Add(in.Quantity)
	if subtract {
		newStock = product.Stock.Sub(in.Quantity)
	}
	updated, err := uc.products.Patch(ctx, in.ProductID, repository.ProductPatch{Stock: &newStock})
	if err != nil {
		return nil, uc.partialFailure(movType, movement, in.ProductID, err)
	}

	metrics.RecordMovement(movType)
	uc.log.Info().
		Str("type", movType).
		Int64("movement_id", movement.ID).
		Int64("product_id", updated.ID).
		Str("quantity_kg", in.Quantity.String()).
		Str("new_stock_kg", updated.Stock.String()).
		Msg("movimiento confirmado")

	return &dto.MovementCommitResponse{
		Movement: dto.MovementRow{
			ID:          movement.ID,
			ProductID:   movement.ProductID,
			ProductName: updated.Name,
			Quantity:    movement.Quantity,
			Date:        movement.Date,
		},
		Product: dto.ProductResponse{
			ID:             updated.ID,
			Name:           updated.Name,
			Price:          updated.Price,
			Stock:          updated.Stock,
			ExpirationDate: updated.ExpirationDate,
		},
	}, nil
}

// partialFailure deja constancia del estado terminal inconsistente: el
// movimiento existe en el libro pero el stock no se ajustó.
func (uc *LedgerUseCase) partialFailure(movType string, movement *entity.Movement, productID int64, cause error) error {
	metrics.RecordPartialFailure(movType)
	uc.log.Error().
		Err(cause).
		Str("type", movType).
		Int64("movement_id", movement.ID).
		Int64("product_id", productID).
		Msg("fallo parcial: movimiento en el libro sin ajuste de stock, requiere conciliación manual")
	return fmt.Errorf("%w: movimiento %d del producto %d: %v",
		domain.ErrPartialFailure, movement.ID, productID, cause)
}

func (uc *LedgerUseCase) validate(movType string, in dto.RecordMovementRequest) error {
	if in.ProductID <= 0 {
		metrics.RecordRejection(movType, "validation")
		return fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsPositive() {
		metrics.RecordRejection(movType, "validation")
		return fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	return nil
}

// ListEntries devuelve el historial de entradas, más reciente primero.
func (uc *LedgerUseCase) ListEntries(ctx context.Context) (*dto.MovementListResponse, error) {
	return uc.list(ctx, uc.entries)
}

// ListOutputs devuelve el historial de salidas, más reciente primero.
func (uc *LedgerUseCase) ListOutputs(ctx context.Context) (*dto.MovementListResponse, error) {
	return uc.list(ctx, uc.outputs)
}

func (uc *LedgerUseCase) list(ctx context.Context, ledger repository.MovementRepository) (*dto.MovementListResponse, error) {
	movements, err := ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := BuildRows(movements, NameIndex(products))
	return &dto.MovementListResponse{Items: rows, Total: len(rows)}, nil
}

// NameIndex construye el índice id -> nombre de producto.
func NameIndex(products []entity.Product) map[int64]string {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names
}

// BuildRows convierte movimientos en filas de historial con el nombre del
// producto resuelto, ordenadas por fecha descendente. Un movimiento cuyo
// producto ya no existe se conserva con una etiqueta explícita: nunca se
// descarta en silencio.
func BuildRows(movements []entity.Movement, names map[int64]string) []dto.MovementRow {
	rows := make([]dto.MovementRow, 0, len(movements))
	for _, m := range movements {
		name, ok := names[m.ProductID]
		if !ok {
			name = MissingProductLabel(m.ProductID)
		}
		rows = append(rows, dto.MovementRow{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: name,
			Quantity:    m.Quantity,
			Date:        m.Date,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

// MissingProductLabel etiqueta para movimientos cuyo producto no existe.
func MissingProductLabel(id int64) string {
	return fmt.Sprintf("Producto no encontrado (ID: %d)", id)
}
