package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmedina/abarrotes-api/internal/application/dto"
	"github.com/lmedina/abarrotes-api/internal/application/inventory"
	"github.com/lmedina/abarrotes-api/internal/domain/entity"
	"github.com/lmedina/abarrotes-api/internal/domain/expiration"
	"github.com/lmedina/abarrotes-api/internal/domain/repository"
)

// latestLimit cuántos movimientos recientes muestra el tablero.
const latestLimit = 8

// DashboardUseCase arma el resumen del tablero principal a partir de
// instantáneas frescas de las tres colecciones. No hay caché: cada consulta
// relee el backend.
type DashboardUseCase struct {
	products repository.ProductRepository
	entries  repository.MovementRepository
	outputs  repository.MovementRepository
	nearDays int
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	entries repository.MovementRepository,
	outputs repository.MovementRepository,
	nearDays int,
) *DashboardUseCase {
	return &DashboardUseCase{
		products: products,
		entries:  entries,
		outputs:  outputs,
		nearDays: nearDays,
		now:      time.Now,
	}
}

// WithClock fija el reloj; solo para tests.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Summary calcula los indicadores del tablero: stock total en kilogramos,
// valor del inventario (sum precio*stock), pérdida por caducados, valor en
// riesgo por caducar, y los últimos movimientos con nombre de producto.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := uc.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	outputs, err := uc.outputs.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	totals := dto.DashboardTotals{
		Products:            len(products),
		StockTotalKg:        decimal.Zero,
		InventoryValue:      decimal.Zero,
		ExpiredLossValue:    decimal.Zero,
		NearExpiryRiskValue: decimal.Zero,
	}
	expiring := make([]dto.ProductResponse, 0)

	for _, p := range products {
		totals.StockTotalKg = totals.StockTotalKg.Add(p.Stock)
		value := p.Price.Mul(p.Stock)
		totals.InventoryValue = totals.InventoryValue.Add(value)

		status, err := expiration.ClassifyWindow(p.ExpirationDate, now, uc.nearDays)
		if err != nil {
			// Fecha corrupta: cuenta en los totales generales pero no en los
			// indicadores de caducidad.
			continue
		}
		switch status {
		case expiration.StatusExpired:
			totals.ExpiredCount++
			totals.ExpiredLossValue = totals.ExpiredLossValue.Add(value)
			expiring = append(expiring, uc.annotate(p, now))
		case expiration.StatusNearExpiry:
			totals.NearExpiryCount++
			totals.NearExpiryRiskValue = totals.NearExpiryRiskValue.Add(value)
			expiring = append(expiring, uc.annotate(p, now))
		}
	}

	// Más urgente primero.
	sort.SliceStable(expiring, func(i, j int) bool {
		di, dj := expiring[i].DaysUntil, expiring[j].DaysUntil
		if di == nil || dj == nil {
			return dj == nil
		}
		return *di < *dj
	})

	names := inventory.NameIndex(products)
	return &dto.DashboardResponse{
		Totals:        totals,
		LatestEntries: latest(inventory.BuildRows(entries, names)),
		LatestOutputs: latest(inventory.BuildRows(outputs, names)),
		ExpiringSoon:  expiring,
	}, nil
}

func (uc *DashboardUseCase) annotate(p entity.Product, now time.Time) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Stock:          p.Stock,
		ExpirationDate: p.ExpirationDate,
	}
	if days, err := expiration.DaysUntil(p.ExpirationDate, now); err == nil {
		status, _ := expiration.ClassifyWindow(p.ExpirationDate, now, uc.nearDays)
		out.Status = string(status)
		out.DaysUntil = &days
	}
	return out
}

func latest(rows []dto.MovementRow) []dto.MovementRow {
	if len(rows) > latestLimit {
		return rows[:latestLimit]
	}
	return rows
}
