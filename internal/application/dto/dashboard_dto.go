package dto

import "github.com/shopspring/decimal"

// DashboardTotals indicadores agregados del inventario.
type DashboardTotals struct {
	Products            int             `json:"products"`
	StockTotalKg        decimal.Decimal `json:"stock_total_kg"`
	InventoryValue      decimal.Decimal `json:"inventory_value"`        // sum(price * stock)
	ExpiredCount        int             `json:"expired_count"`
	ExpiredLossValue    decimal.Decimal `json:"expired_loss_value"`     // valor de lo ya caducado
	NearExpiryCount     int             `json:"near_expiry_count"`
	NearExpiryRiskValue decimal.Decimal `json:"near_expiry_risk_value"` // valor en riesgo por caducar
}

// DashboardResponse resumen del tablero principal.
type DashboardResponse struct {
	Totals        DashboardTotals   `json:"totals"`
	LatestEntries []MovementRow     `json:"latest_entries"`
	LatestOutputs []MovementRow     `json:"latest_outputs"`
	ExpiringSoon  []ProductResponse `json:"expiring_soon"` // caducados y por caducar
}
