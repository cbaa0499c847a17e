package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse fila de stock de calzado.
type InventoryItemResponse struct {
	ID       string `json:"id"`
	ShoeType string `json:"shoeType"`
	Size     int    `json:"size"`
	Quantity int    `json:"quantity"`
}

// LeatherItemResponse lote de cuero.
type LeatherItemResponse struct {
	ID              string          `json:"id"`
	LeatherMasterID string          `json:"leatherMasterId"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Supplier        string          `json:"supplier"`
}

// TransactionItemResponse {shoeType, size} para calzado o {name} para cuero.
type TransactionItemResponse struct {
	ShoeType *string `json:"shoeType,omitempty"`
	Size     *int    `json:"size,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// TransactionResponse entrada del libro.
type TransactionResponse struct {
	ID        string                  `json:"id"`
	Date      time.Time               `json:"date"`
	Type      string                  `json:"type"`
	Item      TransactionItemResponse `json:"item"`
	Quantity  decimal.Decimal         `json:"quantity"`
	Warehouse string                  `json:"warehouse"`
	Source    string                  `json:"source,omitempty"`
	Notes     string                  `json:"notes,omitempty"`
	CreatedBy string                  `json:"createdBy,omitempty"`
}

// AppDataResponse snapshot completo para GET /api/data/all.
// Inventory: una lista por etapa activa del flujo más "leather".
type AppDataResponse struct {
	Inventory      map[string]any        `json:"inventory"`
	Transactions   []TransactionResponse `json:"transactions"`
	ShoeMasters    []ShoeMasterResponse  `json:"shoeMasters"`
	MaklunMasters  []MasterResponse      `json:"maklunMasters"`
	LeatherMasters []MasterResponse      `json:"leatherMasters"`
}

// TransactionQuery filtros de GET /api/transactions.
type TransactionQuery struct {
	From      string `query:"from"`
	To        string `query:"to"`
	Warehouse string `query:"warehouse" validate:"omitempty,oneof=wip nearly_finished finishing finished_goods leather"`
	Type      string `query:"type" validate:"omitempty,oneof=IN OUT"`
	Q         string `query:"q"`
	Limit     int    `query:"limit" validate:"min=0,max=1000"`
	Offset    int    `query:"offset" validate:"min=0"`
}

// TransactionListResponse lista filtrada del historial.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
