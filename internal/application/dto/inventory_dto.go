package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Operaciones aceptadas en POST /api/inventory/shoe y /api/inventory/leather.
const (
	OperationAdd      = "add"
	OperationSell     = "sell"
	OperationRemove   = "remove"
	OperationTransfer = "transfer"
	OperationReturn   = "return"
)

// ShoeRefDTO tipo y talla de calzado.
type ShoeRefDTO struct {
	ShoeType string `json:"shoeType"`
	Size     int    `json:"size"`
}

// ShoeOperationRequest body para POST /api/inventory/shoe.
// Los campos requeridos dependen de operation (add | sell | remove | transfer).
type ShoeOperationRequest struct {
	Operation     string          `json:"operation" validate:"required,oneof=add sell remove transfer"`
	ItemID        string          `json:"itemId,omitempty" validate:"required_unless=Operation add"`
	Shoe          *ShoeRefDTO     `json:"shoe,omitempty" validate:"required_if=Operation add"`
	Quantity      decimal.Decimal `json:"quantity"`
	Warehouse     string          `json:"warehouse,omitempty" validate:"required_if=Operation add"`
	Source        string          `json:"source,omitempty"`
	FromWarehouse string          `json:"fromWarehouse,omitempty" validate:"required_if=Operation transfer"`
	ReleasedTo    string          `json:"releasedTo,omitempty" validate:"required_if=Operation remove"`
	CustomerName  string          `json:"customerName,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	Date          string          `json:"date,omitempty"`
}

// LeatherOperationRequest body para POST /api/inventory/leather (add | return | remove).
type LeatherOperationRequest struct {
	Operation       string          `json:"operation" validate:"required,oneof=add return remove"`
	ItemID          string          `json:"itemId,omitempty" validate:"required_if=Operation remove"`
	LeatherMasterID string          `json:"leatherMasterId,omitempty" validate:"required_unless=Operation remove"`
	Quantity        decimal.Decimal `json:"quantity"`
	Supplier        string          `json:"supplier,omitempty" validate:"required_if=Operation add"`
	ReturneeName    string          `json:"returneeName,omitempty" validate:"required_if=Operation return"`
	Notes           string          `json:"notes,omitempty" validate:"required_if=Operation return"`
	ReleasedTo      string          `json:"releasedTo,omitempty" validate:"required_if=Operation remove"`
	Date            string          `json:"date,omitempty"`
}

// UpdateQuantityRequest body para PUT /api/inventory/{shoe,leather}/:id.
type UpdateQuantityRequest struct {
	NewQuantity *decimal.Decimal `json:"newQuantity" validate:"required"`
}

// ParseDate acepta RFC3339 o YYYY-MM-DD; vacío devuelve nil (el motor usa la hora actual).
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
