package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnSupplier lote sintético donde se acumula el cuero devuelto.
const ReturnSupplier = "Retur"

// ShoeStock cantidad actual de un tipo/talla en un almacén del flujo.
// Única por (ShoeMasterID, Size, Warehouse); una fila con cantidad 0 no se conserva.
type ShoeStock struct {
	ID           string
	ShoeMasterID string
	ShoeType     string
	Size         int
	Quantity     int
	Warehouse    Warehouse
	UpdatedAt    time.Time
}

// LeatherStock cantidad actual de un tipo de cuero por lote de proveedor.
// Única por (LeatherMasterID, Supplier). Cantidad con máximo 2 decimales.
type LeatherStock struct {
	ID              string
	LeatherMasterID string
	LeatherName     string
	Supplier        string
	Quantity        decimal.Decimal
	UpdatedAt       time.Time
}
