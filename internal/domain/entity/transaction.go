package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType dirección del movimiento en el libro.
type TransactionType string

const (
	TransactionIN  TransactionType = "IN"
	TransactionOUT TransactionType = "OUT"
)

// ItemRef es el artículo movido: ShoeRef o LeatherRef.
type ItemRef interface {
	itemRef()
}

// ShoeRef referencia a calzado por tipo y talla.
type ShoeRef struct {
	ShoeType string
	Size     int
}

// LeatherRef referencia a cuero por nombre.
type LeatherRef struct {
	Name string
}

func (ShoeRef) itemRef()    {}
func (LeatherRef) itemRef() {}

// Transaction registro inmutable de un cambio de cantidad.
type Transaction struct {
	ID        string
	Date      time.Time
	Type      TransactionType
	Item      ItemRef
	Quantity  decimal.Decimal
	Warehouse Warehouse
	Source    string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo (+IN, -OUT).
func (t *Transaction) SignedQuantity() decimal.Decimal {
	if t.Type == TransactionOUT {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// TransactionFilter filtros de fila para el historial.
type TransactionFilter struct {
	From      *time.Time
	To        *time.Time
	Warehouse Warehouse
	Type      TransactionType
	Query     string
	Limit     int
	Offset    int
}
