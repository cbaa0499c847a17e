package inventory

import (
	"fmt"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// Notas fijas del libro de transacciones.
const (
	NoteSale       = "Penjualan"
	NoteAdjustment = "Penyesuaian Stok"
	NoteDeletion   = "Penghapusan Stok"
)

// SaleNote "Penjualan ke: {cliente}" o "Penjualan" sin cliente.
func SaleNote(customerName string) string {
	if customerName == "" {
		return NoteSale
	}
	return "Penjualan ke: " + customerName
}

// ReleaseNote salida no comercial.
func ReleaseNote(releasedTo string) string {
	return "Dikeluarkan ke: " + releasedTo
}

// LeatherReleaseNote salida de cuero; incluye el lote para trazabilidad.
func LeatherReleaseNote(releasedTo, supplier string) string {
	return fmt.Sprintf("Dikeluarkan ke: %s. Dari supplier: %s.", releasedTo, supplier)
}

// ReturnNote nota de devolución de cuero.
func ReturnNote(notes, returneeName string) string {
	return fmt.Sprintf("Ket: %s. Dikembalikan oleh: %s.", notes, returneeName)
}

// TransferOutNote nota del lado OUT de una transferencia.
func TransferOutNote(to entity.Warehouse, destination string) string {
	return withDestination("Transfer ke "+to.DisplayName(), destination)
}

// TransferInNote nota del lado IN de una transferencia.
func TransferInNote(from entity.Warehouse, destination string) string {
	return withDestination("Transfer dari "+from.DisplayName(), destination)
}

func withDestination(note, destination string) string {
	if destination == "" {
		return note
	}
	return note + " - Tujuan: " + destination
}

// WithSupplier agrega el lote a notas de ajuste/borrado de cuero.
func WithSupplier(note, supplier string) string {
	return fmt.Sprintf("%s (Supplier: %s)", note, supplier)
}
