package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("data tidak ditemukan")
	ErrMasterNotFound      = errors.New("master tidak ditemukan")
	ErrUserNotFound        = errors.New("pengguna tidak ditemukan")
	ErrInvalidInput        = errors.New("input tidak valid")
	ErrDuplicate           = errors.New("data sudah ada")
	ErrInUse               = errors.New("data masih digunakan")
	ErrUnauthorized        = errors.New("tidak terautentikasi")
	ErrForbidden           = errors.New("akses ditolak")
	ErrInsufficientStock   = errors.New("stok tidak mencukupi")
	ErrInvalidTransferFlow = errors.New("alur transfer tidak valid")
)

// ValidationError describe qué campo falló. Unwrap devuelve ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// InsufficientStockError lleva la cantidad disponible para mostrarla al usuario.
type InsufficientStockError struct {
	Available string
	Requested string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok tidak mencukupi: tersedia %s, diminta %s", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// DuplicateError nombra el valor que viola la unicidad.
type DuplicateError struct {
	Entity string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s \"%s\" sudah ada", e.Entity, e.Value)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// InUseError explica qué referencia impide el borrado.
type InUseError struct {
	Entity string
	Value  string
	Reason string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("tidak dapat menghapus %s \"%s\" karena %s", e.Entity, e.Value, e.Reason)
}

func (e *InUseError) Unwrap() error { return ErrInUse }
