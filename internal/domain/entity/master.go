package entity

import (
	"slices"
	"time"
)

// ShoeMaster tipo de calzado con sus tallas válidas (ascendentes, sin duplicados).
type ShoeMaster struct {
	ID        string
	ShoeType  string
	Sizes     []int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSize indica si la talla está registrada para este tipo.
func (m *ShoeMaster) HasSize(size int) bool {
	return slices.Contains(m.Sizes, size)
}

// LeatherMaster tipo de cuero.
type LeatherMaster struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaklunMaster subcontratista (maklun).
type MaklunMaster struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
