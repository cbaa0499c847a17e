package repository

import (
	"context"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// ShoeMasterRepository puerto de persistencia para tipos de calzado.
// Create/Update devuelven *domain.DuplicateError si el nombre ya existe.
type ShoeMasterRepository interface {
	Create(ctx context.Context, m *entity.ShoeMaster) error
	GetByID(ctx context.Context, id string) (*entity.ShoeMaster, error)
	GetByShoeType(ctx context.Context, shoeType string) (*entity.ShoeMaster, error)
	Update(ctx context.Context, m *entity.ShoeMaster) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.ShoeMaster, error)
}

// LeatherMasterRepository puerto de persistencia para tipos de cuero.
type LeatherMasterRepository interface {
	Create(ctx context.Context, m *entity.LeatherMaster) error
	GetByID(ctx context.Context, id string) (*entity.LeatherMaster, error)
	Update(ctx context.Context, m *entity.LeatherMaster) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.LeatherMaster, error)
}

// MaklunMasterRepository puerto de persistencia para subcontratistas.
type MaklunMasterRepository interface {
	Create(ctx context.Context, m *entity.MaklunMaster) error
	GetByID(ctx context.Context, id string) (*entity.MaklunMaster, error)
	Update(ctx context.Context, m *entity.MaklunMaster) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.MaklunMaster, error)
}
