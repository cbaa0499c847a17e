package usecase

import (
	"context"

	"github.com/jhoicas/gudang-sepatu/internal/application/dto"
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/catalog"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
	"github.com/jhoicas/gudang-sepatu/pkg/logger"
)

// CatalogUseCase CRUD de maestros (calzado, cuero, maklun).
// Los borrados verifican referencias y borran dentro de la misma transacción.
type CatalogUseCase struct {
	txRunner repository.TxRunner
	log      *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(txRunner repository.TxRunner, log *logger.Logger) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{txRunner: txRunner, log: log}
}

// ── calzado ───────────────────────────────────────────────────────────────────

// CreateShoeMaster crea un tipo de calzado con sus tallas.
func (uc *CatalogUseCase) CreateShoeMaster(ctx context.Context, in dto.ShoeMasterRequest) (*dto.ShoeMasterResponse, error) {
	m, err := newShoeMaster(in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.ShoeMasters.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", m.ID).Str("shoe_type", m.ShoeType).Ints("sizes", m.Sizes).Msg("master sepatu dibuat")
	return toShoeMasterResponse(m), nil
}

// UpdateShoeMaster reemplaza nombre y tallas.
func (uc *CatalogUseCase) UpdateShoeMaster(ctx context.Context, id string, in dto.ShoeMasterRequest) (*dto.ShoeMasterResponse, error) {
	m, err := newShoeMaster(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		cur, err := r.ShoeMasters.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		return r.ShoeMasters.Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", m.ID).Str("shoe_type", m.ShoeType).Msg("master sepatu diperbarui")
	return toShoeMasterResponse(m), nil
}

// DeleteShoeMaster rechaza el borrado si existe stock de ese tipo en cualquier almacén.
func (uc *CatalogUseCase) DeleteShoeMaster(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		m, err := r.ShoeMasters.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		used, err := r.ShoeStock.ExistsByShoeMaster(ctx, id)
		if err != nil {
			return err
		}
		if used {
			return &domain.InUseError{Entity: "tipe sepatu", Value: m.ShoeType, Reason: "masih ada stok di gudang"}
		}
		return r.ShoeMasters.Delete(ctx, id)
	})
	if err == nil {
		uc.log.Info().Str("id", id).Msg("master sepatu dihapus")
	}
	return err
}

// ListShoeMasters lista ordenada por tipo.
func (uc *CatalogUseCase) ListShoeMasters(ctx context.Context) ([]dto.ShoeMasterResponse, error) {
	var list []*entity.ShoeMaster
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		var err error
		list, err = r.ShoeMasters.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShoeMasterResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toShoeMasterResponse(m))
	}
	return out, nil
}

func newShoeMaster(in dto.ShoeMasterRequest) (*entity.ShoeMaster, error) {
	shoeType, err := catalog.NormalizeName("shoeType", in.ShoeType)
	if err != nil {
		return nil, err
	}
	sizes, err := catalog.ParseSizes(in.SizesStr)
	if err != nil {
		return nil, err
	}
	return &entity.ShoeMaster{ShoeType: shoeType, Sizes: sizes}, nil
}

func toShoeMasterResponse(m *entity.ShoeMaster) *dto.ShoeMasterResponse {
	return &dto.ShoeMasterResponse{ID: m.ID, ShoeType: m.ShoeType, Sizes: m.Sizes}
}

// ── cuero ─────────────────────────────────────────────────────────────────────

// CreateLeatherMaster crea un tipo de cuero.
func (uc *CatalogUseCase) CreateLeatherMaster(ctx context.Context, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := catalog.NormalizeName("name", in.Name)
	if err != nil {
		return nil, err
	}
	m := &entity.LeatherMaster{Name: name}
	if err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.LeatherMasters.Create(ctx, m)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", m.ID).Str("name", m.Name).Msg("master kulit dibuat")
	return &dto.MasterResponse{ID: m.ID, Name: m.Name}, nil
}

// UpdateLeatherMaster renombra un tipo de cuero.
func (uc *CatalogUseCase) UpdateLeatherMaster(ctx context.Context, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := catalog.NormalizeName("name", in.Name)
	if err != nil {
		return nil, err
	}
	m := &entity.LeatherMaster{ID: id, Name: name}
	if err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.LeatherMasters.Update(ctx, m)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", m.ID).Str("name", m.Name).Msg("master kulit diperbarui")
	return &dto.MasterResponse{ID: m.ID, Name: m.Name}, nil
}

// DeleteLeatherMaster rechaza el borrado si queda stock de ese cuero.
func (uc *CatalogUseCase) DeleteLeatherMaster(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		m, err := r.LeatherMasters.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		used, err := r.LeatherStock.ExistsByLeatherMaster(ctx, id)
		if err != nil {
			return err
		}
		if used {
			return &domain.InUseError{Entity: "jenis kulit", Value: m.Name, Reason: "masih ada stok kulit"}
		}
		return r.LeatherMasters.Delete(ctx, id)
	})
	if err == nil {
		uc.log.Info().Str("id", id).Msg("master kulit dihapus")
	}
	return err
}

// ListLeatherMasters lista ordenada por nombre.
func (uc *CatalogUseCase) ListLeatherMasters(ctx context.Context) ([]dto.MasterResponse, error) {
	var list []*entity.LeatherMaster
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		var err error
		list, err = r.LeatherMasters.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MasterResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MasterResponse{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// ── maklun ────────────────────────────────────────────────────────────────────

// CreateMaklunMaster registra un subcontratista.
func (uc *CatalogUseCase) CreateMaklunMaster(ctx context.Context, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := catalog.NormalizeName("name", in.Name)
	if err != nil {
		return nil, err
	}
	m := &entity.MaklunMaster{Name: name}
	if err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.MaklunMasters.Create(ctx, m)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", m.ID).Str("name", m.Name).Msg("master maklun dibuat")
	return &dto.MasterResponse{ID: m.ID, Name: m.Name}, nil
}

// UpdateMaklunMaster renombra un subcontratista. Las transacciones ya registradas conservan el nombre anterior.
func (uc *CatalogUseCase) UpdateMaklunMaster(ctx context.Context, id string, in dto.NameRequest) (*dto.MasterResponse, error) {
	name, err := catalog.NormalizeName("name", in.Name)
	if err != nil {
		return nil, err
	}
	m := &entity.MaklunMaster{ID: id, Name: name}
	if err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		return r.MaklunMasters.Update(ctx, m)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", m.ID).Str("name", m.Name).Msg("master maklun diperbarui")
	return &dto.MasterResponse{ID: m.ID, Name: m.Name}, nil
}

// DeleteMaklunMaster rechaza el borrado si el nombre figura como source o dentro de notes de alguna transacción.
func (uc *CatalogUseCase) DeleteMaklunMaster(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		m, err := r.MaklunMasters.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		used, err := r.Transactions.ReferencesName(ctx, m.Name)
		if err != nil {
			return err
		}
		if used {
			return &domain.InUseError{Entity: "maklun", Value: m.Name, Reason: "sudah tercatat dalam riwayat transaksi"}
		}
		return r.MaklunMasters.Delete(ctx, id)
	})
	if err == nil {
		uc.log.Info().Str("id", id).Msg("master maklun dihapus")
	}
	return err
}

// ListMaklunMasters lista ordenada por nombre.
func (uc *CatalogUseCase) ListMaklunMasters(ctx context.Context) ([]dto.MasterResponse, error) {
	var list []*entity.MaklunMaster
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		var err error
		list, err = r.MaklunMasters.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MasterResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MasterResponse{ID: m.ID, Name: m.Name})
	}
	return out, nil
}
