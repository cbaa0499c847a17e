package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	domaininv "github.com/jhoicas/gudang-sepatu/internal/domain/inventory"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var (
	_ repository.ShoeStockRepository    = (*shoeStockRepo)(nil)
	_ repository.LeatherStockRepository = (*leatherStockRepo)(nil)
)

type shoeStockRepo struct{ st *state }

// resolve completa ShoeType desde el maestro, como el JOIN de PostgreSQL.
func (r *shoeStockRepo) resolve(s entity.ShoeStock) *entity.ShoeStock {
	if m, ok := r.st.shoeMasters[s.ShoeMasterID]; ok {
		s.ShoeType = m.ShoeType
	}
	return &s
}

func (r *shoeStockRepo) GetByID(_ context.Context, id string) (*entity.ShoeStock, error) {
	s, ok := r.st.shoeStock[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(s), nil
}

// GetForUpdate equivale a GetByID: Run ya serializa las transacciones.
func (r *shoeStockRepo) GetForUpdate(ctx context.Context, id string) (*entity.ShoeStock, error) {
	return r.GetByID(ctx, id)
}

func (r *shoeStockRepo) Increment(_ context.Context, shoeMasterID string, size int, warehouse entity.Warehouse, qty int) (*entity.ShoeStock, error) {
	if _, ok := r.st.shoeMasters[shoeMasterID]; !ok {
		return nil, domain.ErrMasterNotFound
	}
	for id, s := range r.st.shoeStock {
		if s.ShoeMasterID == shoeMasterID && s.Size == size && s.Warehouse == warehouse {
			if err := domaininv.CheckShoeTotal("quantity", s.Quantity+qty); err != nil {
				return nil, err
			}
			s.Quantity += qty
			s.UpdatedAt = time.Now()
			r.st.shoeStock[id] = s
			return r.resolve(s), nil
		}
	}
	s := entity.ShoeStock{
		ID:           uuid.New().String(),
		ShoeMasterID: shoeMasterID,
		Size:         size,
		Quantity:     qty,
		Warehouse:    warehouse,
		UpdatedAt:    time.Now(),
	}
	r.st.shoeStock[s.ID] = s
	return r.resolve(s), nil
}

func (r *shoeStockRepo) SetQuantity(_ context.Context, id string, qty int) error {
	s, ok := r.st.shoeStock[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Quantity = qty
	s.UpdatedAt = time.Now()
	r.st.shoeStock[id] = s
	return nil
}

func (r *shoeStockRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.st.shoeStock[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.shoeStock, id)
	return nil
}

func (r *shoeStockRepo) ExistsByShoeMaster(_ context.Context, shoeMasterID string) (bool, error) {
	for _, s := range r.st.shoeStock {
		if s.ShoeMasterID == shoeMasterID {
			return true, nil
		}
	}
	return false, nil
}

func (r *shoeStockRepo) List(_ context.Context) ([]*entity.ShoeStock, error) {
	out := make([]*entity.ShoeStock, 0, len(r.st.shoeStock))
	for _, s := range r.st.shoeStock {
		out = append(out, r.resolve(s))
	}
	slices.SortFunc(out, func(a, b *entity.ShoeStock) int {
		return cmp.Or(
			strings.Compare(a.ShoeType, b.ShoeType),
			cmp.Compare(a.Size, b.Size),
			strings.Compare(string(a.Warehouse), string(b.Warehouse)),
		)
	})
	return out, nil
}

type leatherStockRepo struct{ st *state }

func (r *leatherStockRepo) resolve(s entity.LeatherStock) *entity.LeatherStock {
	if m, ok := r.st.leatherMasters[s.LeatherMasterID]; ok {
		s.LeatherName = m.Name
	}
	return &s
}

func (r *leatherStockRepo) GetByID(_ context.Context, id string) (*entity.LeatherStock, error) {
	s, ok := r.st.leatherStock[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(s), nil
}

func (r *leatherStockRepo) GetForUpdate(ctx context.Context, id string) (*entity.LeatherStock, error) {
	return r.GetByID(ctx, id)
}

func (r *leatherStockRepo) Increment(_ context.Context, leatherMasterID, supplier string, qty decimal.Decimal) (*entity.LeatherStock, error) {
	if _, ok := r.st.leatherMasters[leatherMasterID]; !ok {
		return nil, domain.ErrMasterNotFound
	}
	for id, s := range r.st.leatherStock {
		if s.LeatherMasterID == leatherMasterID && s.Supplier == supplier {
			if err := domaininv.CheckLeatherTotal("quantity", s.Quantity.Add(qty)); err != nil {
				return nil, err
			}
			s.Quantity = s.Quantity.Add(qty)
			s.UpdatedAt = time.Now()
			r.st.leatherStock[id] = s
			return r.resolve(s), nil
		}
	}
	s := entity.LeatherStock{
		ID:              uuid.New().String(),
		LeatherMasterID: leatherMasterID,
		Supplier:        supplier,
		Quantity:        qty,
		UpdatedAt:       time.Now(),
	}
	r.st.leatherStock[s.ID] = s
	return r.resolve(s), nil
}

func (r *leatherStockRepo) SetQuantity(_ context.Context, id string, qty decimal.Decimal) error {
	s, ok := r.st.leatherStock[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Quantity = qty
	s.UpdatedAt = time.Now()
	r.st.leatherStock[id] = s
	return nil
}

func (r *leatherStockRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.st.leatherStock[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.leatherStock, id)
	return nil
}

func (r *leatherStockRepo) ExistsByLeatherMaster(_ context.Context, leatherMasterID string) (bool, error) {
	for _, s := range r.st.leatherStock {
		if s.LeatherMasterID == leatherMasterID {
			return true, nil
		}
	}
	return false, nil
}

func (r *leatherStockRepo) List(_ context.Context) ([]*entity.LeatherStock, error) {
	out := make([]*entity.LeatherStock, 0, len(r.st.leatherStock))
	for _, s := range r.st.leatherStock {
		out = append(out, r.resolve(s))
	}
	slices.SortFunc(out, func(a, b *entity.LeatherStock) int {
		return cmp.Or(strings.Compare(a.LeatherName, b.LeatherName), strings.Compare(a.Supplier, b.Supplier))
	})
	return out, nil
}
