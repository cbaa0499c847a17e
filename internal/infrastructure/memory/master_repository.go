package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var (
	_ repository.ShoeMasterRepository    = (*shoeMasterRepo)(nil)
	_ repository.LeatherMasterRepository = (*leatherMasterRepo)(nil)
	_ repository.MaklunMasterRepository  = (*maklunMasterRepo)(nil)
)

type shoeMasterRepo struct{ st *state }

func (r *shoeMasterRepo) Create(_ context.Context, m *entity.ShoeMaster) error {
	if r.taken(m.ShoeType, "") {
		return &domain.DuplicateError{Entity: "tipe sepatu", Value: m.ShoeType}
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	c := *m
	c.Sizes = slices.Clone(m.Sizes)
	r.st.shoeMasters[m.ID] = c
	return nil
}

func (r *shoeMasterRepo) GetByID(_ context.Context, id string) (*entity.ShoeMaster, error) {
	m, ok := r.st.shoeMasters[id]
	if !ok {
		return nil, nil
	}
	m.Sizes = slices.Clone(m.Sizes)
	return &m, nil
}

func (r *shoeMasterRepo) GetByShoeType(_ context.Context, shoeType string) (*entity.ShoeMaster, error) {
	for _, m := range r.st.shoeMasters {
		if m.ShoeType == shoeType {
			m.Sizes = slices.Clone(m.Sizes)
			return &m, nil
		}
	}
	return nil, nil
}

func (r *shoeMasterRepo) Update(_ context.Context, m *entity.ShoeMaster) error {
	cur, ok := r.st.shoeMasters[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.taken(m.ShoeType, m.ID) {
		return &domain.DuplicateError{Entity: "tipe sepatu", Value: m.ShoeType}
	}
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = time.Now()
	c := *m
	c.Sizes = slices.Clone(m.Sizes)
	r.st.shoeMasters[m.ID] = c
	return nil
}

func (r *shoeMasterRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.st.shoeMasters[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.shoeMasters, id)
	return nil
}

func (r *shoeMasterRepo) List(_ context.Context) ([]*entity.ShoeMaster, error) {
	out := make([]*entity.ShoeMaster, 0, len(r.st.shoeMasters))
	for _, m := range r.st.shoeMasters {
		m.Sizes = slices.Clone(m.Sizes)
		out = append(out, &m)
	}
	slices.SortFunc(out, func(a, b *entity.ShoeMaster) int { return strings.Compare(a.ShoeType, b.ShoeType) })
	return out, nil
}

func (r *shoeMasterRepo) taken(shoeType, exceptID string) bool {
	for id, m := range r.st.shoeMasters {
		if id != exceptID && m.ShoeType == shoeType {
			return true
		}
	}
	return false
}

type leatherMasterRepo struct{ st *state }

func (r *leatherMasterRepo) Create(_ context.Context, m *entity.LeatherMaster) error {
	for _, x := range r.st.leatherMasters {
		if x.Name == m.Name {
			return &domain.DuplicateError{Entity: "jenis kulit", Value: m.Name}
		}
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	r.st.leatherMasters[m.ID] = *m
	return nil
}

func (r *leatherMasterRepo) GetByID(_ context.Context, id string) (*entity.LeatherMaster, error) {
	m, ok := r.st.leatherMasters[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *leatherMasterRepo) Update(_ context.Context, m *entity.LeatherMaster) error {
	cur, ok := r.st.leatherMasters[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, x := range r.st.leatherMasters {
		if id != m.ID && x.Name == m.Name {
			return &domain.DuplicateError{Entity: "jenis kulit", Value: m.Name}
		}
	}
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = time.Now()
	r.st.leatherMasters[m.ID] = *m
	// leather_stock guarda el id; el nombre se resuelve al leer.
	return nil
}

func (r *leatherMasterRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.st.leatherMasters[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.leatherMasters, id)
	return nil
}

func (r *leatherMasterRepo) List(_ context.Context) ([]*entity.LeatherMaster, error) {
	out := make([]*entity.LeatherMaster, 0, len(r.st.leatherMasters))
	for _, m := range r.st.leatherMasters {
		out = append(out, &m)
	}
	slices.SortFunc(out, func(a, b *entity.LeatherMaster) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

type maklunMasterRepo struct{ st *state }

func (r *maklunMasterRepo) Create(_ context.Context, m *entity.MaklunMaster) error {
	for _, x := range r.st.maklunMasters {
		if x.Name == m.Name {
			return &domain.DuplicateError{Entity: "maklun", Value: m.Name}
		}
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	r.st.maklunMasters[m.ID] = *m
	return nil
}

func (r *maklunMasterRepo) GetByID(_ context.Context, id string) (*entity.MaklunMaster, error) {
	m, ok := r.st.maklunMasters[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *maklunMasterRepo) Update(_ context.Context, m *entity.MaklunMaster) error {
	cur, ok := r.st.maklunMasters[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, x := range r.st.maklunMasters {
		if id != m.ID && x.Name == m.Name {
			return &domain.DuplicateError{Entity: "maklun", Value: m.Name}
		}
	}
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = time.Now()
	r.st.maklunMasters[m.ID] = *m
	return nil
}

func (r *maklunMasterRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.st.maklunMasters[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.maklunMasters, id)
	return nil
}

func (r *maklunMasterRepo) List(_ context.Context) ([]*entity.MaklunMaster, error) {
	out := make([]*entity.MaklunMaster, 0, len(r.st.maklunMasters))
	for _, m := range r.st.maklunMasters {
		out = append(out, &m)
	}
	slices.SortFunc(out, func(a, b *entity.MaklunMaster) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}
