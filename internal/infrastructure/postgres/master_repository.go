package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var (
	_ repository.ShoeMasterRepository    = (*ShoeMasterRepo)(nil)
	_ repository.LeatherMasterRepository = (*LeatherMasterRepo)(nil)
	_ repository.MaklunMasterRepository  = (*MaklunMasterRepo)(nil)
)

// ── shoe_masters ──────────────────────────────────────────────────────────────

// ShoeMasterRepo implementación de ShoeMasterRepository (pool o tx).
type ShoeMasterRepo struct {
	q Querier
}

// NewShoeMasterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShoeMasterRepository(q Querier) *ShoeMasterRepo {
	return &ShoeMasterRepo{q: q}
}

const shoeMasterColumns = `id, shoe_type, sizes, created_at, updated_at`

func (r *ShoeMasterRepo) Create(ctx context.Context, m *entity.ShoeMaster) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := r.q.Exec(ctx, `
		INSERT INTO shoe_masters (id, shoe_type, sizes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.ShoeType, toInt32s(m.Sizes), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: "tipe sepatu", Value: m.ShoeType}
		}
		return fmt.Errorf("insert shoe_master: %w", err)
	}
	return nil
}

func (r *ShoeMasterRepo) GetByID(ctx context.Context, id string) (*entity.ShoeMaster, error) {
	m, err := scanShoeMaster(r.q.QueryRow(ctx, `SELECT `+shoeMasterColumns+` FROM shoe_masters WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shoe_master: %w", err)
	}
	return m, nil
}

func (r *ShoeMasterRepo) GetByShoeType(ctx context.Context, shoeType string) (*entity.ShoeMaster, error) {
	m, err := scanShoeMaster(r.q.QueryRow(ctx, `SELECT `+shoeMasterColumns+` FROM shoe_masters WHERE shoe_type = $1`, shoeType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shoe_master by type: %w", err)
	}
	return m, nil
}

func (r *ShoeMasterRepo) Update(ctx context.Context, m *entity.ShoeMaster) error {
	m.UpdatedAt = time.Now()
	tag, err := r.q.Exec(ctx, `
		UPDATE shoe_masters SET shoe_type = $2, sizes = $3, updated_at = $4
		WHERE id = $1`,
		m.ID, m.ShoeType, toInt32s(m.Sizes), m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: "tipe sepatu", Value: m.ShoeType}
		}
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update shoe_master: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShoeMasterRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "shoe_masters", id)
}

func (r *ShoeMasterRepo) List(ctx context.Context) ([]*entity.ShoeMaster, error) {
	rows, err := r.q.Query(ctx, `SELECT `+shoeMasterColumns+` FROM shoe_masters ORDER BY shoe_type`)
	if err != nil {
		return nil, fmt.Errorf("list shoe_masters: %w", err)
	}
	defer rows.Close()
	list := []*entity.ShoeMaster{}
	for rows.Next() {
		m, err := scanShoeMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shoe_master: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanShoeMaster(row pgxScanner) (*entity.ShoeMaster, error) {
	var m entity.ShoeMaster
	var sizes []int32
	if err := row.Scan(&m.ID, &m.ShoeType, &sizes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Sizes = make([]int, len(sizes))
	for i, s := range sizes {
		m.Sizes[i] = int(s)
	}
	return &m, nil
}

func toInt32s(sizes []int) []int32 {
	out := make([]int32, len(sizes))
	for i, s := range sizes {
		out[i] = int32(s)
	}
	return out
}

// ── leather_masters / maklun_masters ─────────────────────────────────────────

// namedMasterTable CRUD común de las tablas (id, name, created_at, updated_at).
type namedMasterTable struct {
	q      Querier
	table  string
	entity string // nombre mostrado en DuplicateError
}

type namedRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t namedMasterTable) create(ctx context.Context, row *namedRow) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	now := time.Now()
	row.CreatedAt, row.UpdatedAt = now, now
	_, err := t.q.Exec(ctx,
		`INSERT INTO `+t.table+` (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		row.ID, row.Name, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: t.entity, Value: row.Name}
		}
		return fmt.Errorf("insert %s: %w", t.table, err)
	}
	return nil
}

func (t namedMasterTable) get(ctx context.Context, id string) (*namedRow, error) {
	var row namedRow
	err := t.q.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM `+t.table+` WHERE id = $1`, id,
	).Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.table, err)
	}
	return &row, nil
}

func (t namedMasterTable) update(ctx context.Context, row *namedRow) error {
	row.UpdatedAt = time.Now()
	tag, err := t.q.Exec(ctx,
		`UPDATE `+t.table+` SET name = $2, updated_at = $3 WHERE id = $1`,
		row.ID, row.Name, row.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Entity: t.entity, Value: row.Name}
		}
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update %s: %w", t.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t namedMasterTable) list(ctx context.Context) ([]namedRow, error) {
	rows, err := t.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM `+t.table+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()
	var list []namedRow
	for rows.Next() {
		var row namedRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.table, err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LeatherMasterRepo implementación de LeatherMasterRepository.
type LeatherMasterRepo struct {
	t namedMasterTable
}

// NewLeatherMasterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeatherMasterRepository(q Querier) *LeatherMasterRepo {
	return &LeatherMasterRepo{t: namedMasterTable{q: q, table: "leather_masters", entity: "jenis kulit"}}
}

func (r *LeatherMasterRepo) Create(ctx context.Context, m *entity.LeatherMaster) error {
	row := namedRow{ID: m.ID, Name: m.Name}
	if err := r.t.create(ctx, &row); err != nil {
		return err
	}
	m.ID, m.CreatedAt, m.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
	return nil
}

func (r *LeatherMasterRepo) GetByID(ctx context.Context, id string) (*entity.LeatherMaster, error) {
	row, err := r.t.get(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.LeatherMaster{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}

func (r *LeatherMasterRepo) Update(ctx context.Context, m *entity.LeatherMaster) error {
	row := namedRow{ID: m.ID, Name: m.Name}
	if err := r.t.update(ctx, &row); err != nil {
		return err
	}
	m.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *LeatherMasterRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.t.q, r.t.table, id)
}

func (r *LeatherMasterRepo) List(ctx context.Context) ([]*entity.LeatherMaster, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.LeatherMaster, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.LeatherMaster{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
	}
	return out, nil
}

// MaklunMasterRepo implementación de MaklunMasterRepository.
type MaklunMasterRepo struct {
	t namedMasterTable
}

// NewMaklunMasterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaklunMasterRepository(q Querier) *MaklunMasterRepo {
	return &MaklunMasterRepo{t: namedMasterTable{q: q, table: "maklun_masters", entity: "maklun"}}
}

func (r *MaklunMasterRepo) Create(ctx context.Context, m *entity.MaklunMaster) error {
	row := namedRow{ID: m.ID, Name: m.Name}
	if err := r.t.create(ctx, &row); err != nil {
		return err
	}
	m.ID, m.CreatedAt, m.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
	return nil
}

func (r *MaklunMasterRepo) GetByID(ctx context.Context, id string) (*entity.MaklunMaster, error) {
	row, err := r.t.get(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.MaklunMaster{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}

func (r *MaklunMasterRepo) Update(ctx context.Context, m *entity.MaklunMaster) error {
	row := namedRow{ID: m.ID, Name: m.Name}
	if err := r.t.update(ctx, &row); err != nil {
		return err
	}
	m.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *MaklunMasterRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.t.q, r.t.table, id)
}

func (r *MaklunMasterRepo) List(ctx context.Context) ([]*entity.MaklunMaster, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.MaklunMaster, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.MaklunMaster{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
	}
	return out, nil
}

// deleteByID borra por id; ErrNotFound si no había fila. Una FK viva se reporta como ErrInUse.
func deleteByID(ctx context.Context, q Querier, table, id string) error {
	tag, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete %s: %w", table, domain.ErrInUse)
		}
		if isInvalidUUID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
