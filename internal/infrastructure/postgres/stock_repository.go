package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var (
	_ repository.ShoeStockRepository    = (*ShoeStockRepo)(nil)
	_ repository.LeatherStockRepository = (*LeatherStockRepo)(nil)
)

// ── shoe_stock ────────────────────────────────────────────────────────────────

// ShoeStockRepo implementación de ShoeStockRepository sobre PostgreSQL (usable con pool o tx).
type ShoeStockRepo struct {
	q Querier
}

// NewShoeStockRepository construye el adaptador de stock de calzado. Pasar pool o tx (Querier).
func NewShoeStockRepository(q Querier) *ShoeStockRepo {
	return &ShoeStockRepo{q: q}
}

const shoeStockSelect = `
	SELECT s.id, s.shoe_master_id, sm.shoe_type, s.size, s.quantity, s.warehouse, s.updated_at
	FROM shoe_stock s JOIN shoe_masters sm ON sm.id = s.shoe_master_id`

func (r *ShoeStockRepo) GetByID(ctx context.Context, id string) (*entity.ShoeStock, error) {
	return r.get(ctx, shoeStockSelect+` WHERE s.id = $1`, id)
}

// GetForUpdate obtiene la fila y la bloquea hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *ShoeStockRepo) GetForUpdate(ctx context.Context, id string) (*entity.ShoeStock, error) {
	return r.get(ctx, shoeStockSelect+` WHERE s.id = $1 FOR UPDATE OF s`, id)
}

func (r *ShoeStockRepo) get(ctx context.Context, query, id string) (*entity.ShoeStock, error) {
	s, err := scanShoeStock(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shoe_stock: %w", err)
	}
	return s, nil
}

// Increment upsert atómico: dos entradas concurrentes al mismo (tipo, talla, almacén) se suman.
func (r *ShoeStockRepo) Increment(ctx context.Context, shoeMasterID string, size int, warehouse entity.Warehouse, qty int) (*entity.ShoeStock, error) {
	query := `
		WITH up AS (
			INSERT INTO shoe_stock (id, shoe_master_id, size, quantity, warehouse, updated_at)
			VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (shoe_master_id, size, warehouse)
			DO UPDATE SET quantity = shoe_stock.quantity + EXCLUDED.quantity, updated_at = now()
			RETURNING id, shoe_master_id, size, quantity, warehouse, updated_at
		)
		SELECT up.id, up.shoe_master_id, sm.shoe_type, up.size, up.quantity, up.warehouse, up.updated_at
		FROM up JOIN shoe_masters sm ON sm.id = up.shoe_master_id`
	s, err := scanShoeStock(r.q.QueryRow(ctx, query, uuid.New().String(), shoeMasterID, size, qty, string(warehouse)))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrMasterNotFound
		}
		if isNumericOverflow(err) {
			return nil, domain.Invalid("quantity", "jumlah stok melebihi batas maksimum")
		}
		return nil, fmt.Errorf("increment shoe_stock: %w", err)
	}
	return s, nil
}

func (r *ShoeStockRepo) SetQuantity(ctx context.Context, id string, qty int) error {
	tag, err := r.q.Exec(ctx, `UPDATE shoe_stock SET quantity = $2, updated_at = now() WHERE id = $1`, id, qty)
	if err != nil {
		return fmt.Errorf("set shoe_stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShoeStockRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "shoe_stock", id)
}

func (r *ShoeStockRepo) ExistsByShoeMaster(ctx context.Context, shoeMasterID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shoe_stock WHERE shoe_master_id = $1)`, shoeMasterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists shoe_stock by master: %w", err)
	}
	return exists, nil
}

func (r *ShoeStockRepo) List(ctx context.Context) ([]*entity.ShoeStock, error) {
	rows, err := r.q.Query(ctx, shoeStockSelect+` ORDER BY sm.shoe_type, s.size, s.warehouse`)
	if err != nil {
		return nil, fmt.Errorf("list shoe_stock: %w", err)
	}
	defer rows.Close()
	list := []*entity.ShoeStock{}
	for rows.Next() {
		s, err := scanShoeStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shoe_stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanShoeStock(row pgxScanner) (*entity.ShoeStock, error) {
	var s entity.ShoeStock
	var warehouse string
	if err := row.Scan(&s.ID, &s.ShoeMasterID, &s.ShoeType, &s.Size, &s.Quantity, &warehouse, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Warehouse = entity.Warehouse(warehouse)
	return &s, nil
}

// ── leather_stock ─────────────────────────────────────────────────────────────

// LeatherStockRepo implementación de LeatherStockRepository sobre PostgreSQL.
type LeatherStockRepo struct {
	q Querier
}

// NewLeatherStockRepository construye el adaptador de stock de cuero. Pasar pool o tx (Querier).
func NewLeatherStockRepository(q Querier) *LeatherStockRepo {
	return &LeatherStockRepo{q: q}
}

const leatherStockSelect = `
	SELECT l.id, l.leather_master_id, lm.name, l.supplier, l.quantity, l.updated_at
	FROM leather_stock l JOIN leather_masters lm ON lm.id = l.leather_master_id`

func (r *LeatherStockRepo) GetByID(ctx context.Context, id string) (*entity.LeatherStock, error) {
	return r.get(ctx, leatherStockSelect+` WHERE l.id = $1`, id)
}

func (r *LeatherStockRepo) GetForUpdate(ctx context.Context, id string) (*entity.LeatherStock, error) {
	return r.get(ctx, leatherStockSelect+` WHERE l.id = $1 FOR UPDATE OF l`, id)
}

func (r *LeatherStockRepo) get(ctx context.Context, query, id string) (*entity.LeatherStock, error) {
	s, err := scanLeatherStock(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leather_stock: %w", err)
	}
	return s, nil
}

// Increment upsert atómico del lote (tipo de cuero, proveedor).
func (r *LeatherStockRepo) Increment(ctx context.Context, leatherMasterID, supplier string, qty decimal.Decimal) (*entity.LeatherStock, error) {
	query := `
		WITH up AS (
			INSERT INTO leather_stock (id, leather_master_id, supplier, quantity, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (leather_master_id, supplier)
			DO UPDATE SET quantity = leather_stock.quantity + EXCLUDED.quantity, updated_at = now()
			RETURNING id, leather_master_id, supplier, quantity, updated_at
		)
		SELECT up.id, up.leather_master_id, lm.name, up.supplier, up.quantity, up.updated_at
		FROM up JOIN leather_masters lm ON lm.id = up.leather_master_id`
	s, err := scanLeatherStock(r.q.QueryRow(ctx, query, uuid.New().String(), leatherMasterID, supplier, qty))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrMasterNotFound
		}
		if isNumericOverflow(err) {
			return nil, domain.Invalid("quantity", "jumlah stok melebihi batas maksimum")
		}
		return nil, fmt.Errorf("increment leather_stock: %w", err)
	}
	return s, nil
}

func (r *LeatherStockRepo) SetQuantity(ctx context.Context, id string, qty decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE leather_stock SET quantity = $2, updated_at = now() WHERE id = $1`, id, qty)
	if err != nil {
		return fmt.Errorf("set leather_stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LeatherStockRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "leather_stock", id)
}

func (r *LeatherStockRepo) ExistsByLeatherMaster(ctx context.Context, leatherMasterID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leather_stock WHERE leather_master_id = $1)`, leatherMasterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists leather_stock by master: %w", err)
	}
	return exists, nil
}

func (r *LeatherStockRepo) List(ctx context.Context) ([]*entity.LeatherStock, error) {
	rows, err := r.q.Query(ctx, leatherStockSelect+` ORDER BY lm.name, l.supplier`)
	if err != nil {
		return nil, fmt.Errorf("list leather_stock: %w", err)
	}
	defer rows.Close()
	list := []*entity.LeatherStock{}
	for rows.Next() {
		s, err := scanLeatherStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leather_stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanLeatherStock(row pgxScanner) (*entity.LeatherStock, error) {
	var s entity.LeatherStock
	if err := row.Scan(&s.ID, &s.LeatherMasterID, &s.LeatherName, &s.Supplier, &s.Quantity, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
