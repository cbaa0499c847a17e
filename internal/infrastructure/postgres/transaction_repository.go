package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de transacciones sobre PostgreSQL. Solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta la transacción. Calzado llena shoe_type/size; cuero, leather_name.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	var shoeType, leatherName *string
	var size *int
	switch item := t.Item.(type) {
	case entity.ShoeRef:
		shoeType, size = &item.ShoeType, &item.Size
	case entity.LeatherRef:
		leatherName = &item.Name
	default:
		return fmt.Errorf("insert transaction: item desconocido %T", t.Item)
	}
	query := `
		INSERT INTO transactions (id, date, type, shoe_type, size, leather_name, quantity, warehouse, source, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Date, string(t.Type), shoeType, size, leatherName, t.Quantity, string(t.Warehouse),
		nullIfEmpty(t.Source), nullIfEmpty(t.Notes), nullIfEmpty(t.CreatedBy), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List filtra por fecha, almacén, tipo y texto libre; orden fecha descendente.
func (r *TransactionRepo) List(ctx context.Context, f entity.TransactionFilter) ([]*entity.Transaction, error) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.From != nil {
		where = append(where, "date >= "+arg(*f.From))
	}
	if f.To != nil {
		where = append(where, "date <= "+arg(*f.To))
	}
	if f.Warehouse != "" {
		where = append(where, "warehouse = "+arg(string(f.Warehouse)))
	}
	if f.Type != "" {
		where = append(where, "type = "+arg(string(f.Type)))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		p := arg("%" + escapeLike(q) + "%")
		where = append(where, fmt.Sprintf(
			"(shoe_type ILIKE %[1]s OR leather_name ILIKE %[1]s OR source ILIKE %[1]s OR notes ILIKE %[1]s)", p))
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, date, type, shoe_type, size, leather_name, quantity, warehouse,
		       COALESCE(source, ''), COALESCE(notes, ''), COALESCE(created_by::text, ''), created_at
		FROM transactions`)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY date DESC, created_at DESC")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(f.Limit))
	}
	if f.Offset > 0 {
		sb.WriteString(" OFFSET " + arg(f.Offset))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	list := []*entity.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ReferencesName true si name es el source de alguna transacción o aparece (sensible a mayúsculas) en notes.
func (r *TransactionRepo) ReferencesName(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions WHERE source = $1 OR strpos(notes, $1) > 0
		)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("references name: %w", err)
	}
	return exists, nil
}

func scanTransaction(row pgxScanner) (*entity.Transaction, error) {
	var (
		t           entity.Transaction
		typ, wh     string
		shoeType    *string
		size        *int
		leatherName *string
	)
	err := row.Scan(&t.ID, &t.Date, &typ, &shoeType, &size, &leatherName, &t.Quantity, &wh,
		&t.Source, &t.Notes, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = entity.TransactionType(typ)
	t.Warehouse = entity.Warehouse(wh)
	if leatherName != nil {
		t.Item = entity.LeatherRef{Name: *leatherName}
	} else if shoeType != nil && size != nil {
		t.Item = entity.ShoeRef{ShoeType: *shoeType, Size: *size}
	}
	return &t, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
