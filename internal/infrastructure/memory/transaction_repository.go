package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var _ repository.TransactionRepository = (*transactionRepo)(nil)

type transactionRepo struct{ st *state }

func (r *transactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	r.st.transactions = append(r.st.transactions, *tx)
	return nil
}

// List fecha descendente; a igual fecha, la más reciente insertada primero.
func (r *transactionRepo) List(_ context.Context, f entity.TransactionFilter) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.st.transactions))
	for i := len(r.st.transactions) - 1; i >= 0; i-- {
		t := r.st.transactions[i]
		if matches(&t, f) {
			out = append(out, &t)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Transaction) int { return b.Date.Compare(a.Date) })

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []*entity.Transaction{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *transactionRepo) ReferencesName(_ context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	for _, t := range r.st.transactions {
		if t.Source == name || strings.Contains(t.Notes, name) {
			return true, nil
		}
	}
	return false, nil
}

func matches(t *entity.Transaction, f entity.TransactionFilter) bool {
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	if f.Warehouse != "" && t.Warehouse != f.Warehouse {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	fields := []string{t.Source, t.Notes}
	switch item := t.Item.(type) {
	case entity.ShoeRef:
		fields = append(fields, item.ShoeType)
	case entity.LeatherRef:
		fields = append(fields, item.Name)
	}
	for _, s := range fields {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
