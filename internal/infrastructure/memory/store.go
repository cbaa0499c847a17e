// Package memory implementa los puertos de repositorio sobre estructuras en memoria.
// Mismas reglas que PostgreSQL (unicidad, upsert, orden); pensado para demos locales y tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
	"github.com/jhoicas/gudang-sepatu/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

// state datos confirmados. Los mapas guardan valores, no punteros, para que clone sea una copia profunda.
type state struct {
	shoeMasters    map[string]entity.ShoeMaster
	leatherMasters map[string]entity.LeatherMaster
	maklunMasters  map[string]entity.MaklunMaster
	shoeStock      map[string]entity.ShoeStock
	leatherStock   map[string]entity.LeatherStock
	transactions   []entity.Transaction
}

func newState() *state {
	return &state{
		shoeMasters:    map[string]entity.ShoeMaster{},
		leatherMasters: map[string]entity.LeatherMaster{},
		maklunMasters:  map[string]entity.MaklunMaster{},
		shoeStock:      map[string]entity.ShoeStock{},
		leatherStock:   map[string]entity.LeatherStock{},
	}
}

func (s *state) clone() *state {
	c := &state{
		shoeMasters:    make(map[string]entity.ShoeMaster, len(s.shoeMasters)),
		leatherMasters: maps.Clone(s.leatherMasters),
		maklunMasters:  maps.Clone(s.maklunMasters),
		shoeStock:      maps.Clone(s.shoeStock),
		leatherStock:   maps.Clone(s.leatherStock),
		transactions:   slices.Clone(s.transactions),
	}
	for id, m := range s.shoeMasters {
		m.Sizes = slices.Clone(m.Sizes)
		c.shoeMasters[id] = m
	}
	return c
}

// Store base de datos en memoria. Run serializa las transacciones con un mutex:
// fn trabaja sobre una copia y la copia reemplaza al estado solo si fn devuelve nil.
type Store struct {
	mu    sync.Mutex
	state *state

	usersMu sync.RWMutex
	users   map[string]entity.User
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{state: newState(), users: map[string]entity.User{}}
}

// Run ejecuta fn con repos atados a una copia del estado; Commit = reemplazo atómico.
func (s *Store) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	tx := &memTx{st: work}
	if err := fn(tx.repos()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = work
	return nil
}

// memTx agrupa los repos que comparten el estado de trabajo de una transacción.
type memTx struct {
	st *state
}

func (t *memTx) repos() repository.TxRepos {
	return repository.TxRepos{
		ShoeMasters:    &shoeMasterRepo{st: t.st},
		LeatherMasters: &leatherMasterRepo{st: t.st},
		MaklunMasters:  &maklunMasterRepo{st: t.st},
		ShoeStock:      &shoeStockRepo{st: t.st},
		LeatherStock:   &leatherStockRepo{st: t.st},
		Transactions:   &transactionRepo{st: t.st},
	}
}
