package repository

import "context"

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	ShoeMasters    ShoeMasterRepository
	LeatherMasters LeatherMasterRepository
	MaklunMasters  MaklunMasterRepository
	ShoeStock      ShoeStockRepository
	LeatherStock   LeatherStockRepository
	Transactions   TransactionRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
// Garantiza atomicidad entre el stock y el libro de transacciones.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
