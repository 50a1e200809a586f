package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/core/port"
)

type UnitOfWorkFactory struct {
	db *DB
}

func NewUnitOfWorkFactory(db *DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

var _ port.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

func (f *UnitOfWorkFactory) Begin(ctx context.Context) (port.UnitOfWork, error) {
	tx, err := f.db.Pool.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	uow := &UnitOfWork{tx: tx}
	uow.todos = repository.NewTodoRepository(tx, f.db.QueryBuilder, &uow.affected)

	return uow, nil
}

type UnitOfWork struct {
	tx       pgx.Tx
	todos    port.TodoRepository
	affected int64
	done     bool
}

func (u *UnitOfWork) Todos() port.TodoRepository {
	return u.todos
}

func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	u.done = true

	if err := u.tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return u.affected, nil
}

func (u *UnitOfWork) Rollback() error {
	if u.done {
		return nil
	}

	u.done = true

	err := u.tx.Rollback(context.Background())

	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}

	return nil
}
