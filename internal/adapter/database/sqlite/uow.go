package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todoapi/internal/adapter/database/sqlite/repository"
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
	tx, err := f.db.BeginTx(ctx, nil)

	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	uow := &UnitOfWork{tx: tx}
	uow.todos = repository.NewTodoRepository(tx, f.db.QueryBuilder, &uow.affected)

	return uow, nil
}

// UnitOfWork scopes all repository calls of one request to a single
// transaction. Writes stay invisible to other connections until Commit.
type UnitOfWork struct {
	tx       *sql.Tx
	todos    port.TodoRepository
	affected int64
	done     bool
}

func (u *UnitOfWork) Todos() port.TodoRepository {
	return u.todos
}

func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	u.done = true

	if err := u.tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return u.affected, nil
}

func (u *UnitOfWork) Rollback() error {
	if u.done {
		return nil
	}

	u.done = true

	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}

	return nil
}
