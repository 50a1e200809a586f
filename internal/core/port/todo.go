package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
)

type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

// TodoRepository executes reads and stages writes on the unit-of-work
// transaction. Staged writes are invisible outside the unit of work
// until Commit.
type TodoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	ListPage(ctx context.Context, params ListParams) ([]domain.Todo, error)
	Count(ctx context.Context, search string) (int64, error)
	Insert(ctx context.Context, todo *domain.Todo) error
	Update(ctx context.Context, todo *domain.Todo) error
	Remove(ctx context.Context, todo *domain.Todo) error
}

// UnitOfWork bounds one logical operation to one atomic commit.
// Rollback is a no-op once Commit has run, so it is always safe to defer.
type UnitOfWork interface {
	Todos() TodoRepository
	Commit(ctx context.Context) (int64, error)
	Rollback() error
}

type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

type TodoService interface {
	GetPaged(ctx context.Context, page, pageSize int, search string) ([]response.TodoResponse, int64, error)
	GetByID(ctx context.Context, id int64) (*response.TodoResponse, error)
	Create(ctx context.Context, req request.CreateTodoRequest) (*response.TodoResponse, error)
	Update(ctx context.Context, id int64, req request.UpdateTodoRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
