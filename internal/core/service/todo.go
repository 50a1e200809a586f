package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TodoService struct {
	uow    port.UnitOfWorkFactory
	logger zerolog.Logger
}

func NewTodoService(uow port.UnitOfWorkFactory, logger zerolog.Logger) *TodoService {
	return &TodoService{uow: uow, logger: logger}
}

var _ port.TodoService = (*TodoService)(nil)

func (ts *TodoService) GetPaged(ctx context.Context, page, pageSize int, search string) ([]response.TodoResponse, int64, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	// Unbounded page sizes would let a single request drag the whole
	// table into memory.
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	uow, err := ts.uow.Begin(ctx)

	if err != nil {
		return nil, 0, fmt.Errorf("begin unit of work: %w", err)
	}

	defer uow.Rollback()

	todos, err := uow.Todos().ListPage(ctx, port.ListParams{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})

	if err != nil {
		return nil, 0, fmt.Errorf("list todos: %w", err)
	}

	total, err := uow.Todos().Count(ctx, search)

	if err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	items := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		items = append(items, toResponse(&todo))
	}

	return items, total, nil
}

func (ts *TodoService) GetByID(ctx context.Context, id int64) (*response.TodoResponse, error) {
	uow, err := ts.uow.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	defer uow.Rollback()

	todo, err := uow.Todos().GetByID(ctx, id)

	if err != nil {
		return nil, fmt.Errorf("get todo %d: %w", id, err)
	}

	if todo == nil {
		return nil, nil
	}

	resp := toResponse(todo)

	return &resp, nil
}

func (ts *TodoService) Create(ctx context.Context, req request.CreateTodoRequest) (*response.TodoResponse, error) {
	title := strings.TrimSpace(req.Title)

	// The handler rejects blank titles too, but a direct caller must get
	// the same protection.
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	todo := domain.Todo{
		Title:       title,
		Description: trimmed(req.Description),
	}

	uow, err := ts.uow.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	defer uow.Rollback()

	if err := uow.Todos().Insert(ctx, &todo); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create: %w", err)
	}

	ts.logger.Info().Int64("id", todo.ID).Str("title", todo.Title).Msg("todo created")

	resp := toResponse(&todo)

	return &resp, nil
}

func (ts *TodoService) Update(ctx context.Context, id int64, req request.UpdateTodoRequest) (bool, error) {
	title := strings.TrimSpace(req.Title)

	if title == "" {
		return false, domain.ErrTitleRequired
	}

	uow, err := ts.uow.Begin(ctx)

	if err != nil {
		return false, fmt.Errorf("begin unit of work: %w", err)
	}

	defer uow.Rollback()

	todo, err := uow.Todos().GetByID(ctx, id)

	if err != nil {
		return false, fmt.Errorf("get todo %d: %w", id, err)
	}

	if todo == nil {
		return false, nil
	}

	todo.Title = title
	todo.Description = trimmed(req.Description)
	todo.MarkCompleted(req.Completed, time.Now().UTC())

	if err := uow.Todos().Update(ctx, todo); err != nil {
		return false, fmt.Errorf("update todo %d: %w", id, err)
	}

	if _, err := uow.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit update: %w", err)
	}

	return true, nil
}

func (ts *TodoService) Delete(ctx context.Context, id int64) (bool, error) {
	uow, err := ts.uow.Begin(ctx)

	if err != nil {
		return false, fmt.Errorf("begin unit of work: %w", err)
	}

	defer uow.Rollback()

	todo, err := uow.Todos().GetByID(ctx, id)

	if err != nil {
		return false, fmt.Errorf("get todo %d: %w", id, err)
	}

	if todo == nil {
		return false, nil
	}

	if err := uow.Todos().Remove(ctx, todo); err != nil {
		return false, fmt.Errorf("remove todo %d: %w", id, err)
	}

	if _, err := uow.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit delete: %w", err)
	}

	ts.logger.Info().Int64("id", id).Msg("todo deleted")

	return true, nil
}

func toResponse(todo *domain.Todo) response.TodoResponse {
	return response.TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		CompletedAt: todo.CompletedAt,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)

	return &t
}
