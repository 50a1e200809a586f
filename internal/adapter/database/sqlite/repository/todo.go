package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var todoColumns = []string{"id", "title", "description", "completed", "created_at", "completed_at"}

// TodoRepository runs all statements on the unit-of-work transaction, so
// staged writes only become visible after the unit of work commits.
type TodoRepository struct {
	tx       *sql.Tx
	builder  *sq.StatementBuilderType
	affected *int64
}

func NewTodoRepository(tx *sql.Tx, builder *sq.StatementBuilderType, affected *int64) port.TodoRepository {
	return &TodoRepository{tx: tx, builder: builder, affected: affected}
}

func (tr *TodoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	query := tr.builder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	var todo domain.Todo

	err = tr.tx.QueryRowContext(ctx, stmt, args...).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.CompletedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (tr *TodoRepository) ListPage(ctx context.Context, params port.ListParams) ([]domain.Todo, error) {
	if params.Page < 1 {
		params.Page = 1
	}

	offset := (params.Page - 1) * params.PageSize

	query := tr.builder.Select(todoColumns...).
		From("todos").
		OrderBy("id DESC").
		Offset(uint64(offset)).
		Limit(uint64(params.PageSize))

	if params.Search != "" {
		query = query.Where(sq.Like{"title": "%" + params.Search + "%"})
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.tx.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		var todo domain.Todo

		err = rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.CompletedAt,
		)

		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (tr *TodoRepository) Count(ctx context.Context, search string) (int64, error) {
	query := tr.builder.Select("COUNT(*)").From("todos")

	if search != "" {
		query = query.Where(sq.Like{"title": "%" + search + "%"})
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		return 0, err
	}

	var total int64

	if err := tr.tx.QueryRowContext(ctx, stmt, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (tr *TodoRepository) Insert(ctx context.Context, todo *domain.Todo) error {
	query := tr.builder.Insert("todos").
		Columns("title", "description", "completed", "completed_at").
		Values(todo.Title, todo.Description, todo.Completed, todo.CompletedAt).
		Suffix("RETURNING id, created_at")

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	// The store assigns id and created_at; RETURNING hands them back
	// without a second round-trip.
	err = tr.tx.QueryRowContext(ctx, stmt, args...).Scan(&todo.ID, &todo.CreatedAt)

	if err != nil {
		return err
	}

	*tr.affected++

	return nil
}

func (tr *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	query := tr.builder.Update("todos").
		SetMap(todo.ToMap()).
		Where(sq.Eq{"id": todo.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := tr.tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		return err
	}

	return tr.track(result)
}

func (tr *TodoRepository) Remove(ctx context.Context, todo *domain.Todo) error {
	query := tr.builder.Delete("todos").
		Where(sq.Eq{"id": todo.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := tr.tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		return err
	}

	return tr.track(result)
}

func (tr *TodoRepository) track(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	*tr.affected += rowsAffected

	return nil
}
