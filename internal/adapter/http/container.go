package http

import (
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
)

type Container struct {
	TodoService port.TodoService

	TodoHandler     *handler.TodoHandler
	IdentityHandler *handler.IdentityHandler
}

func NewContainer(uow port.UnitOfWorkFactory, metrics *telemetry.Metrics, logger zerolog.Logger) *Container {
	todoSvc := service.NewTodoService(uow, logger)

	return &Container{
		TodoService:     todoSvc,
		TodoHandler:     handler.NewTodoHandler(todoSvc, metrics, logger),
		IdentityHandler: handler.NewIdentityHandler(),
	}
}
