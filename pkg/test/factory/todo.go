package factory

import (
	fab "github.com/Goldziher/fabricator"

	"todoapi/internal/core/model/request"
)

func NewCreateTodoRequest(customData ...map[string]any) request.CreateTodoRequest {
	instance := fab.New(*new(request.CreateTodoRequest))

	if len(customData) > 0 {
		return instance.Build(customData...)
	}

	return instance.Build()
}

func NewUpdateTodoRequest(customData ...map[string]any) request.UpdateTodoRequest {
	instance := fab.New(*new(request.UpdateTodoRequest))

	if len(customData) > 0 {
		return instance.Build(customData...)
	}

	return instance.Build()
}
