package request

type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type UpdateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Completed   bool    `json:"completed"`
}
