package response

import "time"

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type PagedResponse struct {
	Total int64          `json:"total"`
	Items []TodoResponse `json:"items"`
}

type ClaimResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type IdentityResponse struct {
	User   string          `json:"user"`
	Claims []ClaimResponse `json:"claims"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
