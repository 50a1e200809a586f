package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/test"
	"todoapi/pkg/test/factory"
)

var ctx = context.Background()

type TodoHandlerSuite struct {
	suite.Suite
	svc    port.TodoService
	router *gin.Engine
}

func (s *TodoHandlerSuite) SetupTest() {
	db := test.InitTestDB()
	uowFactory := sqlite.NewUnitOfWorkFactory(db)

	s.svc = service.NewTodoService(uowFactory, zerolog.Nop())

	metrics := telemetry.NewMetrics()
	todoHandler := NewTodoHandler(s.svc, metrics, zerolog.Nop())

	s.router = setupTodoTestRouter(todoHandler)
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

// Routes assembled locally to avoid an import cycle with the router
// package.
func setupTodoTestRouter(todoHandler *TodoHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	todos := router.Group("/todos")
	{
		todos.GET("", todoHandler.List)
		todos.GET("/:id", todoHandler.GetByID)
		todos.POST("", todoHandler.Create)
		todos.PUT("/:id", todoHandler.Update)
		todos.DELETE("/:id", todoHandler.Delete)
	}

	return router
}

func (s *TodoHandlerSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		Expect(err).To(BeNil())
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(rr, req)

	return rr
}

func (s *TodoHandlerSuite) createTodo(title string) response.TodoResponse {
	created, err := s.svc.Create(ctx, factory.NewCreateTodoRequest(map[string]any{
		"Title":       title,
		"Description": (*string)(nil),
	}))

	Expect(err).To(BeNil())

	return *created
}

func (s *TodoHandlerSuite) TestListDefaults() {
	s.createTodo("First")
	s.createTodo("Second")
	s.createTodo("Third")

	rr := s.request(http.MethodGet, "/todos", nil)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var paged response.PagedResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &paged)).To(Succeed())
	Expect(paged.Total).To(Equal(int64(3)))
	Expect(paged.Items).To(HaveLen(3))
	Expect(paged.Items[0].Title).To(Equal("Third"))
}

func (s *TodoHandlerSuite) TestListPaginationAndSearch() {
	for i := 1; i <= 12; i++ {
		s.createTodo(fmt.Sprintf("Task %02d", i))
	}

	s.createTodo("Completely different")

	rr := s.request(http.MethodGet, "/todos?page=2&pageSize=10", nil)

	var paged response.PagedResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &paged)).To(Succeed())
	Expect(paged.Total).To(Equal(int64(13)))
	Expect(paged.Items).To(HaveLen(3))

	rr = s.request(http.MethodGet, "/todos?search=Task", nil)

	Expect(json.Unmarshal(rr.Body.Bytes(), &paged)).To(Succeed())
	Expect(paged.Total).To(Equal(int64(12)))
}

func (s *TodoHandlerSuite) TestGetByID() {
	created := s.createTodo("Find me")

	rr := s.request(http.MethodGet, fmt.Sprintf("/todos/%d", created.ID), nil)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var got response.TodoResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &got)).To(Succeed())
	Expect(got.ID).To(Equal(created.ID))
	Expect(got.Title).To(Equal("Find me"))
}

func (s *TodoHandlerSuite) TestGetByIDNotFound() {
	rr := s.request(http.MethodGet, "/todos/9999", nil)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestGetByIDNonNumeric() {
	rr := s.request(http.MethodGet, "/todos/not-a-number", nil)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestCreateReturnsLocationAndBody() {
	rr := s.request(http.MethodPost, "/todos", request.CreateTodoRequest{Title: "Buy milk"})

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var created response.TodoResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &created)).To(Succeed())
	Expect(created.ID).To(BeNumerically(">", 0))
	Expect(created.Title).To(Equal("Buy milk"))
	Expect(created.Completed).To(BeFalse())
	Expect(rr.Header().Get("Location")).To(Equal(fmt.Sprintf("/todos/%d", created.ID)))
}

func (s *TodoHandlerSuite) TestCreateBlankTitleRejected() {
	for _, title := range []string{"", "   "} {
		rr := s.request(http.MethodPost, "/todos", request.CreateTodoRequest{Title: title})

		Expect(rr.Code).To(Equal(http.StatusBadRequest))
	}

	rr := s.request(http.MethodGet, "/todos", nil)

	var paged response.PagedResponse

	Expect(json.Unmarshal(rr.Body.Bytes(), &paged)).To(Succeed())
	Expect(paged.Total).To(Equal(int64(0)))
}

func (s *TodoHandlerSuite) TestCreateInvalidBodyRejected() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/todos", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerSuite) TestUpdateSucceedsWithNoContent() {
	created := s.createTodo("Before")

	rr := s.request(http.MethodPut, fmt.Sprintf("/todos/%d", created.ID), request.UpdateTodoRequest{
		Title:     "After",
		Completed: true,
	})

	Expect(rr.Code).To(Equal(http.StatusNoContent))

	got, err := s.svc.GetByID(ctx, created.ID)

	Expect(err).To(BeNil())
	Expect(got.Title).To(Equal("After"))
	Expect(got.Completed).To(BeTrue())
	Expect(got.CompletedAt).NotTo(BeNil())
}

func (s *TodoHandlerSuite) TestUpdateUnknownIDReturnsNotFound() {
	rr := s.request(http.MethodPut, "/todos/9999", request.UpdateTodoRequest{Title: "Anything"})

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestUpdateBlankTitleRejected() {
	created := s.createTodo("Keep me")

	rr := s.request(http.MethodPut, fmt.Sprintf("/todos/%d", created.ID), request.UpdateTodoRequest{Title: "  "})

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	got, _ := s.svc.GetByID(ctx, created.ID)

	Expect(got.Title).To(Equal("Keep me"))
}

func (s *TodoHandlerSuite) TestDeleteThenNotFound() {
	created := s.createTodo("Temporary")

	rr := s.request(http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), nil)

	Expect(rr.Code).To(Equal(http.StatusNoContent))

	rr = s.request(http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), nil)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}
