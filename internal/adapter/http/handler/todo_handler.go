package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type TodoHandler struct {
	svc     port.TodoService
	metrics *telemetry.Metrics
	logger  zerolog.Logger
}

func NewTodoHandler(svc port.TodoService, metrics *telemetry.Metrics, logger zerolog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, metrics: metrics, logger: logger}
}

func (t *TodoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	search := c.Query("search")

	items, total, err := t.svc.GetPaged(ctx, page, pageSize, search)

	if err != nil {
		t.logger.Error().Err(err).Msg("failed to list todos")
		helper.SendInternalError(c, "error listing todos")
		return
	}

	t.metrics.RecordTodoOperation("list")

	c.JSON(http.StatusOK, response.PagedResponse{Total: total, Items: items})
}

func (t *TodoHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		helper.SendNotFoundError(c)
		return
	}

	todo, err := t.svc.GetByID(ctx, id)

	if err != nil {
		t.logger.Error().Err(err).Int64("id", id).Msg("failed to get todo")
		helper.SendInternalError(c, "error getting todo")
		return
	}

	if todo == nil {
		helper.SendNotFoundError(c)
		return
	}

	t.metrics.RecordTodoOperation("get")

	c.JSON(http.StatusOK, todo)
}

func (t *TodoHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequestError(c, "request", "invalid request body")
		return
	}

	if strings.TrimSpace(params.Title) == "" {
		helper.SendBadRequestError(c, "title", "Title is required.")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	created, err := t.svc.Create(ctx, params)

	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) {
			helper.SendBadRequestError(c, "title", "Title is required.")
			return
		}

		t.logger.Error().Err(err).Msg("failed to create todo")
		helper.SendInternalError(c, "error creating todo")
		return
	}

	t.metrics.RecordTodoOperation("create")

	c.Header("Location", fmt.Sprintf("/todos/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (t *TodoHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		helper.SendNotFoundError(c)
		return
	}

	var params request.UpdateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequestError(c, "request", "invalid request body")
		return
	}

	if strings.TrimSpace(params.Title) == "" {
		helper.SendBadRequestError(c, "title", "Title is required.")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	updated, err := t.svc.Update(ctx, id, params)

	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) {
			helper.SendBadRequestError(c, "title", "Title is required.")
			return
		}

		t.logger.Error().Err(err).Int64("id", id).Msg("failed to update todo")
		helper.SendInternalError(c, "error updating todo")
		return
	}

	if !updated {
		helper.SendNotFoundError(c)
		return
	}

	t.metrics.RecordTodoOperation("update")

	c.Status(http.StatusNoContent)
}

func (t *TodoHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		helper.SendNotFoundError(c)
		return
	}

	deleted, err := t.svc.Delete(ctx, id)

	if err != nil {
		t.logger.Error().Err(err).Int64("id", id).Msg("failed to delete todo")
		helper.SendInternalError(c, "error deleting todo")
		return
	}

	if !deleted {
		helper.SendNotFoundError(c)
		return
	}

	t.metrics.RecordTodoOperation("delete")

	c.Status(http.StatusNoContent)
}
