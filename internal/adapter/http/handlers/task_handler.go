package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "stonecraft/internal/adapter/http/dto/request"
	response "stonecraft/internal/adapter/http/dto/response"
	"stonecraft/internal/usecase"
	"stonecraft/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_PAYLOAD", "Invalid task payload", http.StatusBadRequest)
	errInvalidTaskPathID  = pkg.NewDomainErrorSimple("INVALID_TASK_ID", "Invalid task id", http.StatusBadRequest)
)

// TaskHandler handles HTTP requests for follow-up tasks.
type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// ListTasks godoc
//
//	@Summary	List all follow-up tasks
//	@Produce	json
//	@Success	200	{array}	response.TaskResponse
//	@Router		/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

// CreateTask godoc
//
//	@Summary	Create a follow-up task
//	@Accept		json
//	@Produce	json
//	@Param		task	body		request.TaskRequest	true	"Task payload"
//	@Success	201		{object}	response.TaskResponse
//	@Router		/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.Create(c.Request.Context(), payload.EstimateID, payload.DueDate, payload.Completed)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(task))
}

// CompleteTask marks a task as completed. The transition is one-way;
// repeating it is a no-op success, and an explicit completed=false is
// rejected.
//
//	@Summary	Mark a follow-up task completed
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Task id"
//	@Param		update	body		request.TaskCompletionRequest	true	"Completion payload"
//	@Success	200		{object}	response.TaskResponse
//	@Router		/tasks/{id}/update [put]
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidTaskPathID.HTTPStatus, errInvalidTaskPathID.ToHTTPError())
		return
	}

	var payload request.TaskCompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Completed == nil || !*payload.Completed {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.MarkCompleted(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][handler] complete failed task_id=%d err=%v", id, err)
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task))
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID), errors.Is(err, usecase.ErrInvalidTaskEstimateID), errors.Is(err, usecase.ErrInvalidTaskDueDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
