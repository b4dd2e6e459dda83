package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

type taskRequest struct {
	Task *string `json:"task" binding:"required"`
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

func (s *Server) createTodo(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalidInput(c, "body", nil, err)
		return
	}

	task, err := s.API.CreateTask(c.Request.Context(), *req.Task)
	if err != nil {
		s.respondError(c, "create task", err)
		return
	}

	logging.Debugf("[WEB]: created task %d\n", task.ID)
	s.renderMessage(c, http.StatusOK, messageSuccess, messageTaskAdded)
}

func (s *Server) listTodos(c *gin.Context) {
	tasks, err := s.API.ListTasks(c.Request.Context())
	if err != nil {
		s.respondError(c, "list tasks", err)
		return
	}

	body, err := taskListFragment(tasks)
	if err != nil {
		s.respondError(c, "render task list", err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

// updateTodo replies with the success fragment whether or not the id exists.
func (s *Server) updateTodo(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		s.invalidInput(c, "id", rawID, err)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalidInput(c, "body", nil, err)
		return
	}

	if err := s.API.UpdateTask(c.Request.Context(), id, *req.Task); err != nil {
		s.respondError(c, "update task", err)
		return
	}

	s.renderMessage(c, http.StatusOK, messageSuccess, messageTaskUpdated)
}

// bulkDeleteTodos reports how many ids were submitted, not how many rows were removed.
func (s *Server) bulkDeleteTodos(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.invalidInput(c, "body", nil, err)
		return
	}

	removed, err := s.API.DeleteTasks(c.Request.Context(), req.IDs)
	if err != nil {
		s.respondError(c, "delete tasks", err)
		return
	}

	logging.Debugf("[WEB]: bulk delete of %d id(s) removed %d row(s)\n", len(req.IDs), removed)
	s.renderMessage(c, http.StatusOK, messageSuccess, fmt.Sprintf(messageTasksGone, len(req.IDs)))
}

// respondError turns an API error into a response. Validation failures are a normal
// outcome rendered as a fragment with status 200; anything else is a 500.
func (s *Server) respondError(c *gin.Context, op string, err error) {
	if errors.IsErrorType(err, errors.ErrorTypeValidation) {
		s.renderMessage(c, http.StatusOK, messageError, messageTaskEmpty)
		return
	}

	if errors.ShouldLogError(err) {
		if appErr, ok := errors.AsAppError(err); ok {
			if storeOp, found := appErr.GetContext("operation"); found {
				op = fmt.Sprintf("%s (%v)", op, storeOp)
			}
		}
		s.log.Printf("request %s: %s failed [%s]: %v", requestID(c), op, errors.GetErrorCode(err), err)
	}
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *Server) invalidInput(c *gin.Context, field string, value interface{}, cause error) {
	appErr := errors.NewInvalidInputError(field, value, cause.Error())
	logging.Debugf("[WEB]: request %s: %v\n", requestID(c), appErr)
	s.renderMessage(c, http.StatusUnprocessableEntity, messageError, errors.GetUserMessage(appErr))
}

func (s *Server) renderMessage(c *gin.Context, status int, kind messageKind, text string) {
	body, err := messageFragment(kind, text)
	if err != nil {
		s.log.Printf("request %s: render message: %v", requestID(c), err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Data(status, htmlContentType, body)
}
