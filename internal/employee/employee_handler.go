package employee

import (
	"net/http"
	"strconv"

	employeeerrors "go-empms/internal/employee/errors"
	"go-empms/internal/shared/apperror"
	"go-empms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgCreated = "Employee Successfully Created"
	msgUpdated = "Employee Successfully Updated"
	msgDeleted = "Employee Deleted Successfully"
	msgSuccess = "Success"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.MapBindingError(err)
	h.logger.Warn("employee request body rejected",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) employeeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, msgCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Empty list answers 204, but the body is still the (empty) array.
	status := http.StatusOK
	if len(resp) == 0 {
		status = http.StatusNoContent
		resp = []EmployeeResponse{}
	}
	response.Success(c, status, msgSuccess, resp)
}

// GetById answers 204 with a null body when nothing matches. Only an
// unmatched route is a 404.
func (h *Handler) GetById(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		response.Success(c, http.StatusNoContent, msgSuccess, nil)
		return
	}

	response.Success(c, http.StatusOK, msgSuccess, resp)
}

// Update answers 201. Existing clients depend on it, do not change to 200.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, msgUpdated, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, msgDeleted, nil)
}
