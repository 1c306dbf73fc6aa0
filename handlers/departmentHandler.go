package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/models"
	"MediCare/services"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	service *services.DepartmentService
}

func NewDepartmentHandler(service *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func (h *DepartmentHandler) GetAllDepartments(c *gin.Context) {
	departments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) GetDepartmentByID(c *gin.Context) {
	id, ok := pathID(c, "id", "department")
	if !ok {
		return
	}
	department, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var in models.DepartmentInput
	if !bindJSON(c, &in) {
		return
	}
	department, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c, "id", "department")
	if !ok {
		return
	}
	var in models.DepartmentInput
	if !bindJSON(c, &in) {
		return
	}
	department, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c, "id", "department")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
