package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/models"
	"MediCare/services"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := pathID(c, "id", "doctor")
	if !ok {
		return
	}
	doctor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) GetDoctorByUserID(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	doctor, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) GetDoctorsByDepartment(c *gin.Context) {
	departmentID, ok := pathID(c, "deptId", "department")
	if !ok {
		return
	}
	doctors, err := h.service.GetByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctorEarnings(c *gin.Context) {
	id, ok := pathID(c, "id", "doctor")
	if !ok {
		return
	}
	earnings, err := h.service.Earnings(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, earnings)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var in models.NewDoctor
	if !bindJSON(c, &in) {
		return
	}
	doctor, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) RegisterDoctor(c *gin.Context) {
	var in models.DoctorRegistration
	if !bindJSON(c, &in) {
		return
	}
	doctor, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := pathID(c, "id", "doctor")
	if !ok {
		return
	}
	var in models.DoctorUpdate
	if !bindJSON(c, &in) {
		return
	}
	doctor, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := pathID(c, "id", "doctor")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
