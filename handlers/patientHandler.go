package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/models"
	"MediCare/services"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := pathID(c, "id", "patient")
	if !ok {
		return
	}
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) GetPatientByUserID(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	patient, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var in models.NewPatient
	if !bindJSON(c, &in) {
		return
	}
	patient, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var in models.PatientRegistration
	if !bindJSON(c, &in) {
		return
	}
	patient, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := pathID(c, "id", "patient")
	if !ok {
		return
	}
	var in models.PatientUpdate
	if !bindJSON(c, &in) {
		return
	}
	patient, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := pathID(c, "id", "patient")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
