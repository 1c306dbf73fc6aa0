package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/models"
	"MediCare/services"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
	doctors *services.DoctorService
}

func NewPrescriptionHandler(service *services.PrescriptionService, doctors *services.DoctorService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service, doctors: doctors}
}

// CreatePrescription writes a prescription. A doctor may only write for
// their own appointments.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var in models.NewPrescription
	if !bindJSON(c, &in) {
		return
	}

	ctx := c.Request.Context()
	if user, err := middlewares.ExtractUserFromContext(ctx); err == nil && user.Role == models.RoleDoctor {
		doctor, err := h.doctors.GetByUserID(ctx, user.ID)
		if err != nil {
			middlewares.HttpError(c, models.ErrForbidden)
			return
		}
		in.DoctorID = doctor.ID
	}

	prescription, err := h.service.Create(ctx, in)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	id, ok := pathID(c, "id", "prescription")
	if !ok {
		return
	}
	prescription, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionsByAppointment(c *gin.Context) {
	appointmentID, ok := pathID(c, "appointmentId", "appointment")
	if !ok {
		return
	}
	prescriptions, err := h.service.GetByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (h *PrescriptionHandler) GetPrescriptionsByDoctor(c *gin.Context) {
	doctorID, ok := pathID(c, "doctorId", "doctor")
	if !ok {
		return
	}
	prescriptions, err := h.service.GetByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (h *PrescriptionHandler) GetPrescriptionsByPatient(c *gin.Context) {
	patientID, ok := pathID(c, "patientId", "patient")
	if !ok {
		return
	}
	prescriptions, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}
