package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/models"
	"MediCare/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service  *services.AppointmentService
	patients *services.PatientService
	doctors  *services.DoctorService
}

func NewAppointmentHandler(service *services.AppointmentService, patients *services.PatientService, doctors *services.DoctorService) *AppointmentHandler {
	return &AppointmentHandler{service: service, patients: patients, doctors: doctors}
}

// CreateAppointment books an appointment together with its pending bill.
// Patients book for themselves only; an omitted patient_id defaults to the
// caller's own record.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var booking models.Booking
	if !bindJSON(c, &booking) {
		return
	}

	ctx := c.Request.Context()
	if user, err := middlewares.ExtractUserFromContext(ctx); err == nil && user.Role == models.RolePatient {
		patient, err := h.patients.GetByUserID(ctx, user.ID)
		if err != nil || (booking.PatientID != 0 && booking.PatientID != patient.ID) {
			middlewares.HttpError(c, models.ErrForbidden)
			return
		}
		booking.PatientID = patient.ID
	}

	appointment, err := h.service.Book(ctx, booking)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment")
	if !ok {
		return
	}
	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	patientID, ok := pathID(c, "patientId", "patient")
	if !ok {
		return
	}
	appointments, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	doctorID, ok := pathID(c, "doctorId", "doctor")
	if !ok {
		return
	}
	appointments, err := h.service.GetByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment")
	if !ok {
		return
	}
	var body struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if !bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	var (
		appointment models.AppointmentView
		err         error
	)
	if user, uerr := middlewares.ExtractUserFromContext(ctx); uerr == nil && user.Role == models.RoleDoctor {
		doctor, derr := h.doctors.GetByUserID(ctx, user.ID)
		if derr != nil {
			middlewares.HttpError(c, models.ErrForbidden)
			return
		}
		appointment, err = h.service.UpdateStatusByDoctor(ctx, doctor.ID, id, body.Status)
	} else {
		appointment, err = h.service.UpdateStatus(ctx, id, body.Status)
	}
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c, "id", "appointment")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
