package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/models"
	"MediCare/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillService
}

func NewBillingHandler(service *services.BillService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) GetAllBills(c *gin.Context) {
	bills, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillingHandler) GetBillByID(c *gin.Context) {
	id, ok := pathID(c, "id", "bill")
	if !ok {
		return
	}
	bill, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// GetBillByAppointment answers null when the appointment has no bill.
func (h *BillingHandler) GetBillByAppointment(c *gin.Context) {
	appointmentID, ok := pathID(c, "appointmentId", "appointment")
	if !ok {
		return
	}
	bill, err := h.service.GetByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillingHandler) GetBillsByPatient(c *gin.Context) {
	patientID, ok := pathID(c, "patientId", "patient")
	if !ok {
		return
	}
	bills, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillingHandler) UpdateBillStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "bill")
	if !ok {
		return
	}
	var body struct {
		Status models.BillStatus `json:"status"`
	}
	if !bindJSON(c, &body) {
		return
	}
	bill, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillingHandler) GetTotalRevenue(c *gin.Context) {
	revenue, err := h.service.GetTotalRevenue(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}
