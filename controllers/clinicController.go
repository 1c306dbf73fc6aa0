package controllers

import (
	"MediCare/handlers"
	"MediCare/middlewares"
	"MediCare/models"

	"github.com/gin-gonic/gin"
)

// ClinicHandlers groups the handlers of the hospital records.
type ClinicHandlers struct {
	Departments   *handlers.DepartmentHandler
	Doctors       *handlers.DoctorHandler
	Patients      *handlers.PatientHandler
	Appointments  *handlers.AppointmentHandler
	Prescriptions *handlers.PrescriptionHandler
	Bills         *handlers.BillingHandler
	Dashboard     *handlers.DashboardHandler
}

// SetupClinicRoutes registers the record routes on api. Every route needs a
// session; writes are restricted by role.
func SetupClinicRoutes(api *gin.RouterGroup, requireSession gin.HandlerFunc, h ClinicHandlers) {
	admin := middlewares.RoleAuthMiddleware(models.RoleAdmin)
	clinic := api.Group("", requireSession)

	clinic.GET("/departments", h.Departments.GetAllDepartments)
	clinic.GET("/departments/:id", h.Departments.GetDepartmentByID)
	clinic.POST("/departments", admin, h.Departments.CreateDepartment)
	clinic.PUT("/departments/:id", admin, h.Departments.UpdateDepartment)
	clinic.DELETE("/departments/:id", admin, h.Departments.DeleteDepartment)

	clinic.GET("/doctors", h.Doctors.GetAllDoctors)
	clinic.GET("/doctors/:id", h.Doctors.GetDoctorByID)
	clinic.GET("/doctors/:id/earnings", h.Doctors.GetDoctorEarnings)
	clinic.GET("/doctors/user/:userId", h.Doctors.GetDoctorByUserID)
	clinic.GET("/doctors/department/:deptId", h.Doctors.GetDoctorsByDepartment)
	clinic.POST("/doctors", admin, h.Doctors.CreateDoctor)
	clinic.POST("/doctors/register", admin, h.Doctors.RegisterDoctor)
	clinic.PUT("/doctors/:id", admin, h.Doctors.UpdateDoctor)
	clinic.DELETE("/doctors/:id", admin, h.Doctors.DeleteDoctor)

	clinic.GET("/patients", h.Patients.GetAllPatients)
	clinic.GET("/patients/:id", h.Patients.GetPatientByID)
	clinic.GET("/patients/user/:userId", h.Patients.GetPatientByUserID)
	clinic.POST("/patients", admin, h.Patients.CreatePatient)
	clinic.POST("/patients/register", admin, h.Patients.RegisterPatient)
	clinic.PUT("/patients/:id", admin, h.Patients.UpdatePatient)
	clinic.DELETE("/patients/:id", admin, h.Patients.DeletePatient)

	clinic.GET("/appointments", admin, h.Appointments.GetAllAppointments)
	clinic.GET("/appointments/:id", h.Appointments.GetAppointmentByID)
	clinic.GET("/appointments/patient/:patientId", h.Appointments.GetAppointmentsByPatient)
	clinic.GET("/appointments/doctor/:doctorId", h.Appointments.GetAppointmentsByDoctor)
	clinic.POST("/appointments", middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RolePatient), h.Appointments.CreateAppointment)
	clinic.PUT("/appointments/:id/status", middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleDoctor), h.Appointments.UpdateAppointmentStatus)
	clinic.DELETE("/appointments/:id", admin, h.Appointments.DeleteAppointment)

	clinic.POST("/prescriptions", middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleDoctor), h.Prescriptions.CreatePrescription)
	clinic.GET("/prescriptions/:id", h.Prescriptions.GetPrescriptionByID)
	clinic.GET("/prescriptions/appointment/:appointmentId", h.Prescriptions.GetPrescriptionsByAppointment)
	clinic.GET("/prescriptions/doctor/:doctorId", h.Prescriptions.GetPrescriptionsByDoctor)
	clinic.GET("/prescriptions/patient/:patientId", h.Prescriptions.GetPrescriptionsByPatient)

	clinic.GET("/bills", admin, h.Bills.GetAllBills)
	clinic.GET("/bills/revenue", admin, h.Bills.GetTotalRevenue)
	clinic.GET("/bills/:id", h.Bills.GetBillByID)
	clinic.GET("/bills/appointment/:appointmentId", h.Bills.GetBillByAppointment)
	clinic.GET("/bills/patient/:patientId", h.Bills.GetBillsByPatient)
	clinic.PUT("/bills/:id/status", admin, h.Bills.UpdateBillStatus)

	clinic.GET("/dashboard/summary", admin, h.Dashboard.GetSummary)
}
