package models

import "time"

// SeedUser is a seed account with its plaintext password; the loader hashes it.
type SeedUser struct {
	User
	Password string
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedDepartments returns the initial departments.
func SeedDepartments() []Department {
	return []Department{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Neurology"},
		{ID: 3, Name: "Orthopedics"},
		{ID: 4, Name: "Pediatrics"},
		{ID: 5, Name: "Oncology"},
	}
}

// SeedUsers returns the initial accounts: one admin, ten doctors, twenty patients.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{User: User{ID: 1, Name: "Sarah Mitchell", Email: "admin@medicare.pro", Role: RoleAdmin, CreatedAt: seedTime("2024-01-01T08:00:00Z")}, Password: "admin123"},
		{User: User{ID: 2, Name: "Dr. James Wilson", Email: "james.wilson@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-05T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 3, Name: "Dr. Emily Chen", Email: "emily.chen@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-06T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 4, Name: "Dr. Michael Torres", Email: "michael.torres@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-07T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 5, Name: "Dr. Sophia Patel", Email: "sophia.patel@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-08T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 6, Name: "Dr. Robert Kim", Email: "robert.kim@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-09T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 7, Name: "Dr. Amanda Foster", Email: "amanda.foster@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-10T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 8, Name: "Dr. David Nguyen", Email: "david.nguyen@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-11T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 9, Name: "Dr. Lisa Johansson", Email: "lisa.johansson@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-12T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 10, Name: "Dr. Kevin Brooks", Email: "kevin.brooks@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-13T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 11, Name: "Dr. Rachel Greene", Email: "rachel.greene@medicare.pro", Role: RoleDoctor, CreatedAt: seedTime("2024-01-14T09:00:00Z")}, Password: "doctor123"},
		{User: User{ID: 12, Name: "Alice Johnson", Email: "alice@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-01T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 13, Name: "Bob Martinez", Email: "bob@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-02T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 14, Name: "Carol Davis", Email: "carol@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-03T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 15, Name: "Daniel Lee", Email: "daniel@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-04T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 16, Name: "Emma White", Email: "emma@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-05T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 17, Name: "Frank Brown", Email: "frank@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-06T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 18, Name: "Grace Liu", Email: "grace@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-07T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 19, Name: "Henry Wilson", Email: "henry@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-08T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 20, Name: "Isabella Clark", Email: "isabella@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-09T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 21, Name: "Jack Thompson", Email: "jack@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-10T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 22, Name: "Karen Anderson", Email: "karen@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-11T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 23, Name: "Liam Jackson", Email: "liam@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-12T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 24, Name: "Mia Harris", Email: "mia@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-13T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 25, Name: "Noah Robinson", Email: "noah@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-14T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 26, Name: "Olivia Martin", Email: "olivia@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-15T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 27, Name: "Patrick Garcia", Email: "patrick@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-16T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 28, Name: "Quinn Taylor", Email: "quinn@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-17T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 29, Name: "Ryan Moore", Email: "ryan@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-18T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 30, Name: "Sophia Young", Email: "sophia.y@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-19T10:00:00Z")}, Password: "patient123"},
		{User: User{ID: 31, Name: "Tyler Hall", Email: "tyler@example.com", Role: RolePatient, CreatedAt: seedTime("2024-02-20T10:00:00Z")}, Password: "patient123"},
	}
}

// SeedDoctors returns the initial doctors.
func SeedDoctors() []Doctor {
	return []Doctor{
		{ID: 1, UserID: 2, DepartmentID: 1, Specialization: "Interventional Cardiologist", Fee: 250},
		{ID: 2, UserID: 3, DepartmentID: 2, Specialization: "Neurologist & Epileptologist", Fee: 280},
		{ID: 3, UserID: 4, DepartmentID: 3, Specialization: "Orthopedic Surgeon", Fee: 300},
		{ID: 4, UserID: 5, DepartmentID: 4, Specialization: "Pediatric Specialist", Fee: 200},
		{ID: 5, UserID: 6, DepartmentID: 5, Specialization: "Medical Oncologist", Fee: 350},
		{ID: 6, UserID: 7, DepartmentID: 1, Specialization: "Cardiac Electrophysiologist", Fee: 270},
		{ID: 7, UserID: 8, DepartmentID: 2, Specialization: "Neuro-Ophthalmologist", Fee: 260},
		{ID: 8, UserID: 9, DepartmentID: 3, Specialization: "Sports Medicine Specialist", Fee: 220},
		{ID: 9, UserID: 10, DepartmentID: 4, Specialization: "Neonatologist", Fee: 240},
		{ID: 10, UserID: 11, DepartmentID: 5, Specialization: "Radiation Oncologist", Fee: 320},
	}
}

// SeedPatients returns the initial patients.
func SeedPatients() []Patient {
	return []Patient{
		{ID: 1, UserID: 12, Age: 45, Gender: "Female", Phone: "+1-555-0101", Address: "123 Oak Street, Springfield, IL 62701"},
		{ID: 2, UserID: 13, Age: 62, Gender: "Male", Phone: "+1-555-0102", Address: "456 Maple Ave, Denver, CO 80202"},
		{ID: 3, UserID: 14, Age: 38, Gender: "Female", Phone: "+1-555-0103", Address: "789 Pine Road, Seattle, WA 98101"},
		{ID: 4, UserID: 15, Age: 55, Gender: "Male", Phone: "+1-555-0104", Address: "321 Elm Drive, Austin, TX 78701"},
		{ID: 5, UserID: 16, Age: 29, Gender: "Female", Phone: "+1-555-0105", Address: "654 Cedar Lane, Miami, FL 33101"},
		{ID: 6, UserID: 17, Age: 71, Gender: "Male", Phone: "+1-555-0106", Address: "987 Birch Blvd, Portland, OR 97201"},
		{ID: 7, UserID: 18, Age: 33, Gender: "Female", Phone: "+1-555-0107", Address: "246 Willow Way, Chicago, IL 60601"},
		{ID: 8, UserID: 19, Age: 48, Gender: "Male", Phone: "+1-555-0108", Address: "135 Aspen Court, Phoenix, AZ 85001"},
		{ID: 9, UserID: 20, Age: 26, Gender: "Female", Phone: "+1-555-0109", Address: "579 Hickory Hill, Atlanta, GA 30301"},
		{ID: 10, UserID: 21, Age: 53, Gender: "Male", Phone: "+1-555-0110", Address: "864 Sycamore St, Boston, MA 02101"},
		{ID: 11, UserID: 22, Age: 41, Gender: "Female", Phone: "+1-555-0111", Address: "753 Poplar Place, Nashville, TN 37201"},
		{ID: 12, UserID: 23, Age: 67, Gender: "Male", Phone: "+1-555-0112", Address: "159 Dogwood Dr, Charlotte, NC 28201"},
		{ID: 13, UserID: 24, Age: 31, Gender: "Female", Phone: "+1-555-0113", Address: "357 Magnolia Blvd, Las Vegas, NV 89101"},
		{ID: 14, UserID: 25, Age: 44, Gender: "Male", Phone: "+1-555-0114", Address: "246 Cypress Ave, San Diego, CA 92101"},
		{ID: 15, UserID: 26, Age: 58, Gender: "Female", Phone: "+1-555-0115", Address: "468 Redwood Rd, Minneapolis, MN 55401"},
		{ID: 16, UserID: 27, Age: 36, Gender: "Male", Phone: "+1-555-0116", Address: "579 Juniper Ln, Detroit, MI 48201"},
		{ID: 17, UserID: 28, Age: 22, Gender: "Female", Phone: "+1-555-0117", Address: "681 Spruce St, Memphis, TN 38101"},
		{ID: 18, UserID: 29, Age: 49, Gender: "Male", Phone: "+1-555-0118", Address: "792 Walnut Ave, Denver, CO 80203"},
		{ID: 19, UserID: 30, Age: 64, Gender: "Female", Phone: "+1-555-0119", Address: "813 Chestnut Ct, Philadelphia, PA 19101"},
		{ID: 20, UserID: 31, Age: 37, Gender: "Male", Phone: "+1-555-0120", Address: "924 Pecan Dr, Houston, TX 77001"},
	}
}

// SeedAppointments returns the initial appointments.
func SeedAppointments() []Appointment {
	return []Appointment{
		{ID: 1, PatientID: 1, DoctorID: 1, AppointmentDate: "2025-02-10", AppointmentTime: "09:00", Status: StatusCompleted},
		{ID: 2, PatientID: 2, DoctorID: 2, AppointmentDate: "2025-02-11", AppointmentTime: "10:00", Status: StatusCompleted},
		{ID: 3, PatientID: 3, DoctorID: 3, AppointmentDate: "2025-02-12", AppointmentTime: "11:00", Status: StatusCompleted},
		{ID: 4, PatientID: 4, DoctorID: 1, AppointmentDate: "2025-02-13", AppointmentTime: "09:30", Status: StatusCompleted},
		{ID: 5, PatientID: 5, DoctorID: 4, AppointmentDate: "2025-02-14", AppointmentTime: "14:00", Status: StatusCompleted},
		{ID: 6, PatientID: 6, DoctorID: 5, AppointmentDate: "2025-02-15", AppointmentTime: "15:00", Status: StatusCancelled},
		{ID: 7, PatientID: 7, DoctorID: 6, AppointmentDate: "2025-02-17", AppointmentTime: "08:30", Status: StatusCompleted},
		{ID: 8, PatientID: 8, DoctorID: 7, AppointmentDate: "2025-02-18", AppointmentTime: "11:30", Status: StatusScheduled},
		{ID: 9, PatientID: 9, DoctorID: 8, AppointmentDate: "2025-02-19", AppointmentTime: "13:00", Status: StatusScheduled},
		{ID: 10, PatientID: 10, DoctorID: 9, AppointmentDate: "2025-02-20", AppointmentTime: "16:00", Status: StatusCompleted},
		{ID: 11, PatientID: 11, DoctorID: 10, AppointmentDate: "2025-02-21", AppointmentTime: "09:00", Status: StatusCancelled},
		{ID: 12, PatientID: 12, DoctorID: 1, AppointmentDate: "2025-02-22", AppointmentTime: "10:30", Status: StatusScheduled},
		{ID: 13, PatientID: 13, DoctorID: 2, AppointmentDate: "2025-02-23", AppointmentTime: "14:30", Status: StatusCompleted},
		{ID: 14, PatientID: 14, DoctorID: 3, AppointmentDate: "2025-02-24", AppointmentTime: "15:30", Status: StatusScheduled},
		{ID: 15, PatientID: 15, DoctorID: 4, AppointmentDate: "2025-02-25", AppointmentTime: "08:00", Status: StatusScheduled},
		{ID: 16, PatientID: 16, DoctorID: 5, AppointmentDate: "2025-02-26", AppointmentTime: "10:00", Status: StatusCompleted},
		{ID: 17, PatientID: 17, DoctorID: 6, AppointmentDate: "2025-02-27", AppointmentTime: "11:00", Status: StatusScheduled},
		{ID: 18, PatientID: 18, DoctorID: 7, AppointmentDate: "2025-02-28", AppointmentTime: "13:30", Status: StatusScheduled},
		{ID: 19, PatientID: 19, DoctorID: 8, AppointmentDate: "2025-03-01", AppointmentTime: "09:00", Status: StatusScheduled},
		{ID: 20, PatientID: 20, DoctorID: 9, AppointmentDate: "2025-03-02", AppointmentTime: "14:00", Status: StatusScheduled},
		{ID: 21, PatientID: 1, DoctorID: 2, AppointmentDate: "2025-03-03", AppointmentTime: "10:00", Status: StatusScheduled},
		{ID: 22, PatientID: 2, DoctorID: 1, AppointmentDate: "2025-03-04", AppointmentTime: "11:30", Status: StatusScheduled},
		{ID: 23, PatientID: 3, DoctorID: 4, AppointmentDate: "2025-03-05", AppointmentTime: "14:00", Status: StatusScheduled},
		{ID: 24, PatientID: 4, DoctorID: 5, AppointmentDate: "2025-03-06", AppointmentTime: "09:00", Status: StatusScheduled},
		{ID: 25, PatientID: 5, DoctorID: 6, AppointmentDate: "2025-03-07", AppointmentTime: "15:00", Status: StatusScheduled},
		{ID: 26, PatientID: 6, DoctorID: 7, AppointmentDate: "2025-03-08", AppointmentTime: "08:30", Status: StatusCancelled},
		{ID: 27, PatientID: 7, DoctorID: 8, AppointmentDate: "2025-03-09", AppointmentTime: "10:30", Status: StatusScheduled},
		{ID: 28, PatientID: 8, DoctorID: 9, AppointmentDate: "2025-03-10", AppointmentTime: "13:00", Status: StatusScheduled},
		{ID: 29, PatientID: 9, DoctorID: 10, AppointmentDate: "2025-03-11", AppointmentTime: "16:00", Status: StatusScheduled},
		{ID: 30, PatientID: 10, DoctorID: 1, AppointmentDate: "2025-03-12", AppointmentTime: "09:30", Status: StatusScheduled},
	}
}

// SeedPrescriptions returns the initial prescriptions. Appointment 2 has two.
func SeedPrescriptions() []Prescription {
	return []Prescription{
		{ID: 1, AppointmentID: 1, Diagnosis: "Hypertensive Heart Disease", Note: "Take Amlodipine 5mg once daily. Reduce sodium intake. Follow up in 4 weeks. Monitor BP daily."},
		{ID: 2, AppointmentID: 2, Diagnosis: "Migraine with Aura", Note: "Prescribed Sumatriptan 50mg as needed. Avoid known triggers. Keep headache diary. MRI scheduled."},
		{ID: 3, AppointmentID: 3, Diagnosis: "Lumbar Disc Herniation", Note: "Physical therapy 3x/week. Ibuprofen 400mg post-meal. Avoid heavy lifting. Consider surgery if no improvement."},
		{ID: 4, AppointmentID: 4, Diagnosis: "Angina Pectoris", Note: "Nitroglycerine spray as needed. Continue Aspirin 100mg. Stress test scheduled. Dietary changes advised."},
		{ID: 5, AppointmentID: 5, Diagnosis: "Childhood Asthma", Note: "Salbutamol inhaler 2 puffs every 4-6 hours. Avoid allergens. Peak flow monitoring daily. Pulmonologist referral."},
		{ID: 6, AppointmentID: 7, Diagnosis: "Atrial Fibrillation", Note: "Warfarin 5mg anticoagulation therapy. INR monitoring weekly. Avoid alcohol. Cardioversion evaluation pending."},
		{ID: 7, AppointmentID: 10, Diagnosis: "Gestational Diabetes", Note: "Insulin Glargine 10 units at bedtime. Diet modification. Blood glucose monitoring 4x/day. Weekly check-ups."},
		{ID: 8, AppointmentID: 13, Diagnosis: "Tension Headache", Note: "Paracetamol 500mg as needed. Relaxation techniques. Reduce screen time. Ergonomic assessment."},
		{ID: 9, AppointmentID: 16, Diagnosis: "Stage II Breast Cancer", Note: "Chemotherapy cycle initiated. Anti-emetics prescribed. Nutritional support. Monthly imaging follow-up."},
		{ID: 10, AppointmentID: 2, Diagnosis: "Follow-up: Migraine Management", Note: "Prophylactic Topiramate 25mg daily. Continue diary. Lifestyle modification counseling. Next review in 6 weeks."},
	}
}

// SeedBills returns the initial bills.
func SeedBills() []Bill {
	return []Bill{
		{ID: 1, AppointmentID: 1, Amount: 250, Status: BillPaid, CreatedAt: seedTime("2025-02-10T10:00:00Z")},
		{ID: 2, AppointmentID: 2, Amount: 280, Status: BillPaid, CreatedAt: seedTime("2025-02-11T11:00:00Z")},
		{ID: 3, AppointmentID: 3, Amount: 300, Status: BillPaid, CreatedAt: seedTime("2025-02-12T12:00:00Z")},
		{ID: 4, AppointmentID: 4, Amount: 250, Status: BillPaid, CreatedAt: seedTime("2025-02-13T10:30:00Z")},
		{ID: 5, AppointmentID: 5, Amount: 200, Status: BillPaid, CreatedAt: seedTime("2025-02-14T15:00:00Z")},
		{ID: 6, AppointmentID: 6, Amount: 350, Status: BillPending, CreatedAt: seedTime("2025-02-15T16:00:00Z")},
		{ID: 7, AppointmentID: 7, Amount: 270, Status: BillPaid, CreatedAt: seedTime("2025-02-17T09:30:00Z")},
		{ID: 8, AppointmentID: 10, Amount: 240, Status: BillPaid, CreatedAt: seedTime("2025-02-20T17:00:00Z")},
		{ID: 9, AppointmentID: 13, Amount: 280, Status: BillPending, CreatedAt: seedTime("2025-02-23T15:30:00Z")},
		{ID: 10, AppointmentID: 16, Amount: 320, Status: BillPaid, CreatedAt: seedTime("2025-02-26T11:00:00Z")},
	}
}
