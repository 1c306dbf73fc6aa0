package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type DoctorRepository struct {
	store *database.Store
	refs  references
}

func NewDoctorRepository(store *database.Store, policy models.DeletePolicy) *DoctorRepository {
	return &DoctorRepository{store: store, refs: newReferences(policy)}
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.DoctorView, error) {
	var out []models.DoctorView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		out = doctorViews(tx, tx.Doctors.List())
		return nil
	})
	return out, err
}

func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (models.DoctorView, error) {
	var out models.DoctorView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		d, ok := tx.Doctors.Get(id)
		if !ok {
			return models.NotFound("Doctor")
		}
		out = doctorView(tx, d)
		return nil
	})
	return out, err
}

func (r *DoctorRepository) GetByUserID(ctx context.Context, userID int64) (models.DoctorView, error) {
	var out models.DoctorView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		d, ok := tx.Doctors.First(func(d models.Doctor) bool { return d.UserID == userID })
		if !ok {
			return models.NotFound("Doctor")
		}
		out = doctorView(tx, d)
		return nil
	})
	return out, err
}

func (r *DoctorRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]models.DoctorView, error) {
	var out []models.DoctorView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		out = doctorViews(tx, tx.Doctors.Filter(func(d models.Doctor) bool {
			return d.DepartmentID == departmentID
		}))
		return nil
	})
	return out, err
}

func (r *DoctorRepository) Create(ctx context.Context, in models.NewDoctor) (models.DoctorView, error) {
	var out models.DoctorView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		d, err := insertDoctor(tx, in)
		if err != nil {
			return err
		}
		out = doctorView(tx, d)
		return nil
	})
	return out, err
}

// Register creates the doctor's user account and doctor record together.
func (r *DoctorRepository) Register(ctx context.Context, user models.User, in models.NewDoctor) (models.DoctorView, error) {
	var out models.DoctorView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		user.Role = models.RoleDoctor
		u, err := insertUser(tx, user)
		if err != nil {
			return err
		}
		in.UserID = u.ID
		d, err := insertDoctor(tx, in)
		if err != nil {
			return err
		}
		out = doctorView(tx, d)
		return nil
	})
	return out, err
}

func (r *DoctorRepository) Update(ctx context.Context, id int64, in models.DoctorUpdate) (models.DoctorView, error) {
	var out models.DoctorView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		d, ok := tx.Doctors.Get(id)
		if !ok {
			return models.NotFound("Doctor")
		}
		if in.DepartmentID != nil {
			if !tx.Departments.Has(*in.DepartmentID) {
				return models.NotFound("Department")
			}
			d.DepartmentID = *in.DepartmentID
		}
		if in.Specialization != nil {
			d.Specialization = *in.Specialization
		}
		if in.Fee != nil {
			d.Fee = *in.Fee
		}
		if in.Avatar != nil {
			if *in.Avatar == "" {
				d.Avatar = nil
			} else {
				avatar := *in.Avatar
				d.Avatar = &avatar
			}
		}
		tx.Doctors.Put(id, d)
		out = doctorView(tx, d)
		return nil
	})
	return out, err
}

func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(tx *database.Tx) error {
		return r.refs.deleteDoctor(tx, id)
	})
}

// Earnings counts the doctor's completed appointments at the current fee.
func (r *DoctorRepository) Earnings(ctx context.Context, id int64) (models.Earnings, error) {
	var out models.Earnings
	err := r.store.View(ctx, func(tx *database.Tx) error {
		d, ok := tx.Doctors.Get(id)
		if !ok {
			return models.NotFound("Doctor")
		}
		completed := tx.Appointments.Count(func(a models.Appointment) bool {
			return a.DoctorID == id && a.Status == models.StatusCompleted
		})
		out = models.Earnings{
			DoctorID:          id,
			Fee:               d.Fee,
			CompletedSessions: completed,
			TotalEarnings:     float64(completed) * d.Fee,
		}
		return nil
	})
	return out, err
}

func insertDoctor(tx *database.Tx, in models.NewDoctor) (models.Doctor, error) {
	u, ok := tx.Users.Get(in.UserID)
	if !ok {
		return models.Doctor{}, models.NotFound("User")
	}
	if u.Role != models.RoleDoctor {
		return models.Doctor{}, models.Conflict("user %d has role %s, not doctor", u.ID, u.Role)
	}
	if existing, taken := tx.Doctors.First(func(d models.Doctor) bool { return d.UserID == in.UserID }); taken {
		return models.Doctor{}, models.Conflict("user %d already owns doctor %d", in.UserID, existing.ID)
	}
	if !tx.Departments.Has(in.DepartmentID) {
		return models.Doctor{}, models.NotFound("Department")
	}
	avatar := in.Avatar
	if avatar != nil && *avatar == "" {
		avatar = nil
	}
	return tx.Doctors.Insert(func(id int64) models.Doctor {
		return models.Doctor{
			ID:             id,
			UserID:         in.UserID,
			DepartmentID:   in.DepartmentID,
			Specialization: in.Specialization,
			Fee:            in.Fee,
			Avatar:         avatar,
		}
	}), nil
}
