package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type PatientRepository struct {
	store *database.Store
	refs  references
}

func NewPatientRepository(store *database.Store, policy models.DeletePolicy) *PatientRepository {
	return &PatientRepository{store: store, refs: newReferences(policy)}
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.PatientView, error) {
	var out []models.PatientView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		out = patientViews(tx, tx.Patients.List())
		return nil
	})
	return out, err
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (models.PatientView, error) {
	var out models.PatientView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		p, ok := tx.Patients.Get(id)
		if !ok {
			return models.NotFound("Patient")
		}
		out = patientView(tx, p)
		return nil
	})
	return out, err
}

func (r *PatientRepository) GetByUserID(ctx context.Context, userID int64) (models.PatientView, error) {
	var out models.PatientView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		p, ok := tx.Patients.First(func(p models.Patient) bool { return p.UserID == userID })
		if !ok {
			return models.NotFound("Patient")
		}
		out = patientView(tx, p)
		return nil
	})
	return out, err
}

func (r *PatientRepository) Create(ctx context.Context, in models.NewPatient) (models.PatientView, error) {
	var out models.PatientView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		p, err := insertPatient(tx, in)
		if err != nil {
			return err
		}
		out = patientView(tx, p)
		return nil
	})
	return out, err
}

// Register creates the patient's user account and patient record together.
func (r *PatientRepository) Register(ctx context.Context, user models.User, in models.NewPatient) (models.PatientView, error) {
	var out models.PatientView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		user.Role = models.RolePatient
		u, err := insertUser(tx, user)
		if err != nil {
			return err
		}
		in.UserID = u.ID
		p, err := insertPatient(tx, in)
		if err != nil {
			return err
		}
		out = patientView(tx, p)
		return nil
	})
	return out, err
}

func (r *PatientRepository) Update(ctx context.Context, id int64, in models.PatientUpdate) (models.PatientView, error) {
	var out models.PatientView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		p, ok := tx.Patients.Get(id)
		if !ok {
			return models.NotFound("Patient")
		}
		if in.Age != nil {
			p.Age = *in.Age
		}
		if in.Gender != nil {
			p.Gender = *in.Gender
		}
		if in.Phone != nil {
			p.Phone = *in.Phone
		}
		if in.Address != nil {
			p.Address = *in.Address
		}
		tx.Patients.Put(id, p)
		out = patientView(tx, p)
		return nil
	})
	return out, err
}

func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(tx *database.Tx) error {
		return r.refs.deletePatient(tx, id)
	})
}

func insertPatient(tx *database.Tx, in models.NewPatient) (models.Patient, error) {
	u, ok := tx.Users.Get(in.UserID)
	if !ok {
		return models.Patient{}, models.NotFound("User")
	}
	if u.Role != models.RolePatient {
		return models.Patient{}, models.Conflict("user %d has role %s, not patient", u.ID, u.Role)
	}
	if existing, taken := tx.Patients.First(func(p models.Patient) bool { return p.UserID == in.UserID }); taken {
		return models.Patient{}, models.Conflict("user %d already owns patient %d", in.UserID, existing.ID)
	}
	return tx.Patients.Insert(func(id int64) models.Patient {
		return models.Patient{
			ID:      id,
			UserID:  in.UserID,
			Age:     in.Age,
			Gender:  in.Gender,
			Phone:   in.Phone,
			Address: in.Address,
		}
	}), nil
}
