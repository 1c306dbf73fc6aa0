package repositories

import (
	"context"

	"MediCare/database"
	"MediCare/models"
)

type DepartmentRepository struct {
	store *database.Store
	refs  references
}

func NewDepartmentRepository(store *database.Store, policy models.DeletePolicy) *DepartmentRepository {
	return &DepartmentRepository{store: store, refs: newReferences(policy)}
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]models.DepartmentSummary, error) {
	var out []models.DepartmentSummary
	err := r.store.View(ctx, func(tx *database.Tx) error {
		rows := tx.Departments.List()
		out = make([]models.DepartmentSummary, 0, len(rows))
		for _, d := range rows {
			out = append(out, departmentSummary(tx, d))
		}
		return nil
	})
	return out, err
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (models.DepartmentDetail, error) {
	var out models.DepartmentDetail
	err := r.store.View(ctx, func(tx *database.Tx) error {
		d, ok := tx.Departments.Get(id)
		if !ok {
			return models.NotFound("Department")
		}
		out = departmentDetail(tx, d)
		return nil
	})
	return out, err
}

func (r *DepartmentRepository) Create(ctx context.Context, in models.DepartmentInput) (models.DepartmentSummary, error) {
	var out models.DepartmentSummary
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		d := tx.Departments.Insert(func(id int64) models.Department {
			return models.Department{ID: id, Name: in.Name}
		})
		out = models.DepartmentSummary{Department: d}
		return nil
	})
	return out, err
}

func (r *DepartmentRepository) Update(ctx context.Context, id int64, in models.DepartmentInput) (models.DepartmentSummary, error) {
	var out models.DepartmentSummary
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		d, ok := tx.Departments.Get(id)
		if !ok {
			return models.NotFound("Department")
		}
		d.Name = in.Name
		tx.Departments.Put(id, d)
		out = departmentSummary(tx, d)
		return nil
	})
	return out, err
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(tx *database.Tx) error {
		return r.refs.deleteDepartment(tx, id)
	})
}
