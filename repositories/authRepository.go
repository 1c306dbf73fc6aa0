package repositories

import (
	"context"
	"strings"

	"MediCare/database"
	"MediCare/models"
)

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.UserView, error)
	GetAllUsers(ctx context.Context) ([]models.UserView, error)
	CreateUser(ctx context.Context, user models.User) (models.UserView, error)
	UpdateUser(ctx context.Context, userID int64, patch func(*models.User)) (models.UserView, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userRepository struct {
	store *database.Store
	refs  references
}

func NewUserRepository(store *database.Store, policy models.DeletePolicy) UserRepository {
	return &userRepository{store: store, refs: newReferences(policy)}
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.store.View(ctx, func(tx *database.Tx) error {
		_, exists = findUserByEmail(tx, email)
		return nil
	})
	return exists, err
}

// GetUserByEmail returns the full record, password hash included, for
// credential checks. It never leaves the services package.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.store.View(ctx, func(tx *database.Tx) error {
		u, ok := findUserByEmail(tx, email)
		if !ok {
			return models.NotFound("User")
		}
		user = &u
		return nil
	})
	return user, err
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.UserView, error) {
	var view models.UserView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		u, ok := tx.Users.Get(userID)
		if !ok {
			return models.NotFound("User")
		}
		view = u.View()
		return nil
	})
	return view, err
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.UserView, error) {
	var users []models.UserView
	err := r.store.View(ctx, func(tx *database.Tx) error {
		rows := tx.Users.List()
		users = make([]models.UserView, 0, len(rows))
		for _, u := range rows {
			users = append(users, u.View())
		}
		return nil
	})
	return users, err
}

// CreateUser assigns the id and created_at. The email must not belong to
// another account.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.UserView, error) {
	var view models.UserView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		created, err := insertUser(tx, user)
		if err != nil {
			return err
		}
		view = created.View()
		return nil
	})
	return view, err
}

func (r *userRepository) UpdateUser(ctx context.Context, userID int64, patch func(*models.User)) (models.UserView, error) {
	var view models.UserView
	err := r.store.Update(ctx, func(tx *database.Tx) error {
		u, ok := tx.Users.Get(userID)
		if !ok {
			return models.NotFound("User")
		}
		patch(&u)
		u.ID = userID
		u.Email = strings.TrimSpace(u.Email)
		if other, ok := findUserByEmail(tx, u.Email); ok && other.ID != userID {
			return models.Conflict("email %s is already registered", u.Email)
		}
		tx.Users.Put(userID, u)
		view = u.View()
		return nil
	})
	return view, err
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	return r.store.Update(ctx, func(tx *database.Tx) error {
		return r.refs.deleteUser(tx, userID)
	})
}

func findUserByEmail(tx *database.Tx, email string) (models.User, bool) {
	return tx.Users.First(func(u models.User) bool {
		return models.SameEmail(u.Email, email)
	})
}

// insertUser is shared by plain user creation and the doctor and patient
// registrations that create an account in the same transaction.
func insertUser(tx *database.Tx, user models.User) (models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if _, taken := findUserByEmail(tx, user.Email); taken {
		return models.User{}, models.Conflict("email %s is already registered", user.Email)
	}
	return tx.Users.Insert(func(id int64) models.User {
		user.ID = id
		user.CreatedAt = tx.Now()
		return user
	}), nil
}
