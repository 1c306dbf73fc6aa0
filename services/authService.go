package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MediCare/metrics"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*models.Session, error)
	RevokeUser(ctx context.Context, userID int64) error
	TTL() time.Duration
}

type authService struct {
	users    repositories.UserRepository
	sessions *repositories.SessionRepository
	tokens   *utils.TokenIssuer
	latency  Latency
	metrics  *metrics.Metrics
}

func NewAuthService(users repositories.UserRepository, sessions *repositories.SessionRepository, tokens *utils.TokenIssuer, latency Latency, m *metrics.Metrics) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		latency:  latency,
		metrics:  m,
	}
}

// Login checks the credentials and opens a session. An unknown email and a
// wrong password fail the same way.
func (s *authService) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	if err := s.latency.wait(ctx, slowDelay); err != nil {
		return models.LoginResult{}, err
	}
	if err := utils.ValidateLogin(email, password); err != nil {
		return models.LoginResult{}, err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		s.metrics.Login(false)
		return models.LoginResult{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		s.metrics.Login(false)
		log.Warn().Int64("user_id", user.ID).Msg("Login rejected: wrong password")
		return models.LoginResult{}, models.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, claims, err := s.tokens.Issue(sessionID, user.ID, string(user.Role))
	if err != nil {
		return models.LoginResult{}, err
	}
	session := models.Session{
		ID:        sessionID,
		Token:     token,
		User:      user.View(),
		ExpiresAt: claims.Expiry,
	}
	if err := s.sessions.Save(ctx, session, s.tokens.TTL()); err != nil {
		return models.LoginResult{}, err
	}

	s.metrics.Login(true)
	log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return models.LoginResult{Token: token, User: session.User}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}
	if err := s.sessions.Delete(ctx, claims.UserID, claims.SessionID); err != nil {
		return err
	}
	log.Info().Int64("user_id", claims.UserID).Msg("User logged out")
	return nil
}

// Session returns the live session a token belongs to.
func (s *authService) Session(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}
	session, err := s.sessions.Get(ctx, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Token != token {
		return nil, models.ErrUnauthenticated
	}
	return session, nil
}

// RevokeUser ends every session of a user.
func (s *authService) RevokeUser(ctx context.Context, userID int64) error {
	if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	log.Info().Int64("user_id", userID).Msg("Sessions revoked")
	return nil
}

func (s *authService) TTL() time.Duration {
	return s.tokens.TTL()
}

type UserService interface {
	GetAll(ctx context.Context) ([]models.UserView, error)
	GetByID(ctx context.Context, userID int64) (models.UserView, error)
	Create(ctx context.Context, in models.NewUser) (models.UserView, error)
	Update(ctx context.Context, userID int64, in models.UserUpdate) (models.UserView, error)
	Delete(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo     repositories.UserRepository
	auth         AuthService
	passwordCost int
	latency      Latency
	metrics      *metrics.Metrics
}

func NewUserService(userRepo repositories.UserRepository, auth AuthService, passwordCost int, latency Latency, m *metrics.Metrics) UserService {
	return &userService{
		userRepo:     userRepo,
		auth:         auth,
		passwordCost: passwordCost,
		latency:      latency,
		metrics:      m,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]models.UserView, error) {
	if err := s.latency.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) GetByID(ctx context.Context, userID int64) (models.UserView, error) {
	if err := s.latency.wait(ctx, lookupDelay); err != nil {
		return models.UserView{}, err
	}
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) Create(ctx context.Context, in models.NewUser) (models.UserView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.UserView{}, err
	}
	if err := utils.ValidateNewUser(in); err != nil {
		return models.UserView{}, err
	}

	hash, err := utils.HashPassword(in.Password, s.passwordCost)
	if err != nil {
		return models.UserView{}, err
	}
	user, err := s.userRepo.CreateUser(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		return models.UserView{}, err
	}
	log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}

func (s *userService) Update(ctx context.Context, userID int64, in models.UserUpdate) (models.UserView, error) {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return models.UserView{}, err
	}
	if err := utils.ValidateUserUpdate(in); err != nil {
		return models.UserView{}, err
	}

	var hash string
	if in.Password != nil {
		var err error
		if hash, err = utils.HashPassword(*in.Password, s.passwordCost); err != nil {
			return models.UserView{}, err
		}
	}
	user, err := s.userRepo.UpdateUser(ctx, userID, func(u *models.User) {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if hash != "" {
			u.PasswordHash = hash
		}
	})
	if err != nil {
		return models.UserView{}, err
	}
	log.Info().Int64("user_id", userID).Bool("password_changed", hash != "").Msg("User updated")
	return user, nil
}

// Delete removes the account and ends its sessions.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	if err := s.latency.wait(ctx, writeDelay); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.metrics.Deleted("user")
	log.Info().Int64("user_id", userID).Msg("User deleted")

	if err := s.auth.RevokeUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions of user %d: %w", userID, err)
	}
	return nil
}
