package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/events"
	"github.com/Skotchmaster/rental_shop/internal/hash"
	"github.com/Skotchmaster/rental_shop/internal/logging"
	"github.com/Skotchmaster/rental_shop/internal/models"
	"github.com/Skotchmaster/rental_shop/internal/repo"
	"github.com/Skotchmaster/rental_shop/internal/tokens"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type UserService struct {
	Repo      *repo.GormRepo
	Events    events.Publisher
	JWTSecret []byte
	TokenTTL  time.Duration
	Now       func() time.Time
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Signup creates the user with the default "user" role.
func (s *UserService) Signup(ctx context.Context, req transport.SignupRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.signup")

	password := req.Secret()
	if strings.TrimSpace(req.Username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	pwHash, err := hashSecret(password)
	if err != nil {
		if !errors.Is(err, ErrValidation) {
			l.Error("signup_error", "reason", "cannot hash the password", "error", err)
		}
		return nil, err
	}

	user := &models.User{
		UsersFirstname: req.UsersFirstname,
		UsersLastname:  req.UsersLastname,
		UsersContact:   req.UsersContact,
		UsersEmail:     req.UsersEmail,
		Username:       req.Username,
		PasswordHash:   pwHash,
	}
	if err := s.Repo.CreateUserWithRole(ctx, user, models.RoleUser); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, req.Username)
		}
		return nil, err
	}

	publish(ctx, s.Events, events.TopicUser, user.UsersID, "user_registered", map[string]any{
		"users_id": user.UsersID,
		"username": user.Username,
	})
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req transport.LoginRequest) (*transport.LoginResponse, error) {
	l := logging.FromContext(ctx).With("svc", "user.login", "username", req.Username)

	row, err := s.Repo.FindLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash.BurnCompare(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(row.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	role := ""
	if row.Role != nil {
		role = *row.Role
	}

	token, _, err := tokens.Issue(row.UsersID, role, s.JWTSecret, s.TokenTTL, s.now())
	if err != nil {
		l.Error("login_error", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	publish(ctx, s.Events, events.TopicUser, row.UsersID, "user_logged_in", map[string]any{
		"users_id": row.UsersID,
		"role":     role,
	})
	return &transport.LoginResponse{
		UserID:   row.UsersID,
		Username: row.Username,
		Role:     role,
		Token:    token,
	}, nil
}

func hashSecret(password string) (string, error) {
	h, err := hash.HashPassword(password)
	if errors.Is(err, hash.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)
	}
	return h, err
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return u, nil
}

// Update replaces the whole row. The password is required and hashed again.
func (s *UserService) Update(ctx context.Context, id uint, req transport.UpdateUserRequest) error {
	password := req.Secret()
	if strings.TrimSpace(req.Username) == "" || password == "" {
		return fmt.Errorf("%w: username and password required", ErrValidation)
	}

	pwHash, err := hashSecret(password)
	if err != nil {
		return err
	}

	n, err := s.Repo.UpdateUser(ctx, id, models.User{
		UsersFirstname: req.UsersFirstname,
		UsersLastname:  req.UsersLastname,
		UsersContact:   req.UsersContact,
		UsersEmail:     req.UsersEmail,
		Username:       req.Username,
		PasswordHash:   pwHash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return fmt.Errorf("%w: %s", ErrDuplicateUsername, req.Username)
		}
		return mapRepoErr(err)
	}
	if n > 0 {
		publish(ctx, s.Events, events.TopicUser, id, "user_updated", map[string]any{"users_id": id, "username": req.Username})
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUserCascade(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, events.TopicUser, id, "user_deleted", map[string]any{"users_id": id})
	return nil
}
