package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/rental_shop/internal/events"
	"github.com/Skotchmaster/rental_shop/internal/models"
	"github.com/Skotchmaster/rental_shop/internal/repo"
	"github.com/Skotchmaster/rental_shop/internal/transport"
)

type RoleService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	return s.Repo.ListRoles(ctx)
}

func (s *RoleService) Create(ctx context.Context, req transport.CreateRoleRequest) (*models.Role, error) {
	if strings.TrimSpace(req.RoleName) == "" {
		return nil, fmt.Errorf("%w: role_name required", ErrValidation)
	}
	role := &models.Role{RoleName: req.RoleName, RoleDescription: req.RoleDescription}
	if err := s.Repo.CreateRole(ctx, role); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRole, req.RoleName)
		}
		return nil, err
	}
	return role, nil
}

// ReplaceUserRoles makes roleIDs the user's complete role set.
func (s *RoleService) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	if err := s.Repo.ReplaceUserRoles(ctx, userID, roleIDs); err != nil {
		return mapRepoErr(err)
	}
	publish(ctx, s.Events, events.TopicUser, userID, "user_roles_replaced", map[string]any{
		"users_id": userID,
		"rolesId":  roleIDs,
	})
	return nil
}

func (s *RoleService) DeleteUserRoles(ctx context.Context, userID uint) error {
	if err := s.Repo.DeleteUserRoles(ctx, userID); err != nil {
		return err
	}
	publish(ctx, s.Events, events.TopicUser, userID, "user_roles_replaced", map[string]any{
		"users_id": userID,
		"rolesId":  []uint{},
	})
	return nil
}
