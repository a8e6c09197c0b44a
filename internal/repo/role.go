package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/models"
)

func (r *GormRepo) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles := make([]models.Role, 0)
	if err := r.DB.WithContext(ctx).Order("roles_id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormRepo) CreateRole(ctx context.Context, role *models.Role) error {
	return translate(r.DB.WithContext(ctx).Create(role).Error)
}

// ReplaceUserRoles swaps the user's role set for roleIDs.
func (r *GormRepo) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("users_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		seen := make(map[uint]struct{}, len(roleIDs))
		for _, roleID := range roleIDs {
			if _, dup := seen[roleID]; dup {
				continue
			}
			seen[roleID] = struct{}{}
			if err := tx.Create(&models.UserRole{UsersID: userID, RolesID: roleID}).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (r *GormRepo) DeleteUserRoles(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("users_id = ?", userID).Delete(&models.UserRole{}).Error
}

func (r *GormRepo) ListUserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.DB.WithContext(ctx).Model(&models.UserRole{}).Where("users_id = ?", userID).Order("roles_id ASC").Pluck("roles_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
