package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/rental_shop/internal/models"
)

// LoginRow is a user joined with one of its roles. Role is nil for users without roles.
type LoginRow struct {
	UsersID      uint    `gorm:"column:users_id"`
	Username     string  `gorm:"column:username"`
	PasswordHash string  `gorm:"column:password_hash"`
	Role         *string `gorm:"column:role"`
}

// CreateUserWithRole inserts the user and links it to the named role, creating the role if needed.
func (r *GormRepo) CreateUserWithRole(ctx context.Context, user *models.User, roleName string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: username %q", ErrDuplicate, user.Username)
		}

		if err := tx.Create(user).Error; err != nil {
			return translate(err)
		}

		role := models.Role{RoleName: roleName}
		if err := tx.Where(models.Role{RoleName: roleName}).FirstOrCreate(&role).Error; err != nil {
			return translate(err)
		}

		return translate(tx.Create(&models.UserRole{UsersID: user.UsersID, RolesID: role.RolesID}).Error)
	})
}

func (r *GormRepo) FindLogin(ctx context.Context, username string) (*LoginRow, error) {
	var rows []LoginRow
	if err := r.DB.WithContext(ctx).
		Table("users").
		Select("users.users_id, users.username, users.password_hash, roles.role_name AS role").
		Joins("LEFT JOIN users_roles ON users_roles.users_id = users.users_id").
		Joins("LEFT JOIN roles ON roles.roles_id = users_roles.roles_id").
		Where("users.username = ?", username).
		Order("users_roles.roles_id ASC").
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.DB.WithContext(ctx).Order("users_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("users_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uint, u models.User) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("users_id = ?", id).Updates(map[string]any{
		"users_firstname": u.UsersFirstname,
		"users_lastname":  u.UsersLastname,
		"users_contact":   u.UsersContact,
		"users_email":     u.UsersEmail,
		"password_hash":   u.PasswordHash,
		"username":        u.Username,
	})
	return res.RowsAffected, translate(res.Error)
}

// DeleteUserCascade removes the user with its payments, orders and role links.
func (r *GormRepo) DeleteUserCascade(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userOrders := tx.Model(&models.Order{}).Select("order_id").Where("users_id = ?", id)
		if err := tx.Where("users_id = ? OR order_id IN (?)", id, userOrders).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("users_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("users_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Where("users_id = ?", id).Delete(&models.User{}).Error
	})
}
