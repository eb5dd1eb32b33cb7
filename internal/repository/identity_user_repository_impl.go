package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type identityUserRepository struct{}

func NewIdentityUserRepository() domainRepo.IdentityUserRepository {
	return &identityUserRepository{}
}

func (r *identityUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.IdentityUser) error {
	return db.WithContext(ctx).Create(user).Error
}

func (r *identityUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.IdentityUser, error) {
	var user entity.IdentityUser
	err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *identityUserRepository) FindByNormalizedUserName(ctx context.Context, db *gorm.DB, normalizedUserName string) (*entity.IdentityUser, error) {
	var user entity.IdentityUser
	err := db.WithContext(ctx).Where("normalized_user_name = ?", normalizedUserName).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *identityUserRepository) ExistsByNormalizedEmail(ctx context.Context, db *gorm.DB, normalizedEmail string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.IdentityUser{}).
		Where("normalized_email = ? OR normalized_user_name = ?", normalizedEmail, normalizedEmail).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *identityUserRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.IdentityUser{})
	return result.RowsAffected, result.Error
}

func (r *identityUserRepository) AddRole(ctx context.Context, db *gorm.DB, userRole *entity.IdentityUserRole) error {
	return db.WithContext(ctx).Create(userRole).Error
}

func (r *identityUserRepository) FindRoleNames(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).
		Model(&entity.Role{}).
		Joins("JOIN identity_user_roles ON identity_user_roles.role_id = roles.id").
		Where("identity_user_roles.user_id = ?", userID).
		Order("roles.role_name ASC").
		Pluck("roles.role_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *identityUserRepository) DeleteRoles(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.IdentityUserRole{}).Error
}
