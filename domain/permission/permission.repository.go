package permission

import (
	"context"
	"errors"

	"vellumBackend/utils"

	"gorm.io/gorm"
)

type (
	Repository interface {
		GetByRole(ctx context.Context, roleId uint) ([]Permission, error)
		GetByUuid(ctx context.Context, permissionId string) (*Permission, error)
		Exists(ctx context.Context, roleId uint, collectionId uint, action string) (bool, error)
		Create(ctx context.Context, permission *Permission) error
		Delete(ctx context.Context, permission *Permission) error
	}

	permissionRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &permissionRepository{
		db: db,
	}
}

func (r *permissionRepository) GetByRole(ctx context.Context, roleId uint) ([]Permission, error) {
	permissions := make([]Permission, 0)
	result := r.db.WithContext(ctx).
		Where("role_id = ?", roleId).
		Preload("Role").Preload("Collection").
		Order("created_at ASC").
		Find(&permissions)

	return permissions, result.Error
}

func (r *permissionRepository) GetByUuid(ctx context.Context, permissionId string) (*Permission, error) {
	permission := &Permission{}
	result := r.db.WithContext(ctx).Where("uuid = ?", permissionId).First(permission)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorUuidNotFound
	}

	return permission, result.Error
}

func (r *permissionRepository) Exists(ctx context.Context, roleId uint, collectionId uint, action string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Permission{}).
		Where("role_id = ? AND collection_id = ? AND action = ?", roleId, collectionId, action).
		Count(&count)

	return count > 0, result.Error
}

func (r *permissionRepository) Create(ctx context.Context, permission *Permission) error {
	return r.db.WithContext(ctx).Create(permission).Error
}

// Delete removes the grant permanently so the same triple can be
// granted again without hitting the unique index on the revoked row.
func (r *permissionRepository) Delete(ctx context.Context, permission *Permission) error {
	return r.db.WithContext(ctx).Unscoped().Delete(permission).Error
}
