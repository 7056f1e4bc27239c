package role

import (
	"context"
	"errors"

	"vellumBackend/utils"

	"gorm.io/gorm"
)

type (
	Repository interface {
		Get(ctx context.Context) ([]Role, error)
		GetByUuid(ctx context.Context, roleId string) (*Role, error)
		GetByName(ctx context.Context, name string) (*Role, bool, error)
		Create(ctx context.Context, role *Role) error
		Update(ctx context.Context, role *Role) error
		Delete(ctx context.Context, role *Role) error
	}

	roleRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &roleRepository{
		db: db,
	}
}

func (r *roleRepository) Get(ctx context.Context) ([]Role, error) {
	roles := make([]Role, 0)
	result := r.db.WithContext(ctx).Preload("Users").Order("created_at ASC").Find(&roles)

	return roles, result.Error
}

func (r *roleRepository) GetByUuid(ctx context.Context, roleId string) (*Role, error) {
	role := &Role{}
	result := r.db.WithContext(ctx).Where("uuid = ?", roleId).Preload("Users").First(role)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorUuidNotFound
	}

	return role, result.Error
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*Role, bool, error) {
	role := &Role{}
	result := r.db.WithContext(ctx).Where("name = ?", name).First(role)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}

	return role, result.Error == nil, result.Error
}

func (r *roleRepository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) Update(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// Delete removes the role permanently. A soft delete would keep the
// row around and the unique name index would block recreating a role
// with the same name.
func (r *roleRepository) Delete(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Unscoped().Select("Users").Delete(role).Error
}
