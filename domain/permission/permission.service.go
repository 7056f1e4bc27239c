package permission

import (
	"slices"
	"strings"

	"vellumBackend/domain/collection"
	"vellumBackend/domain/role"
	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type (
	Service interface {
		GetByRole(ctx *gin.Context, roleId string) ([]PermissionOut, error)
		Grant(ctx *gin.Context, req PermissionIn, roleId string) (string, error)
		Revoke(ctx *gin.Context, roleId string, permissionId string) error
	}

	permissionService struct {
		permissionRepo Repository
		roleRepo       role.Repository
		collectionRepo collection.Repository
	}
)

func CreateService(permissionRepo Repository, roleRepo role.Repository, collectionRepo collection.Repository) Service {
	return &permissionService{
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
		collectionRepo: collectionRepo,
	}
}

func (u *permissionService) GetByRole(ctx *gin.Context, roleId string) ([]PermissionOut, error) {
	grantedRole, err := u.roleRepo.GetByUuid(ctx, roleId)
	if err != nil {
		return nil, err
	}

	objs, err := u.permissionRepo.GetByRole(ctx, grantedRole.ID)
	if err != nil {
		return nil, err
	}

	return lo.Map(objs, func(obj Permission, _ int) PermissionOut {
		return PermissionOut{
			ID:           obj.UUID,
			RoleId:       obj.Role.UUID,
			CollectionId: obj.Collection.UUID,
			Action:       obj.Action,
		}
	}), nil
}

func (u *permissionService) Grant(ctx *gin.Context, req PermissionIn, roleId string) (string, error) {
	action := strings.ToUpper(req.Action)
	if !slices.Contains(Actions, action) {
		return "", utils.ErrorUnknownAction
	}

	grantedRole, err := u.roleRepo.GetByUuid(ctx, roleId)
	if err != nil {
		return "", err
	}

	grantedCollection, err := u.collectionRepo.GetByUuid(ctx, req.CollectionId)
	if err != nil {
		return "", err
	}

	if exists, err := u.permissionRepo.Exists(ctx, grantedRole.ID, grantedCollection.ID, action); err != nil {
		return "", err
	} else if exists {
		return "", utils.ErrorPermissionExists
	}

	newUuid := utils.GenerateUuid()
	err = u.permissionRepo.Create(ctx, &Permission{
		UUID:         newUuid,
		RoleID:       grantedRole.ID,
		CollectionID: grantedCollection.ID,
		Action:       action,
	})

	return newUuid, err
}

func (u *permissionService) Revoke(ctx *gin.Context, roleId string, permissionId string) error {
	grantedRole, err := u.roleRepo.GetByUuid(ctx, roleId)
	if err != nil {
		return err
	}

	permission, err := u.permissionRepo.GetByUuid(ctx, permissionId)
	if err != nil {
		return err
	}

	// Permissions are addressed through their role's route
	if permission.RoleID != grantedRole.ID {
		return utils.ErrorUuidNotFound
	}

	return u.permissionRepo.Delete(ctx, permission)
}
