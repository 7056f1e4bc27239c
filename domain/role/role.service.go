package role

import (
	"context"
	"slices"
	"strings"

	"vellumBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type (
	Service interface {
		Get(ctx *gin.Context) ([]RoleOut, error)
		GetByUuid(ctx *gin.Context, roleId string) (*RoleOut, error)
		Create(ctx *gin.Context, req RoleIn) (string, error)
		Update(ctx *gin.Context, req RoleUpdateIn, roleId string) error
		Delete(ctx *gin.Context, roleId string) error
	}

	roleService struct {
		roleRepo Repository
	}
)

func CreateService(roleRepo Repository) Service {
	roleService := &roleService{
		roleRepo: roleRepo,
	}

	roleService.seedBuiltInRoles()

	return roleService
}

func (u *roleService) Get(ctx *gin.Context) ([]RoleOut, error) {
	objs, err := u.roleRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(objs, func(obj Role, _ int) RoleOut {
		return roleToOut(&obj)
	}), nil
}

func (u *roleService) GetByUuid(ctx *gin.Context, roleId string) (*RoleOut, error) {
	obj, err := u.roleRepo.GetByUuid(ctx, roleId)
	if err != nil {
		return nil, err
	}

	out := roleToOut(obj)
	return &out, nil
}

func (u *roleService) Create(ctx *gin.Context, req RoleIn) (string, error) {
	roleName := strings.ToLower(req.Name)

	if _, exists, err := u.roleRepo.GetByName(ctx, roleName); err != nil {
		return "", err
	} else if exists {
		return "", utils.ErrorRoleExists
	}

	newUuid := utils.GenerateUuid()
	err := u.roleRepo.Create(ctx, &Role{
		UUID:        newUuid,
		Name:        roleName,
		DisplayName: req.DisplayName,
		Description: req.Description,
	})

	return newUuid, err
}

func (u *roleService) Update(ctx *gin.Context, req RoleUpdateIn, roleId string) error {
	role, err := u.roleRepo.GetByUuid(ctx, roleId)
	if err != nil {
		return err
	}

	if req.DisplayName != nil {
		role.DisplayName = *req.DisplayName
	}

	if req.Description != nil {
		role.Description = req.Description
	}

	return u.roleRepo.Update(ctx, role)
}

func (u *roleService) Delete(ctx *gin.Context, roleId string) error {
	role, err := u.roleRepo.GetByUuid(ctx, roleId)
	if err != nil {
		return err
	}

	// The general in-use guard below subsumes this one. Kept separate so
	// built-in roles stay distinguishable in error responses and logs.
	if slices.Contains(BuiltInRoleNames, role.Name) && len(role.Users) > 0 {
		return utils.ErrorBuiltInRoleInUse
	}

	if len(role.Users) > 0 {
		return utils.ErrorRoleInUse
	}

	return u.roleRepo.Delete(ctx, role)
}

func (u *roleService) seedBuiltInRoles() {
	for _, name := range BuiltInRoleNames {
		if _, exists, err := u.roleRepo.GetByName(context.Background(), name); err != nil || exists {
			continue
		}

		err := u.roleRepo.Create(context.Background(), &Role{
			UUID:        utils.GenerateUuid(),
			Name:        name,
			DisplayName: strings.ToUpper(name[:1]) + name[1:],
		})
		if err != nil {
			log.Fatalf("Failed to seed built-in role '%s': %s", name, err.Error())
		}
	}
}

func roleToOut(obj *Role) RoleOut {
	return RoleOut{
		ID:          obj.UUID,
		Name:        obj.Name,
		DisplayName: obj.DisplayName,
		Description: obj.Description,
		UserCount:   len(obj.Users),
		BuiltIn:     slices.Contains(BuiltInRoleNames, obj.Name),
	}
}
