package permission

import (
	"vellumBackend/domain/collection"
	"vellumBackend/domain/role"

	"gorm.io/gorm"
)

const (
	ActionRead   = "READ"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

var Actions = []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete}

type Permission struct {
	gorm.Model
	UUID         string `gorm:"uniqueIndex;not null"`
	Role         role.Role
	RoleID       uint `gorm:"not null;uniqueIndex:idx_permission_grant"`
	Collection   collection.Collection
	CollectionID uint   `gorm:"not null;uniqueIndex:idx_permission_grant"`
	Action       string `gorm:"not null;uniqueIndex:idx_permission_grant"`
}

type PermissionIn struct {
	CollectionId string `json:"collectionId" binding:"required"`
	Action       string `json:"action" binding:"required"`
}

type PermissionOut struct {
	ID           string `json:"id"`
	RoleId       string `json:"roleId"`
	CollectionId string `json:"collectionId"`
	Action       string `json:"action"`
}
