package role

import (
	"vellumBackend/domain/user"

	"gorm.io/gorm"
)

// Reserved role names seeded at startup.
var BuiltInRoleNames = []string{"admin", "editor", "viewer"}

type Role struct {
	gorm.Model
	UUID        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"uniqueIndex;not null"`
	DisplayName string
	Description *string
	Users       []user.User `gorm:"many2many:user_roles"`
}

type RoleIn struct {
	Name        string  `json:"name" binding:"required"`
	DisplayName string  `json:"displayName" binding:"required"`
	Description *string `json:"description"`
}

type RoleUpdateIn struct {
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
}

type RoleOut struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Description *string `json:"description"`
	UserCount   int     `json:"userCount"`
	BuiltIn     bool    `json:"builtIn"`
}
