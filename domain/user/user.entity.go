package user

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID         string `gorm:"index"`
	Sub          string `gorm:"index"`
	Name         string
	Email        string
	PasswordHash string
}

type UserOut struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CredentialsIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthConfigOut struct {
	NativeEnabled bool `json:"nativeEnabled"`
	OpenIdEnabled bool `json:"openIdEnabled"`
}
