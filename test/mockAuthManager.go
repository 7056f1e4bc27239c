package test

import (
	"errors"

	"vellumBackend/auth"
	"vellumBackend/config"
	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
)

type MockAuthManager struct {
	User auth.AuthenticatedUser
}

func (m MockAuthManager) Init(config *config.VellumConfig) {}

func (m MockAuthManager) CreateAuthToken(userId string) (string, error) {
	return "mock-auth-token", nil
}

func (m MockAuthManager) CreateAccessToken(authUser auth.AuthenticatedUser) (string, error) {
	return "mock-access-token", nil
}

func (m MockAuthManager) AuthenticateUser(tokenString string) (*auth.AuthenticatedUser, error) {
	if m.User.UserId == "" {
		return nil, utils.ErrorTokenInvalid
	}

	return &m.User, nil
}

func (m MockAuthManager) LoginNative(username string, password string) (string, string, error) {
	return "mock-token", "mock-access", nil
}

func (m MockAuthManager) GetAuthCodeURL(stateToken string) (string, error) {
	return "https://mock-auth", nil
}

func (m MockAuthManager) AuthenticateWithCode(authCode string, mapper func(string, string) (string, error)) (*auth.AuthenticatedUser, error) {
	userId, err := mapper("mock-sub", "mock-profile")
	if err != nil {
		return nil, err
	}

	return &auth.AuthenticatedUser{
		UserId:  userId,
		IsAdmin: true,
		Roles:   []string{"admin"},
	}, nil
}

func (m MockAuthManager) RefreshAccessToken(authToken string) (string, error) {
	if authToken == "" {
		return "", errors.New("token missing")
	}

	return "refreshed-token", nil
}

func (m MockAuthManager) AuthenticatorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if m.User.UserId == "" {
			ctx.JSON(utils.CreateErrorResponse(utils.ErrorUnauthorized))
			ctx.Abort()
			return
		}

		ctx.Set("authUser", m.User)
		ctx.Next()
	}
}

func (m MockAuthManager) RegisterTestUser(authUser auth.AuthenticatedUser) (string, error) {
	return authUser.UserId, nil
}
