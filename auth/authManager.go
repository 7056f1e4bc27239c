package auth

import (
	"context"
	"crypto/rand"
	"os"
	"slices"
	"time"

	"vellumBackend/config"
	"vellumBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/coreos/go-oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

type (
	AuthManager interface {
		Init(config *config.VellumConfig)
		CreateAuthToken(userId string) (string, error)
		CreateAccessToken(authUser AuthenticatedUser) (string, error)
		AuthenticateUser(tokenString string) (*AuthenticatedUser, error)
		LoginNative(username string, password string) (string, string, error)
		GetAuthCodeURL(stateToken string) (string, error)
		AuthenticateWithCode(authCode string, userSubToIdMapper func(userSub string, userProfile string) (string, error)) (*AuthenticatedUser, error)
		AuthenticatorMiddleware() gin.HandlerFunc
		RefreshAccessToken(authToken string) (string, error)
		RegisterTestUser(authUser AuthenticatedUser) (string, error)
	}

	authManager struct {
		config             *config.VellumConfig
		authenticatedUsers map[string]*AuthenticatedUser
		oauth2Config       oauth2.Config
		provider           oidc.Provider
		oidcSecret         string
		jwtSecret          []byte
		adminGroups        []string
		isNativeEnabled    bool
		isOpenIdEnabled    bool
		nativeUsername     string
		nativePasswordHash string
	}

	AuthenticatedUser struct {
		// The UUID of the user
		UserId string
		// Names of the roles the user is a member of
		Roles   []string
		IsAdmin bool
	}
)

const NativeUserID = "00000000-0000-0000-0000-00000000000"

func CreateAuthManager(config *config.VellumConfig) AuthManager {
	isNativeEnabled := config.Auth.EnableNative
	nativeUsername := os.Getenv("VL_NATIVE_USERNAME")
	nativePasswordHash := os.Getenv("VL_NATIVE_PASSWORD_HASH")

	if isNativeEnabled && (nativeUsername == "" || nativePasswordHash == "") {
		log.Warn("Native admin is enabled but username or password hash is empty!")
	}

	authManager := &authManager{
		config:             config,
		authenticatedUsers: make(map[string]*AuthenticatedUser),
		adminGroups:        config.Auth.OpenIdAdminGroups,
		jwtSecret:          ([]byte)(rand.Text()),
		oidcSecret:         os.Getenv("VL_OIDC_SECRET"),
		isNativeEnabled:    isNativeEnabled,
		isOpenIdEnabled:    config.Auth.EnableOpenId,
		nativeUsername:     nativeUsername,
		nativePasswordHash: nativePasswordHash,
	}

	authManager.Init(config)

	return authManager
}

func (m *authManager) Init(config *config.VellumConfig) {
	if m.isNativeEnabled {
		m.authenticatedUsers[NativeUserID] = &AuthenticatedUser{
			UserId:  NativeUserID,
			IsAdmin: true,
			Roles:   []string{"admin"},
		}
	}

	if !m.isOpenIdEnabled {
		return
	}

	provider, err := oidc.NewProvider(context.TODO(), config.Auth.OpenIdIssuer)
	if err != nil {
		log.Fatalf("Failed to connect to OpenID provider: %s", err.Error())
		os.Exit(1)
	}

	m.provider = *provider
	m.oauth2Config = oauth2.Config{
		ClientID:     config.Auth.OpenIdClientId,
		ClientSecret: m.oidcSecret,
		RedirectURL:  config.Auth.OpenIdRedirectHost + "/users/login/success",
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID},
	}
}

func (m *authManager) RefreshAccessToken(authToken string) (string, error) {
	if authUser, err := m.AuthenticateUser(authToken); err != nil {
		return "", err
	} else if newAccessToken, err := m.CreateAccessToken(*authUser); err != nil {
		return "", err
	} else {
		return newAccessToken, nil
	}
}

func (m *authManager) AuthenticatorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accessToken, err := ctx.Cookie("accessToken")
		if err != nil {
			ctx.JSON(utils.CreateErrorResponse(utils.ErrorUnauthorized))
			ctx.Abort()
			return
		}

		if user, err := m.AuthenticateUser(accessToken); err != nil {
			ctx.JSON(utils.CreateErrorResponse(utils.ErrorTokenInvalid))
			ctx.Abort()
			return
		} else {
			ctx.Set("authUser", *user)
			ctx.Next()
		}
	}
}

func (m *authManager) AuthenticateWithCode(authCode string, userSubToIdMapper func(userSub string, userProfile string) (string, error)) (*AuthenticatedUser, error) {
	if !m.isOpenIdEnabled {
		return nil, utils.ErrorOpenIDAuthDisabledError
	}

	ctx := context.TODO()
	token, err := m.oauth2Config.Exchange(ctx, authCode)
	if err != nil {
		log.Errorf("[AUTH] OAuth token exchange failed: %s", err.Error())
		return nil, utils.ErrorOpenIDError
	}

	info, err := m.provider.UserInfo(ctx, m.oauth2Config.TokenSource(ctx, token))
	if err != nil {
		log.Errorf("[AUTH] Failed to get oauth userinfo: %s", err.Error())
		return nil, utils.ErrorOpenIDError
	}

	var claims struct {
		Sub     string   `json:"sub"`
		Groups  []string `json:"groups"`
		Profile string   `json:"email"`
	}

	err = info.Claims(&claims)
	if err != nil {
		log.Warnf("[AUTH] Failed to parse claims from userinfo: %s", err.Error())
		return nil, utils.ErrorOpenIDError
	}

	isAdmin := false
	for _, group := range m.adminGroups {
		if slices.Contains(claims.Groups, group) {
			isAdmin = true
			break
		}
	}

	// Register authenticated user
	userId, err := userSubToIdMapper(claims.Sub, claims.Profile)
	if err != nil {
		return nil, err
	}

	authenticatedUser := &AuthenticatedUser{
		UserId:  userId,
		IsAdmin: isAdmin,
		Roles:   claims.Groups,
	}
	m.authenticatedUsers[userId] = authenticatedUser

	return authenticatedUser, nil
}

func (m *authManager) GetAuthCodeURL(stateToken string) (string, error) {
	if !m.isOpenIdEnabled {
		return "", utils.ErrorOpenIDAuthDisabledError
	}

	return m.oauth2Config.AuthCodeURL(stateToken), nil
}

func (m *authManager) LoginNative(username string, password string) (string, string, error) {
	if !m.isNativeEnabled {
		return "", "", utils.ErrorNativeAuthDisabledError
	}

	if username != m.nativeUsername {
		return "", "", utils.ErrorInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(([]byte)(m.nativePasswordHash), ([]byte)(password)); err != nil {
		return "", "", utils.ErrorInvalidCredentials
	}

	authUser := m.authenticatedUsers[NativeUserID]
	if authToken, err := m.CreateAuthToken(NativeUserID); err != nil {
		return "", "", err
	} else if accessToken, err := m.CreateAccessToken(*authUser); err != nil {
		return "", "", err
	} else {
		return authToken, accessToken, nil
	}
}

func (m *authManager) AuthenticateUser(tokenString string) (*AuthenticatedUser, error) {
	if token, err := jwt.Parse(tokenString, m.tokenParser); err != nil {
		return nil, utils.ErrorTokenInvalid
	} else if tokenClaims, ok := token.Claims.(jwt.MapClaims); !ok {
		return nil, utils.ErrorTokenInvalid
	} else if userId, ok := tokenClaims["id"]; !ok {
		return nil, utils.ErrorTokenInvalid
	} else if authUser, ok := m.authenticatedUsers[userId.(string)]; !ok {
		return nil, utils.ErrorTokenInvalid
	} else {
		return authUser, nil
	}
}

func (m *authManager) CreateAuthToken(userId string) (string, error) {
	vlToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userId,
		"nbf": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	})

	return vlToken.SignedString(m.jwtSecret)
}

func (m *authManager) CreateAccessToken(authUser AuthenticatedUser) (string, error) {
	vlToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":      authUser.UserId,
		"isAdmin": authUser.IsAdmin,
		"nbf":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Minute * 10).Unix(),
	})

	return vlToken.SignedString(m.jwtSecret)
}

func (m *authManager) tokenParser(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, utils.ErrorTokenInvalid
	}

	return m.jwtSecret, nil
}

func (m *authManager) RegisterTestUser(user AuthenticatedUser) (string, error) {
	m.authenticatedUsers[user.UserId] = &user
	return user.UserId, nil
}
