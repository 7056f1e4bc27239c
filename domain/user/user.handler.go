package user

import (
	"net/http"

	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		LoginNative(ctx *gin.Context)
		Logout(ctx *gin.Context)
		LoginOpenId(ctx *gin.Context)
		LoginOpenIdSuccess(ctx *gin.Context)
		AuthConfig(ctx *gin.Context)
		RefreshToken(ctx *gin.Context)
	}

	userHandler struct {
		userService Service
	}
)

func CreateHandler(userService Service) Handler {
	return &userHandler{
		userService: userService,
	}
}

func (h *userHandler) RefreshToken(ctx *gin.Context) {
	var (
		authToken, accessToken string
		err                    error
	)

	if authToken, err = ctx.Cookie("authToken"); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorUnauthorized))
		return
	}

	if accessToken, err = h.userService.RefreshAccessToken(authToken); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorForbidden))
		return
	}

	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)

	ctx.JSON(utils.CreateOkResponse(accessToken))
}

func (h *userHandler) LoginNative(ctx *gin.Context) {
	payload := CredentialsIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorInvalidCredentials))
		return
	}

	if authToken, accessToken, err := h.userService.LoginNative(payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
	} else {
		ctx.SetCookie("authToken", authToken, 0, "/", "", false, true)
		ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)
		ctx.JSON(utils.CreateOkResponse(accessToken))
	}
}

func (h *userHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie("authToken", "", -1, "/", "", false, true)
	ctx.SetCookie("authOidc", "", -1, "/", "", false, false)
	ctx.SetCookie("accessToken", "", -1, "/", "", false, false)
}

func (h *userHandler) AuthConfig(ctx *gin.Context) {
	ctx.JSON(utils.CreateOkResponse(h.userService.AuthConfig()))
}

func (h *userHandler) LoginOpenId(ctx *gin.Context) {
	url, err := h.userService.GetAuthCodeURL(ctx.Request.Referer())
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	http.Redirect(ctx.Writer, ctx.Request, url, http.StatusFound)
}

func (h *userHandler) LoginOpenIdSuccess(ctx *gin.Context) {
	authToken, accessToken, err := h.userService.AuthenticateWithCode(ctx, ctx.Query("code"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.SetCookie("authToken", authToken, 0, "/", "", false, true)
	ctx.SetCookie("authOidc", "true", 0, "/", "", false, false)
	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)

	http.Redirect(ctx.Writer, ctx.Request, ctx.Query("state"), http.StatusFound)
}
