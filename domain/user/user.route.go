package user

import (
	"github.com/gin-gonic/gin"
)

// Session endpoints are public; the handlers manage the auth cookies
// themselves.
func RegisterRoutes(route *gin.Engine, handler Handler) {
	routes := route.Group("/users")

	routes.POST("/logout", handler.Logout)

	login := routes.Group("/login")
	{
		login.POST("/native", handler.LoginNative)
		login.GET("/openid", handler.LoginOpenId)
		login.GET("/config", handler.AuthConfig)
		login.GET("/success", handler.LoginOpenIdSuccess)
		login.GET("/refresh", handler.RefreshToken)
	}
}
