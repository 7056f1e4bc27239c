package role

import (
	"vellumBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/roles", authManager.AuthenticatorMiddleware())
	{
		routes.GET("", handler.Get)
		routes.GET("/:roleId", handler.GetByUuid)
		routes.POST("", handler.Create)
		routes.PATCH("/:roleId", handler.Update)
		routes.DELETE("/:roleId", handler.Delete)
	}
}
