package permission

import (
	"vellumBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/roles/:roleId/permissions", authManager.AuthenticatorMiddleware())
	{
		routes.GET("", handler.GetByRole)
		routes.POST("", handler.Grant)
		routes.DELETE("/:permissionId", handler.Revoke)
	}
}
