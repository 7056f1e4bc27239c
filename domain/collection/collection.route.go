package collection

import (
	"vellumBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/collections", authManager.AuthenticatorMiddleware())
	{
		routes.GET("", handler.Get)
		routes.GET("/:collectionId", handler.GetByUuid)
		routes.POST("", handler.Create)
		routes.PATCH("/:collectionId", handler.Update)
		routes.DELETE("/:collectionId", handler.Archive)
	}
}
