package record

import (
	"github.com/gin-gonic/gin"
)

// Record routes are not guarded. Only the role and registry management
// endpoints require authentication.
func RegisterRoutes(route *gin.Engine, handler Handler) {
	routes := route.Group("/collections/:collectionId/records")
	{
		routes.GET("", handler.List)
		routes.POST("", handler.Create)
		routes.PATCH("/:recordId", handler.Update)
		routes.DELETE("/:recordId", handler.Delete)

		routes.PUT("/:recordId/files/:fieldName", handler.UploadFile)
		routes.GET("/:recordId/files/:fieldName", handler.DownloadFile)
		routes.DELETE("/:recordId/files/:fieldName", handler.DeleteFile)
	}
}
