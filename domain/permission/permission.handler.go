package permission

import (
	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		GetByRole(ctx *gin.Context)
		Grant(ctx *gin.Context)
		Revoke(ctx *gin.Context)
	}

	permissionHandler struct {
		permissionService Service
	}
)

func CreateHandler(permissionService Service) Handler {
	return &permissionHandler{
		permissionService: permissionService,
	}
}

func (h *permissionHandler) GetByRole(ctx *gin.Context) {
	result, err := h.permissionService.GetByRole(ctx, ctx.Param("roleId"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *permissionHandler) Grant(ctx *gin.Context) {
	payload := PermissionIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(err))
		return
	}

	result, err := h.permissionService.Grant(ctx, payload, ctx.Param("roleId"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *permissionHandler) Revoke(ctx *gin.Context) {
	if err := h.permissionService.Revoke(ctx, ctx.Param("roleId"), ctx.Param("permissionId")); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}
