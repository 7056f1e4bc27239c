package role

import (
	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		Get(ctx *gin.Context)
		GetByUuid(ctx *gin.Context)
		Create(ctx *gin.Context)
		Update(ctx *gin.Context)
		Delete(ctx *gin.Context)
	}

	roleHandler struct {
		roleService Service
	}
)

func CreateHandler(roleService Service) Handler {
	return &roleHandler{
		roleService: roleService,
	}
}

func (h *roleHandler) Get(ctx *gin.Context) {
	result, err := h.roleService.Get(ctx)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *roleHandler) GetByUuid(ctx *gin.Context) {
	result, err := h.roleService.GetByUuid(ctx, ctx.Param("roleId"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *roleHandler) Create(ctx *gin.Context) {
	payload := RoleIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(err))
		return
	}

	result, err := h.roleService.Create(ctx, payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *roleHandler) Update(ctx *gin.Context) {
	payload := RoleUpdateIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(err))
		return
	}

	if err := h.roleService.Update(ctx, payload, ctx.Param("roleId")); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *roleHandler) Delete(ctx *gin.Context) {
	if err := h.roleService.Delete(ctx, ctx.Param("roleId")); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}
