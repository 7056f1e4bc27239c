package collection

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
		Archive(ctx *gin.Context)
	}

	collectionHandler struct {
		collectionService Service
	}
)

func CreateHandler(collectionService Service) Handler {
	return &collectionHandler{
		collectionService: collectionService,
	}
}

func (h *collectionHandler) Get(ctx *gin.Context) {
	result, err := h.collectionService.Get(ctx)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *collectionHandler) GetByUuid(ctx *gin.Context) {
	result, err := h.collectionService.GetByUuid(ctx, ctx.Param("collectionId"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *collectionHandler) Create(ctx *gin.Context) {
	payload := CollectionIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(err))
		return
	}

	result, err := h.collectionService.Create(ctx, payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *collectionHandler) Update(ctx *gin.Context) {
	payload := CollectionUpdateIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateValidationError(err))
		return
	}

	if err := h.collectionService.Update(ctx, payload, ctx.Param("collectionId")); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *collectionHandler) Archive(ctx *gin.Context) {
	if err := h.collectionService.Archive(ctx, ctx.Param("collectionId")); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}
