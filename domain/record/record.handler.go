package record

import (
	"io"
	"net/http"
	"strconv"

	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		List(ctx *gin.Context)
		Create(ctx *gin.Context)
		Update(ctx *gin.Context)
		Delete(ctx *gin.Context)

		UploadFile(ctx *gin.Context)
		DownloadFile(ctx *gin.Context)
		DeleteFile(ctx *gin.Context)
	}

	recordHandler struct {
		recordService Service
	}
)

func CreateHandler(recordService Service) Handler {
	return &recordHandler{
		recordService: recordService,
	}
}

func (h *recordHandler) List(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorInvalidPagination))
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorInvalidPagination))
		return
	}

	result, err := h.recordService.List(ctx, ctx.Param("collectionId"), page, limit)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *recordHandler) Create(ctx *gin.Context) {
	payload := Record{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorEmptyPayload))
		return
	}

	result, err := h.recordService.Create(ctx, ctx.Param("collectionId"), payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *recordHandler) Update(ctx *gin.Context) {
	payload := Record{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorEmptyPayload))
		return
	}

	result, err := h.recordService.Update(ctx, ctx.Param("collectionId"), ctx.Param("recordId"), payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse(result))
}

func (h *recordHandler) Delete(ctx *gin.Context) {
	if err := h.recordService.Delete(ctx, ctx.Param("collectionId"), ctx.Param("recordId")); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *recordHandler) UploadFile(ctx *gin.Context) {
	content, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrorServer))
		return
	}

	err = h.recordService.UploadFile(ctx, ctx.Param("collectionId"), ctx.Param("recordId"), ctx.Param("fieldName"), content)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}

func (h *recordHandler) DownloadFile(ctx *gin.Context) {
	var content []byte

	err := h.recordService.DownloadFile(ctx, ctx.Param("collectionId"), ctx.Param("recordId"), ctx.Param("fieldName"), &content)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.Data(http.StatusOK, "application/octet-stream", content)
}

func (h *recordHandler) DeleteFile(ctx *gin.Context) {
	err := h.recordService.DeleteFile(ctx, ctx.Param("collectionId"), ctx.Param("recordId"), ctx.Param("fieldName"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateOkResponse[any](nil))
}
