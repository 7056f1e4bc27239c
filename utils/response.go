package utils

import (
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OkResponse[T any] struct {
	Payload T `json:"payload"`
}

func CreateOkResponse[T any](obj T) (int, OkResponse[T]) {
	return http.StatusOK, OkResponse[T]{Payload: obj}
}

func CreateErrorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, ErrorUuidNotFound):
		return http.StatusNotFound, ErrorResponse{Code: -1, Message: err.Error()}
	case errors.Is(err, ErrorRecordNotFound):
		return http.StatusNotFound, ErrorResponse{Code: 1404, Message: err.Error()}
	case errors.Is(err, ErrorAttachmentNotFound):
		return http.StatusNotFound, ErrorResponse{Code: 1405, Message: err.Error()}
	case errors.Is(err, ErrorInvalidCredentials):
		return http.StatusBadRequest, ErrorResponse{Code: 1001, Message: err.Error()}
	case errors.Is(err, ErrorCollectionExists):
		return http.StatusBadRequest, ErrorResponse{Code: 2001, Message: err.Error()}
	case errors.Is(err, ErrorInvalidFields):
		return http.StatusBadRequest, ErrorResponse{Code: 2002, Message: err.Error()}
	case errors.Is(err, ErrorCollectionArchived):
		return http.StatusBadRequest, ErrorResponse{Code: 2003, Message: err.Error()}
	case errors.Is(err, ErrorRoleExists):
		return http.StatusBadRequest, ErrorResponse{Code: 3001, Message: err.Error()}
	case errors.Is(err, ErrorRoleInUse):
		return http.StatusBadRequest, ErrorResponse{Code: 3002, Message: err.Error()}
	case errors.Is(err, ErrorBuiltInRoleInUse):
		return http.StatusBadRequest, ErrorResponse{Code: 3003, Message: err.Error()}
	case errors.Is(err, ErrorPermissionExists):
		return http.StatusBadRequest, ErrorResponse{Code: 3004, Message: err.Error()}
	case errors.Is(err, ErrorUnknownAction):
		return http.StatusBadRequest, ErrorResponse{Code: 3005, Message: err.Error()}
	case errors.Is(err, ErrorEmptyPayload):
		return http.StatusBadRequest, ErrorResponse{Code: 4001, Message: err.Error()}
	case errors.Is(err, ErrorInvalidPagination):
		return http.StatusBadRequest, ErrorResponse{Code: 4002, Message: err.Error()}
	case errors.Is(err, ErrorInvalidIdentifier):
		return http.StatusBadRequest, ErrorResponse{Code: 4003, Message: err.Error()}
	case errors.Is(err, ErrorUnknownColumn):
		return http.StatusBadRequest, ErrorResponse{Code: 4004, Message: err.Error()}
	case errors.Is(err, ErrorNotFileField):
		return http.StatusBadRequest, ErrorResponse{Code: 4005, Message: err.Error()}
	case errors.Is(err, ErrorReservedColumn):
		return http.StatusBadRequest, ErrorResponse{Code: 4006, Message: err.Error()}
	case errors.Is(err, ErrorDatabaseError):
		return http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()}
	// Permission / Access errors
	case errors.Is(err, ErrorUnauthorized),
		errors.Is(err, ErrorOpenIDAuthDisabledError),
		errors.Is(err, ErrorNativeAuthDisabledError):
		return http.StatusUnauthorized, ErrorResponse{Code: 401, Message: err.Error()}
	case errors.Is(err, ErrorTokenInvalid):
		return 498, ErrorResponse{Code: 498, Message: err.Error()}
	case errors.Is(err, ErrorForbidden):
		return http.StatusForbidden, ErrorResponse{Code: 403, Message: err.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()}
}

func CreateValidationError(err error) (int, ErrorResponse) {
	return http.StatusUnprocessableEntity, ErrorResponse{Code: 422, Message: err.Error()}
}
