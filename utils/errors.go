package utils

import "errors"

var ErrorServer = errors.New("there was a problem processing the request")
var ErrorDatabaseError = errors.New("the database failed to process the request")
var ErrorFileStorage = errors.New("failed to access the file storage")

var ErrorUuidNotFound = errors.New("the specified uuid was not found")
var ErrorRecordNotFound = errors.New("the specified record was not found")
var ErrorAttachmentNotFound = errors.New("the specified attachment was not found")

var ErrorEmptyPayload = errors.New("the record payload must not be empty")
var ErrorInvalidPagination = errors.New("page must be >= 1 and limit must be between 1 and 100")
var ErrorInvalidIdentifier = errors.New("the identifier contains characters that are not allowed")
var ErrorUnknownColumn = errors.New("the payload references a column that is not registered")
var ErrorReservedColumn = errors.New("the payload must not set server-managed columns")
var ErrorNotFileField = errors.New("the specified field does not store files")
var ErrorCollectionArchived = errors.New("the collection is archived and cannot be modified")

var ErrorRoleExists = errors.New("a role with this name already exists")
var ErrorRoleInUse = errors.New("the role cannot be deleted while users are assigned to it")
var ErrorBuiltInRoleInUse = errors.New("the built-in role cannot be deleted while users are assigned to it")
var ErrorCollectionExists = errors.New("a collection with this name or table already exists")
var ErrorPermissionExists = errors.New("this permission has already been granted")
var ErrorUnknownAction = errors.New("the specified action is not supported")
var ErrorInvalidFields = errors.New("the field definitions provided were invalid")
var ErrorValidationError = errors.New("the data provided was invalid")

var ErrorUnauthorized = errors.New("authentication is required for this endpoint")
var ErrorForbidden = errors.New("you do not have permission to access this endpoint")
var ErrorTokenInvalid = errors.New("the provided token was invalid")
var ErrorInvalidCredentials = errors.New("the credentials provided were invalid")
var ErrorOpenIDError = errors.New("failed to authenticate with the OpenID provider")
var ErrorOpenIDAuthDisabledError = errors.New("authentication via OpenID is disabled")
var ErrorNativeAuthDisabledError = errors.New("native authentication is disabled")
