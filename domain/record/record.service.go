package record

import (
	"errors"
	"slices"
	"sort"

	"vellumBackend/domain/collection"
	"vellumBackend/storage"
	"vellumBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Columns the engine manages itself and therefore never accepts from a
// caller's payload.
var reservedColumns = []string{"id", "created_at", "updated_at"}

type (
	Service interface {
		List(ctx *gin.Context, collectionId string, page int, limit int) (*RecordPage, error)
		Create(ctx *gin.Context, collectionId string, payload Record) (Record, error)
		Update(ctx *gin.Context, collectionId string, recordId string, payload Record) (Record, error)
		Delete(ctx *gin.Context, collectionId string, recordId string) error

		UploadFile(ctx *gin.Context, collectionId string, recordId string, fieldName string, content []byte) error
		DownloadFile(ctx *gin.Context, collectionId string, recordId string, fieldName string, content *[]byte) error
		DeleteFile(ctx *gin.Context, collectionId string, recordId string, fieldName string) error
	}

	recordService struct {
		recordRepo     Repository
		collectionRepo collection.Repository
		storageManager storage.StorageManager
	}
)

func CreateService(recordRepo Repository, collectionRepo collection.Repository, storageManager storage.StorageManager) Service {
	return &recordService{
		recordRepo:     recordRepo,
		collectionRepo: collectionRepo,
		storageManager: storageManager,
	}
}

func (u *recordService) List(ctx *gin.Context, collectionId string, page int, limit int) (*RecordPage, error) {
	if page < 1 || limit < 1 || limit > MaxLimit {
		return nil, utils.ErrorInvalidPagination
	}

	recordCollection, err := u.resolveCollection(ctx, collectionId, false)
	if err != nil {
		return nil, err
	}

	rows, total, err := u.recordRepo.ListPage(ctx, recordCollection.TableName, limit, (page-1)*limit)
	if err != nil {
		log.Errorf("Failed to list records of '%s': %s", recordCollection.Name, err.Error())
		return nil, utils.ErrorDatabaseError
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &RecordPage{
		Data:  rows,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}, nil
}

func (u *recordService) Create(ctx *gin.Context, collectionId string, payload Record) (Record, error) {
	recordCollection, err := u.resolveCollection(ctx, collectionId, true)
	if err != nil {
		return nil, err
	}

	columns, err := validatePayload(recordCollection, payload)
	if err != nil {
		return nil, err
	}

	row, err := u.recordRepo.Insert(ctx, recordCollection.TableName, payload, columns)
	if err != nil {
		log.Errorf("Failed to create record in '%s': %s", recordCollection.Name, err.Error())
		return nil, utils.ErrorDatabaseError
	}

	return row, nil
}

func (u *recordService) Update(ctx *gin.Context, collectionId string, recordId string, payload Record) (Record, error) {
	recordCollection, err := u.resolveCollection(ctx, collectionId, true)
	if err != nil {
		return nil, err
	}

	columns, err := validatePayload(recordCollection, payload)
	if err != nil {
		return nil, err
	}

	row, err := u.recordRepo.Update(ctx, recordCollection.TableName, recordId, payload, columns)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorRecordNotFound
	} else if err != nil {
		log.Errorf("Failed to update record in '%s': %s", recordCollection.Name, err.Error())
		return nil, utils.ErrorDatabaseError
	}

	return row, nil
}

func (u *recordService) Delete(ctx *gin.Context, collectionId string, recordId string) error {
	recordCollection, err := u.resolveCollection(ctx, collectionId, true)
	if err != nil {
		return err
	}

	deleted, err := u.recordRepo.Delete(ctx, recordCollection.TableName, recordId)
	if err != nil {
		log.Errorf("Failed to delete record in '%s': %s", recordCollection.Name, err.Error())
		return utils.ErrorDatabaseError
	}

	if !deleted {
		return utils.ErrorRecordNotFound
	}

	if err := u.storageManager.DeleteRecordFiles(recordCollection.UUID, recordId); err != nil {
		log.Warnf("Failed to delete attachments of record '%s': %s", recordId, err.Error())
	}

	return nil
}

func (u *recordService) UploadFile(ctx *gin.Context, collectionId string, recordId string, fieldName string, content []byte) error {
	recordCollection, err := u.resolveFileField(ctx, collectionId, recordId, fieldName, true)
	if err != nil {
		return err
	}

	return u.storageManager.WriteAttachment(recordCollection.UUID, recordId, fieldName, content)
}

func (u *recordService) DownloadFile(ctx *gin.Context, collectionId string, recordId string, fieldName string, content *[]byte) error {
	recordCollection, err := u.resolveFileField(ctx, collectionId, recordId, fieldName, false)
	if err != nil {
		return err
	}

	return u.storageManager.ReadAttachment(recordCollection.UUID, recordId, fieldName, content)
}

func (u *recordService) DeleteFile(ctx *gin.Context, collectionId string, recordId string, fieldName string) error {
	recordCollection, err := u.resolveFileField(ctx, collectionId, recordId, fieldName, true)
	if err != nil {
		return err
	}

	return u.storageManager.DeleteAttachment(recordCollection.UUID, recordId, fieldName)
}

// resolveCollection maps a collection UUID to its registry entry. The
// table name is re-checked against the identifier pattern before it is
// ever interpolated into SQL text, so only registry-born names reach
// the repository.
func (u *recordService) resolveCollection(ctx *gin.Context, collectionId string, forWrite bool) (*collection.Collection, error) {
	recordCollection, err := u.collectionRepo.GetByUuid(ctx, collectionId)
	if err != nil {
		return nil, err
	}

	if forWrite && recordCollection.Status == collection.StatusArchived {
		return nil, utils.ErrorCollectionArchived
	}

	if !utils.IsSafeIdentifier(recordCollection.TableName) {
		log.Errorf("Registry contains unsafe table name '%s'", recordCollection.TableName)
		return nil, utils.ErrorInvalidIdentifier
	}

	return recordCollection, nil
}

func (u *recordService) resolveFileField(ctx *gin.Context, collectionId string, recordId string, fieldName string, forWrite bool) (*collection.Collection, error) {
	recordCollection, err := u.resolveCollection(ctx, collectionId, forWrite)
	if err != nil {
		return nil, err
	}

	field, found := lo.Find(recordCollection.Fields, func(field collection.Field) bool {
		return field.Name == fieldName
	})
	if !found || field.Type != collection.FieldTypeFile {
		return nil, utils.ErrorNotFileField
	}

	if exists, err := u.recordRepo.Exists(ctx, recordCollection.TableName, recordId); err != nil {
		log.Errorf("Failed to look up record '%s': %s", recordId, err.Error())
		return nil, utils.ErrorDatabaseError
	} else if !exists {
		return nil, utils.ErrorRecordNotFound
	}

	return recordCollection, nil
}

// validatePayload checks every payload key against the identifier
// pattern and, when the collection has registered fields, against the
// fields' column names. Collections without registered fields stay
// schema-free and only get the pattern check. Returns the accepted
// column names in deterministic order.
func validatePayload(recordCollection *collection.Collection, payload Record) ([]string, error) {
	if len(payload) == 0 {
		return nil, utils.ErrorEmptyPayload
	}

	allowedColumns := lo.Map(recordCollection.Fields, func(field collection.Field, _ int) string {
		return field.DbColumn
	})

	columns := make([]string, 0, len(payload))
	for column := range payload {
		if slices.Contains(reservedColumns, column) {
			return nil, utils.ErrorReservedColumn
		}

		if !utils.IsSafeIdentifier(column) {
			return nil, utils.ErrorInvalidIdentifier
		}

		if len(allowedColumns) > 0 && !slices.Contains(allowedColumns, column) {
			return nil, utils.ErrorUnknownColumn
		}

		columns = append(columns, column)
	}

	sort.Strings(columns)

	return columns, nil
}
