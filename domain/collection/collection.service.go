package collection

import (
	"encoding/json"

	"vellumBackend/storage"
	"vellumBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

// Meta-schema for submitted field definitions. Field and column names
// follow the same identifier rules the records engine enforces.
const fieldSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "dbColumn", "type"],
    "properties": {
      "name": {"type": "string", "pattern": "^[a-zA-Z_][a-zA-Z0-9_]{0,62}$"},
      "dbColumn": {"type": "string", "pattern": "^[a-zA-Z_][a-zA-Z0-9_]{0,62}$"},
      "type": {"enum": ["TEXT", "NUMBER", "BOOLEAN", "DATETIME", "FILE", "RELATION"]},
      "required": {"type": "boolean"},
      "defaultValue": {"type": ["string", "null"]},
      "uiComponent": {"type": ["string", "null"]}
    }
  }
}`

type (
	Service interface {
		Get(ctx *gin.Context) ([]CollectionOut, error)
		GetByUuid(ctx *gin.Context, collectionId string) (*CollectionOut, error)
		Create(ctx *gin.Context, req CollectionIn) (string, error)
		Update(ctx *gin.Context, req CollectionUpdateIn, collectionId string) error
		Archive(ctx *gin.Context, collectionId string) error
	}

	collectionService struct {
		collectionRepo Repository
		storageManager storage.StorageManager
		schemaLoader   gojsonschema.JSONLoader
	}
)

func CreateService(collectionRepo Repository, storageManager storage.StorageManager) Service {
	return &collectionService{
		collectionRepo: collectionRepo,
		storageManager: storageManager,
		schemaLoader:   gojsonschema.NewStringLoader(fieldSchema),
	}
}

func (u *collectionService) Get(ctx *gin.Context) ([]CollectionOut, error) {
	objs, err := u.collectionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CollectionOut, len(objs))
	for i, obj := range objs {
		result[i] = collectionToOut(&obj)
	}

	return result, nil
}

func (u *collectionService) GetByUuid(ctx *gin.Context, collectionId string) (*CollectionOut, error) {
	obj, err := u.collectionRepo.GetByUuid(ctx, collectionId)
	if err != nil {
		return nil, err
	}

	out := collectionToOut(obj)
	return &out, nil
}

func (u *collectionService) Create(ctx *gin.Context, req CollectionIn) (string, error) {
	if !utils.IsSafeIdentifier(req.Name) || !utils.IsSafeIdentifier(req.TableName) {
		return "", utils.ErrorInvalidIdentifier
	}

	if err := u.validateFields(req.Fields); err != nil {
		return "", err
	}

	if exists, err := u.collectionRepo.ExistsByNameOrTable(ctx, req.Name, req.TableName); err != nil {
		return "", err
	} else if exists {
		return "", utils.ErrorCollectionExists
	}

	newUuid := utils.GenerateUuid()
	err := u.collectionRepo.Create(ctx, &Collection{
		UUID:        newUuid,
		Name:        req.Name,
		DisplayName: req.DisplayName,
		TableName:   req.TableName,
		Status:      StatusActive,
		Fields:      fieldsFromIn(req.Fields),
	})

	return newUuid, err
}

func (u *collectionService) Update(ctx *gin.Context, req CollectionUpdateIn, collectionId string) error {
	collection, err := u.collectionRepo.GetByUuid(ctx, collectionId)
	if err != nil {
		return err
	}

	if req.DisplayName != nil {
		collection.DisplayName = *req.DisplayName
		if err := u.collectionRepo.Update(ctx, collection); err != nil {
			return err
		}
	}

	if req.Fields != nil {
		if err := u.validateFields(*req.Fields); err != nil {
			return err
		}

		return u.collectionRepo.ReplaceFields(ctx, collection, fieldsFromIn(*req.Fields))
	}

	return nil
}

func (u *collectionService) Archive(ctx *gin.Context, collectionId string) error {
	collection, err := u.collectionRepo.GetByUuid(ctx, collectionId)
	if err != nil {
		return err
	}

	collection.Status = StatusArchived
	if err := u.collectionRepo.Update(ctx, collection); err != nil {
		return err
	}

	if err := u.storageManager.ArchiveCollection(collection.UUID); err != nil {
		log.Errorf("Failed to archive files of collection '%s': %s", collection.Name, err.Error())
		return err
	}

	return nil
}

func (u *collectionService) validateFields(fields []FieldIn) error {
	fieldsJson, err := json.Marshal(fields)
	if err != nil {
		return utils.ErrorInvalidFields
	}

	result, err := gojsonschema.Validate(u.schemaLoader, gojsonschema.NewBytesLoader(fieldsJson))
	if err != nil || !result.Valid() {
		return utils.ErrorInvalidFields
	}

	return nil
}

func fieldsFromIn(fields []FieldIn) []Field {
	return lo.Map(fields, func(field FieldIn, _ int) Field {
		return Field{
			UUID:         utils.GenerateUuid(),
			Name:         field.Name,
			DbColumn:     field.DbColumn,
			Type:         field.Type,
			Required:     field.Required,
			DefaultValue: field.DefaultValue,
			UIComponent:  field.UIComponent,
		}
	})
}

func collectionToOut(obj *Collection) CollectionOut {
	return CollectionOut{
		ID:          obj.UUID,
		Name:        obj.Name,
		DisplayName: obj.DisplayName,
		TableName:   obj.TableName,
		Status:      obj.Status,
		Fields: lo.Map(obj.Fields, func(field Field, _ int) FieldOut {
			return FieldOut{
				ID:           field.UUID,
				Name:         field.Name,
				DbColumn:     field.DbColumn,
				Type:         field.Type,
				Required:     field.Required,
				DefaultValue: field.DefaultValue,
				UIComponent:  field.UIComponent,
			}
		}),
	}
}
