package collection

import (
	"context"
	"errors"

	"vellumBackend/utils"

	"gorm.io/gorm"
)

type (
	Repository interface {
		Get(ctx context.Context) ([]Collection, error)
		GetByUuid(ctx context.Context, collectionId string) (*Collection, error)
		ExistsByNameOrTable(ctx context.Context, name string, tableName string) (bool, error)
		Create(ctx context.Context, collection *Collection) error
		Update(ctx context.Context, collection *Collection) error
		ReplaceFields(ctx context.Context, collection *Collection, fields []Field) error
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &collectionRepository{
		db: db,
	}
}

func (r *collectionRepository) Get(ctx context.Context) ([]Collection, error) {
	collections := make([]Collection, 0)
	result := r.db.WithContext(ctx).Preload("Fields").Order("created_at ASC").Find(&collections)

	return collections, result.Error
}

func (r *collectionRepository) GetByUuid(ctx context.Context, collectionId string) (*Collection, error) {
	collection := &Collection{}
	result := r.db.WithContext(ctx).Where("uuid = ?", collectionId).Preload("Fields").First(collection)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, utils.ErrorUuidNotFound
	}

	return collection, result.Error
}

func (r *collectionRepository) ExistsByNameOrTable(ctx context.Context, name string, tableName string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Collection{}).
		Where("name = ? OR table_name = ?", name, tableName).
		Count(&count)

	return count > 0, result.Error
}

func (r *collectionRepository) Create(ctx context.Context, collection *Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) Update(ctx context.Context, collection *Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) ReplaceFields(ctx context.Context, collection *Collection, fields []Field) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collection.ID).Delete(&Field{}).Error; err != nil {
			return err
		}

		for i := range fields {
			fields[i].CollectionID = collection.ID
		}

		if len(fields) == 0 {
			return nil
		}

		return tx.Create(&fields).Error
	})
}
