package collection

import (
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

const (
	FieldTypeText     = "TEXT"
	FieldTypeNumber   = "NUMBER"
	FieldTypeBoolean  = "BOOLEAN"
	FieldTypeDatetime = "DATETIME"
	FieldTypeFile     = "FILE"
	FieldTypeRelation = "RELATION"
)

type Collection struct {
	gorm.Model
	UUID        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"uniqueIndex;not null"`
	DisplayName string
	TableName   string `gorm:"uniqueIndex;not null"`
	Status      string `gorm:"not null;default:ACTIVE"`
	Fields      []Field `gorm:"constraint:OnDelete:CASCADE"`
}

type Field struct {
	gorm.Model
	UUID         string `gorm:"uniqueIndex;not null"`
	CollectionID uint   `gorm:"not null;uniqueIndex:idx_collection_field"`
	Name         string `gorm:"not null;uniqueIndex:idx_collection_field"`
	DbColumn     string `gorm:"not null"`
	Type         string `gorm:"not null"`
	Required     bool
	DefaultValue *string
	UIComponent  *string
}

type FieldIn struct {
	Name         string  `json:"name" binding:"required"`
	DbColumn     string  `json:"dbColumn" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Required     bool    `json:"required"`
	DefaultValue *string `json:"defaultValue"`
	UIComponent  *string `json:"uiComponent"`
}

type CollectionIn struct {
	Name        string    `json:"name" binding:"required"`
	DisplayName string    `json:"displayName" binding:"required"`
	TableName   string    `json:"tableName" binding:"required"`
	Fields      []FieldIn `json:"fields"`
}

type CollectionUpdateIn struct {
	DisplayName *string    `json:"displayName"`
	Fields      *[]FieldIn `json:"fields"`
}

type FieldOut struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DbColumn     string  `json:"dbColumn"`
	Type         string  `json:"type"`
	Required     bool    `json:"required"`
	DefaultValue *string `json:"defaultValue"`
	UIComponent  *string `json:"uiComponent"`
}

type CollectionOut struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	TableName   string     `json:"tableName"`
	Status      string     `json:"status"`
	Fields      []FieldOut `json:"fields"`
}
