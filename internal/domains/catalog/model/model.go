package model

import (
	"pitstop/shared/model"
)

const (
	CategoryTableName  = "service_categories"
	CategoryEntityName = "service_category"

	ServiceTableName  = "services"
	ServiceEntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategoryID  = "category_id"
	FieldPrice       = "price"
)

type ServiceCategory struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	model.Metadata
}

type Service struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	CategoryID  string  `db:"category_id"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	model.Metadata
}
