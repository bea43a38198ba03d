package dto

import (
	"pitstop/internal/domains/catalog/model"
	"pitstop/shared"
	gDto "pitstop/shared/dto"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

func (c *CreateCategoryRequest) ToModel(actor string) model.ServiceCategory {
	return model.ServiceCategory{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), actor),
	}
}

type UpdateCategoryRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(mod model.ServiceCategory) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Metadata.FromModel(mod.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.ServiceCategory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}

type CreateServiceRequest struct {
	Name        string  `json:"name"       validate:"required,max=100"`
	CategoryID  string  `json:"categoryId" validate:"required,uuid"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"      validate:"required,gte=0"`
}

func (c *CreateServiceRequest) ToModel(actor string) model.Service {
	return model.Service{
		ID:          uuid.NewString(),
		Name:        c.Name,
		CategoryID:  c.CategoryID,
		Description: c.Description,
		Price:       c.Price,
		Metadata:    gModel.NewMetadata(timezone.Now(), actor),
	}
}

type UpdateServiceRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=100"`
	CategoryID  string  `db:"category_id" json:"categoryId"  validate:"omitempty,uuid"`
	Description string  `db:"description" json:"description" validate:"omitempty"`
	Price       float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CategoryID  string  `json:"categoryId"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(mod model.Service) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.CategoryID = mod.CategoryID
	r.Description = mod.Description
	r.Price = mod.Price
	r.Metadata.FromModel(mod.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
