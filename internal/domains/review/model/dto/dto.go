package dto

import (
	"pitstop/internal/domains/review/model"
	"pitstop/shared"
	gDto "pitstop/shared/dto"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	AppointmentID string  `json:"appointmentId" validate:"required,uuid"`
	Rating        int     `json:"rating"        validate:"required,min=1,max=5"`
	Title         string  `json:"title"         validate:"required,max=100"`
	Text          *string `json:"text,omitempty"`
}

func (c *CreateReviewRequest) ToModel(actor string) model.Review {
	return model.Review{
		ID:            uuid.NewString(),
		UserID:        actor,
		AppointmentID: c.AppointmentID,
		Rating:        c.Rating,
		Title:         c.Title,
		Text:          c.Text,
		Metadata:      gModel.NewMetadata(timezone.Now(), actor),
	}
}

type UpdateReviewRequest struct {
	Rating int    `db:"rating" json:"rating" validate:"omitempty,min=1,max=5"`
	Title  string `db:"title"  json:"title"  validate:"omitempty,max=100"`
	Text   string `db:"text"   json:"text"   validate:"omitempty"`
}

type ReviewResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	AppointmentID string  `json:"appointmentId"`
	Rating        int     `json:"rating"`
	Title         string  `json:"title"`
	Text          *string `json:"text,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.AppointmentID = mod.AppointmentID
	r.Rating = mod.Rating
	r.Title = mod.Title
	r.Text = mod.Text
	r.Metadata.FromModel(mod.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
