package model

import (
	"pitstop/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldAppointmentID = "appointment_id"
	FieldRating        = "rating"
	FieldTitle         = "title"
	FieldText          = "text"
)

type Review struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	AppointmentID string  `db:"appointment_id"`
	Rating        int     `db:"rating"`
	Title         string  `db:"title"`
	Text          *string `db:"text"`
	model.Metadata
}
