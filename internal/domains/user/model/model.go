package model

import (
	"pitstop/internal/domains/user/redtag"
	"pitstop/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID              = "id"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldEmail           = "email"
	FieldContactNumber   = "contact_number"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldTitle           = "title"
	FieldImage           = "image"
	FieldIsRedTagged     = "is_red_tagged"
	FieldRedTagExpiresAt = "red_tag_expires_at"
)

type User struct {
	ID              string     `db:"id"`
	FirstName       string     `db:"first_name"`
	LastName        string     `db:"last_name"`
	Email           string     `db:"email"`
	ContactNumber   string     `db:"contact_number"`
	Password        string     `db:"password"`
	Role            string     `db:"role"`
	Title           *string    `db:"title"`
	Image           *string    `db:"image"`
	IsRedTagged     bool       `db:"is_red_tagged"`
	RedTagExpiresAt *time.Time `db:"red_tag_expires_at"`
	model.Metadata
}

// RedTagFlag adapts the stored columns into the policy type.
func (u *User) RedTagFlag() redtag.Flag {
	flag := redtag.Flag{Tagged: u.IsRedTagged}
	if u.RedTagExpiresAt != nil {
		flag.ExpiresAt = *u.RedTagExpiresAt
	}

	return flag
}
