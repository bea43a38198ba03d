package dto

import (
	"pitstop/internal/domains/user/model"
	"pitstop/internal/domains/user/redtag"
	"pitstop/shared"
	gDto "pitstop/shared/dto"
	"pitstop/shared/timezone"
	"time"
)

type UpdateUserRequest struct {
	FirstName     string `db:"first_name"     json:"firstName"     validate:"omitempty,min=2,max=100"`
	LastName      string `db:"last_name"      json:"lastName"      validate:"omitempty,max=100"`
	Email         string `db:"email"          json:"email"         validate:"omitempty,email,max=100"`
	ContactNumber string `db:"contact_number" json:"contactNumber" validate:"omitempty,startswith=0,len=11,numeric"`
	Role          string `db:"role"           json:"role"          validate:"omitempty,oneof=admin staff user"`
	Title         string `db:"title"          json:"title"         validate:"omitempty,max=100"`
	Image         string `db:"image"          json:"image"         validate:"omitempty,url"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
}

// AssignStaffRequest promotes an existing customer to staff.
type AssignStaffRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Image string `json:"image" validate:"required,url"`
}

type UpdateStaffRequest struct {
	Title string `db:"title" json:"title" validate:"omitempty,max=100"`
	Image string `db:"image" json:"image" validate:"omitempty,url"`
}

type UserResponse struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	ContactNumber   string  `json:"contactNumber"`
	Role            string  `json:"role"`
	Title           *string `json:"title,omitempty"`
	Image           *string `json:"image,omitempty"`
	IsRedTagged     bool    `json:"isRedTagged"`
	RedTagExpiresAt *string `json:"redTagExpiresAt,omitempty"`
	RedTagDaysLeft  int     `json:"redTagDaysLeft,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Email = mod.Email
	r.ContactNumber = mod.ContactNumber
	r.Role = mod.Role
	r.Title = mod.Title
	r.Image = mod.Image
	r.IsRedTagged = mod.IsRedTagged

	if mod.RedTagExpiresAt != nil {
		expires := mod.RedTagExpiresAt.Format(time.RFC3339)
		r.RedTagExpiresAt = &expires
	}

	r.RedTagDaysLeft = redtag.DaysLeft(mod.RedTagFlag(), timezone.Now())
	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
