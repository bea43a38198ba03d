package dto

import (
	"pitstop/internal/domains/appointment/model"
	"pitstop/shared"
	gDto "pitstop/shared/dto"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	UserID                 string  `json:"userId"                 validate:"omitempty,uuid"`
	FirstName              string  `json:"firstName"              validate:"required,min=2,max=100"`
	LastName               string  `json:"lastName"               validate:"required,max=100"`
	ContactNumber          string  `json:"contactNumber"          validate:"required,startswith=0,len=11,numeric"`
	Email                  string  `json:"email"                  validate:"required,email,max=100"`
	ServiceCategory        string  `json:"serviceCategory"        validate:"required,max=100"`
	ServiceType            string  `json:"serviceType"            validate:"required,max=100"`
	AppointmentDateTime    string  `json:"appointmentDateTime"    validate:"required"`
	AdditionalNotes        *string `json:"additionalNotes,omitempty"`
	DownPayment            float64 `json:"downPayment"            validate:"required,gte=0"`
	TransactionReferenceNo string  `json:"transactionReferenceNo" validate:"required,min=3,max=100"`
}

func (c *CreateAppointmentRequest) ToModel(actor, status string) (model.Appointment, error) {
	at, err := time.Parse(time.RFC3339, c.AppointmentDateTime)
	if err != nil {
		return model.Appointment{}, err
	}

	userID := c.UserID
	if userID == "" {
		userID = actor
	}

	return model.Appointment{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		ContactNumber:          c.ContactNumber,
		Email:                  c.Email,
		ServiceCategory:        c.ServiceCategory,
		ServiceType:            c.ServiceType,
		AppointmentDateTime:    timezone.ToAppTime(at),
		AdditionalNotes:        c.AdditionalNotes,
		DownPayment:            c.DownPayment,
		TransactionReferenceNo: c.TransactionReferenceNo,
		Status:                 status,
		Metadata:               gModel.NewMetadata(timezone.Now(), actor),
	}, nil
}

// UpdateAppointmentRequest deliberately has no down payment or transaction
// reference fields: payment details are write-once at creation.
type UpdateAppointmentRequest struct {
	FirstName           string  `db:"first_name"       json:"firstName"       validate:"omitempty,min=2,max=100"`
	LastName            string  `db:"last_name"        json:"lastName"        validate:"omitempty,max=100"`
	ContactNumber       string  `db:"contact_number"   json:"contactNumber"   validate:"omitempty,startswith=0,len=11,numeric"`
	Email               string  `db:"email"            json:"email"           validate:"omitempty,email,max=100"`
	ServiceCategory     string  `db:"service_category" json:"serviceCategory" validate:"omitempty,max=100"`
	ServiceType         string  `db:"service_type"     json:"serviceType"     validate:"omitempty,max=100"`
	AppointmentDateTime string  `json:"appointmentDateTime"                   validate:"omitempty"`
	AdditionalNotes     *string `db:"additional_notes" json:"additionalNotes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Requested Upcoming Rescheduled Completed Cancelled 'No Arrival'"`
}

type AppointmentResponse struct {
	ID                     string  `json:"id"`
	UserID                 string  `json:"userId"`
	FirstName              string  `json:"firstName"`
	LastName               string  `json:"lastName"`
	ContactNumber          string  `json:"contactNumber"`
	Email                  string  `json:"email"`
	ServiceCategory        string  `json:"serviceCategory"`
	ServiceType            string  `json:"serviceType"`
	AppointmentDateTime    string  `json:"appointmentDateTime"`
	AdditionalNotes        *string `json:"additionalNotes,omitempty"`
	DownPayment            float64 `json:"downPayment"`
	TransactionReferenceNo string  `json:"transactionReferenceNo"`
	PaymentProofURL        *string `json:"paymentProofUrl,omitempty"`
	Status                 string  `json:"status"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(mod model.Appointment) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.ContactNumber = mod.ContactNumber
	r.Email = mod.Email
	r.ServiceCategory = mod.ServiceCategory
	r.ServiceType = mod.ServiceType
	r.AppointmentDateTime = mod.AppointmentDateTime.Format(time.RFC3339)
	r.AdditionalNotes = mod.AdditionalNotes
	r.DownPayment = mod.DownPayment
	r.TransactionReferenceNo = mod.TransactionReferenceNo
	r.PaymentProofURL = mod.PaymentProofURL
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type SlotResponse struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

type GetSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// StatusEvent is the payload published on status changes for downstream
// notification consumers.
type StatusEvent struct {
	AppointmentID   string `json:"appointmentId"`
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	ServiceCategory string `json:"serviceCategory"`
	From            string `json:"from"`
	To              string `json:"to"`
	OccurredAt      string `json:"occurredAt"`
}

// RedTagEvent is published when a missed appointment flags a customer.
type RedTagEvent struct {
	UserID        string `json:"userId"`
	AppointmentID string `json:"appointmentId"`
	ExpiresAt     string `json:"expiresAt"`
}
