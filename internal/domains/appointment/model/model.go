package model

import (
	"pitstop/shared/model"
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                     = "id"
	FieldUserID                 = "user_id"
	FieldFirstName              = "first_name"
	FieldLastName               = "last_name"
	FieldContactNumber          = "contact_number"
	FieldEmail                  = "email"
	FieldServiceCategory        = "service_category"
	FieldServiceType            = "service_type"
	FieldAppointmentDateTime    = "appointment_date_time"
	FieldAdditionalNotes        = "additional_notes"
	FieldDownPayment            = "down_payment"
	FieldTransactionReferenceNo = "transaction_reference_no"
	FieldPaymentProofURL        = "payment_proof_url"
	FieldStatus                 = "status"
)

const (
	StatusRequested   = "Requested"
	StatusUpcoming    = "Upcoming"
	StatusRescheduled = "Rescheduled"
	StatusCompleted   = "Completed"
	StatusCancelled   = "Cancelled"
	StatusNoArrival   = "No Arrival"
)

type Appointment struct {
	ID                     string    `db:"id"`
	UserID                 string    `db:"user_id"`
	FirstName              string    `db:"first_name"`
	LastName               string    `db:"last_name"`
	ContactNumber          string    `db:"contact_number"`
	Email                  string    `db:"email"`
	ServiceCategory        string    `db:"service_category"`
	ServiceType            string    `db:"service_type"`
	AppointmentDateTime    time.Time `db:"appointment_date_time"`
	AdditionalNotes        *string   `db:"additional_notes"`
	DownPayment            float64   `db:"down_payment"`
	TransactionReferenceNo string    `db:"transaction_reference_no"`
	PaymentProofURL        *string   `db:"payment_proof_url"`
	Status                 string    `db:"status"`
	model.Metadata
}

// transitions is the full lifecycle graph. Completed, Cancelled and No
// Arrival have no outgoing edges: once reached, the record is frozen.
var transitions = map[string][]string{
	StatusRequested:   {StatusUpcoming, StatusCancelled},
	StatusUpcoming:    {StatusRescheduled, StatusCompleted, StatusCancelled, StatusNoArrival},
	StatusRescheduled: {StatusCompleted, StatusCancelled, StatusNoArrival},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func IsTerminal(status string) bool {
	switch status {
	case StatusCompleted, StatusCancelled, StatusNoArrival:
		return true
	default:
		return false
	}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusRequested, StatusUpcoming, StatusRescheduled, StatusCompleted, StatusCancelled, StatusNoArrival:
		return true
	default:
		return false
	}
}
