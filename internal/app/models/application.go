package models

import (
	"time"
)

// Application defines the paid application model based on the 'applications' table.
// It is the join point between a Scholarship and a User: at most one
// application exists per (scholarship, user email) pair, enforced by a
// unique constraint at the storage layer.
type Application struct {
	ID                int64             `json:"id" db:"id"`
	ScholarshipID     int64             `json:"scholarshipId" db:"scholarship_id"`
	UserEmail         string            `json:"userEmail" db:"user_email"`
	ScholarshipName   string            `json:"scholarshipName" db:"scholarship_name"`
	UniversityName    string            `json:"universityName" db:"university_name"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus" db:"payment_status"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus" db:"application_status"`
	TransactionID     *string           `json:"transactionId,omitempty" db:"transaction_id"`
	AmountPaid        *float64          `json:"amountPaid,omitempty" db:"amount_paid"`
	Feedback          *string           `json:"feedback,omitempty" db:"feedback"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	CompletedAt       *time.Time        `json:"completedAt,omitempty" db:"completed_at"`
}

// PaymentRecord carries the reconciled payment outcome written onto a
// pending application. Every field overwrites the stored value, which is
// what keeps repeat reconciliation of the same session harmless.
type PaymentRecord struct {
	PaymentStatus PaymentStatus
	TransactionID string
	AmountPaid    float64
	CompletedAt   time.Time
}
