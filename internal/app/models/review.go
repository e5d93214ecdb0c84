package models

import (
	"time"
)

// Review defines the free-text review model based on the 'reviews' table.
type Review struct {
	ID             int64     `json:"id" db:"id"`
	ScholarshipID  int64     `json:"scholarshipId" db:"scholarship_id"`
	UniversityName string    `json:"universityName" db:"university_name"`
	ReviewerEmail  string    `json:"reviewerEmail" db:"reviewer_email"`
	ReviewerName   string    `json:"reviewerName" db:"reviewer_name"`
	ReviewerPhoto  *string   `json:"reviewerPhoto,omitempty" db:"reviewer_photo"`
	Rating         float64   `json:"rating" db:"rating"`
	Comment        string    `json:"comment" db:"comment"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
