package models

import (
	"time"
)

// Scholarship defines the scholarship posting model based on the 'scholarships' table.
type Scholarship struct {
	ID                        int64      `json:"id" db:"id"`
	ScholarshipName           string     `json:"scholarshipName" db:"scholarship_name"`
	UniversityName            string     `json:"universityName" db:"university_name"`
	UniversityCountry         string     `json:"universityCountry" db:"university_country"`
	UniversityCity            string     `json:"universityCity" db:"university_city"`
	UniversityWorldRank       int        `json:"universityWorldRank" db:"university_world_rank"`
	SubjectCategory           string     `json:"subjectCategory" db:"subject_category"`
	ScholarshipCategory       string     `json:"scholarshipCategory" db:"scholarship_category"`
	Degree                    string     `json:"degree" db:"degree"`
	TuitionFees               float64    `json:"tuitionFees" db:"tuition_fees"`
	ApplicationFees           float64    `json:"applicationFees" db:"application_fees"`
	ServiceCharge             float64    `json:"serviceCharge" db:"service_charge"`
	ApplicationDeadline       *time.Time `json:"applicationDeadline,omitempty" db:"application_deadline"`
	ScholarshipPostDate       time.Time  `json:"scholarshipPostDate" db:"scholarship_post_date"`
	ScholarshipPostUpdateDate time.Time  `json:"scholarshipPostUpdateDate" db:"scholarship_post_update_date"`
	PostedByEmail             *string    `json:"postedByEmail,omitempty" db:"posted_by_email"`
}

// ScholarshipUpdate carries the fields a moderator or admin may change on a
// posting. Nil fields are left untouched.
type ScholarshipUpdate struct {
	ScholarshipName     *string    `json:"scholarshipName,omitempty"`
	UniversityName      *string    `json:"universityName,omitempty"`
	UniversityCountry   *string    `json:"universityCountry,omitempty"`
	UniversityCity      *string    `json:"universityCity,omitempty"`
	UniversityWorldRank *int       `json:"universityWorldRank,omitempty"`
	SubjectCategory     *string    `json:"subjectCategory,omitempty"`
	ScholarshipCategory *string    `json:"scholarshipCategory,omitempty"`
	Degree              *string    `json:"degree,omitempty"`
	TuitionFees         *float64   `json:"tuitionFees,omitempty"`
	ApplicationFees     *float64   `json:"applicationFees,omitempty"`
	ServiceCharge       *float64   `json:"serviceCharge,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
}
