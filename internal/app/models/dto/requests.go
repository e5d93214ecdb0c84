package dto

// RegisterRequest carries the optional profile fields sent on first
// registration. Email and display name come from the verified identity,
// never from the body.
type RegisterRequest struct {
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// UpdateRoleRequest carries a role change performed by an admin.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" example:"moderator"`
}

// CheckoutSessionRequest is the shared payload for creating a payment
// checkout intent and for saving the pending application session.
type CheckoutSessionRequest struct {
	ScholarshipID   int64   `json:"scholarshipId" binding:"required" example:"42"`
	ScholarshipName string  `json:"scholarshipName" binding:"required" example:"Global Excellence Scholarship"`
	UniversityName  string  `json:"universityName" binding:"required" example:"University of Oxford"`
	ApplicationFees float64 `json:"applicationFees" binding:"required" example:"50"`
}

// FeedbackRequest carries moderator feedback attached to an application.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// CreateReviewRequest carries a new scholarship review.
type CreateReviewRequest struct {
	ScholarshipID  int64   `json:"scholarshipId" binding:"required" example:"42"`
	UniversityName string  `json:"universityName" example:"University of Oxford"`
	Rating         float64 `json:"rating" binding:"required" example:"4.5"`
	Comment        string  `json:"comment" binding:"required"`
}
