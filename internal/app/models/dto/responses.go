package dto

import "github.com/scholarstream/scholarstream/internal/app/models"

// MessageResponse is the standard `{message}` envelope used by most routes,
// for both successes and errors.
type MessageResponse struct {
	Message string `json:"message" example:"Registration Successful."`
}

// PaymentResponse is the `{success, ...}` envelope used by the payment routes.
type PaymentResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
}

// SavedSessionResponse reports the application identifier for a saved
// payment session. The same identifier is returned whether the record was
// just created or already existed.
type SavedSessionResponse struct {
	Success       bool   `json:"success" example:"true"`
	ApplicationID int64  `json:"applicationId" example:"7"`
	Message       string `json:"message,omitempty"`
}

// VerifiedPaymentResponse reports the reconciled application after a
// payment-verify call.
type VerifiedPaymentResponse struct {
	Success     bool                `json:"success" example:"true"`
	Application *models.Application `json:"application"`
}

// ScholarshipListResponse is the paginated scholarship listing envelope.
type ScholarshipListResponse struct {
	Data       []*models.Scholarship `json:"data"`
	Total      int64                 `json:"total" example:"57"`
	Page       int                   `json:"page" example:"1"`
	TotalPages int                   `json:"totalPages" example:"6"`
}

// UserListResponse is the paginated user listing envelope.
type UserListResponse struct {
	Data       []*models.User `json:"data"`
	Total      int64          `json:"total" example:"12"`
	Page       int            `json:"page" example:"1"`
	TotalPages int            `json:"totalPages" example:"2"`
}

// CreatedScholarshipResponse reports a newly posted scholarship.
type CreatedScholarshipResponse struct {
	Message       string `json:"message" example:"Scholarship Posted Successfully."`
	ScholarshipID int64  `json:"scholarshipId" example:"42"`
}

// CreatedReviewResponse reports a newly added review.
type CreatedReviewResponse struct {
	Message  string `json:"message" example:"Review added."`
	ReviewID int64  `json:"reviewId" example:"3"`
}

// DashboardStats is the aggregate counters view for the dashboard.
type DashboardStats struct {
	TotalUsers        int64   `json:"totalUsers" example:"120"`
	TotalScholarships int64   `json:"totalScholarships" example:"57"`
	TotalApplications int64   `json:"totalApplications" example:"214"`
	PaidApplications  int64   `json:"paidApplications" example:"180"`
	TotalReviews      int64   `json:"totalReviews" example:"96"`
	TotalRevenue      float64 `json:"totalRevenue" example:"9000"`
}
