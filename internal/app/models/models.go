package models

// Role defines a user's role in the platform.
type Role string

const (
	RoleStudent   Role = "student"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// PaymentStatus tracks the payment outcome recorded on an application.
type PaymentStatus string

const (
	PaymentUnset  PaymentStatus = "unset"
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// ApplicationStatus tracks the application lifecycle.
// An application is created pending and becomes submitted only through
// reconciliation against the payment processor.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationSubmitted ApplicationStatus = "submitted"
)
