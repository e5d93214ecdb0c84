package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
	"github.com/scholarstream/scholarstream/internal/pkg/payments"
)

// Metadata keys carried on every checkout session so reconciliation can
// find its application without any state of its own.
const (
	metaScholarshipID   = "scholarshipId"
	metaScholarshipName = "scholarshipName"
	metaUniversityName  = "universityName"
	metaUserID          = "userId"
	metaUserEmail       = "userEmail"
)

// ApplicationRepository is the storage access the workflow needs.
type ApplicationRepository interface {
	InsertPending(ctx context.Context, a *models.Application) (id int64, created bool, err error)
	GetByScholarshipAndEmail(ctx context.Context, scholarshipID int64, email string) (*models.Application, error)
	RecordPayment(ctx context.Context, scholarshipID int64, email string, record models.PaymentRecord) error
	ListByEmail(ctx context.Context, email string) ([]*models.Application, error)
	ListPaid(ctx context.Context) ([]*models.Application, error)
	ListFeedbackByEmail(ctx context.Context, email string) ([]*models.Application, error)
	SetFeedback(ctx context.Context, id int64, feedback string) error
	DeletePending(ctx context.Context, scholarshipID int64, email string) error
}

// PaymentClient is the slice of the payment processor API the workflow uses.
type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*payments.CheckoutSession, error)
}

// ApplicationService drives the application/payment workflow:
// NONE -> PENDING(unpaid) -> SUBMITTED(paid). The processor is the source of
// truth for payment outcomes; reconciliation copies its verdict into the
// application record and never invents one.
type ApplicationService interface {
	CreateCheckoutSession(ctx context.Context, ident *identity.Identity, req dto.CheckoutSessionRequest) (url string, err error)
	SavePendingSession(ctx context.Context, ident *identity.Identity, req dto.CheckoutSessionRequest) (id int64, created bool, err error)
	VerifyPayment(ctx context.Context, sessionID string) (*models.Application, error)
	History(ctx context.Context, email string) ([]*models.Application, error)
	PaidApplications(ctx context.Context) ([]*models.Application, error)
	FeedbackByEmail(ctx context.Context, email string) ([]*models.Application, error)
	SetFeedback(ctx context.Context, id int64, feedback string) error
	DeletePending(ctx context.Context, ident *identity.Identity, scholarshipID int64) error
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	applicationRepo ApplicationRepository
	paymentClient   PaymentClient
	logger          zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo ApplicationRepository, paymentClient PaymentClient, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		paymentClient:   paymentClient,
		logger:          logger,
	}
}

func validateCheckoutRequest(req dto.CheckoutSessionRequest) error {
	if req.ScholarshipID <= 0 {
		return fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.ScholarshipName) == "" || strings.TrimSpace(req.UniversityName) == "" {
		return fmt.Errorf("%w: scholarship and university names are required", apperrors.ErrValidationFailed)
	}
	if req.ApplicationFees <= 0 {
		return fmt.Errorf("%w: application fee must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCheckoutSession opens a checkout session at the processor and
// returns the hosted redirect URL. The session carries enough metadata for
// a later verify call to locate the pending application.
func (s *applicationServiceImpl) CreateCheckoutSession(ctx context.Context, ident *identity.Identity, req dto.CheckoutSessionRequest) (string, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return "", err
	}

	session, err := s.paymentClient.CreateCheckoutSession(ctx, payments.CheckoutParams{
		// The processor prices in minor units.
		AmountMinor: int64(math.Round(req.ApplicationFees * 100)),
		ProductName: fmt.Sprintf("%s - %s", req.ScholarshipName, req.UniversityName),
		Metadata: map[string]string{
			metaScholarshipID:   strconv.FormatInt(req.ScholarshipID, 10),
			metaScholarshipName: req.ScholarshipName,
			metaUniversityName:  req.UniversityName,
			metaUserID:          ident.UID,
			metaUserEmail:       ident.Email,
		},
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("scholarshipID", req.ScholarshipID).Str("email", ident.Email).Msg("Checkout session creation failed")
		return "", apperrors.NewUpstreamError(fmt.Sprintf("checkout session: %v", err))
	}

	return session.URL, nil
}

// SavePendingSession records the pending application for the caller. The
// storage layer's unique constraint makes this idempotent: a second call for
// the same (scholarship, user) pair returns the existing identifier.
func (s *applicationServiceImpl) SavePendingSession(ctx context.Context, ident *identity.Identity, req dto.CheckoutSessionRequest) (int64, bool, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return 0, false, err
	}

	id, created, err := s.applicationRepo.InsertPending(ctx, &models.Application{
		ScholarshipID:     req.ScholarshipID,
		UserEmail:         ident.Email,
		ScholarshipName:   req.ScholarshipName,
		UniversityName:    req.UniversityName,
		PaymentStatus:     models.PaymentUnpaid,
		ApplicationStatus: models.ApplicationPending,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		return 0, false, fmt.Errorf("error saving payment session: %w", err)
	}

	if created {
		s.logger.Info().Int64("applicationID", id).Int64("scholarshipID", req.ScholarshipID).Str("email", ident.Email).Msg("Pending application created")
	}
	return id, created, nil
}

// VerifyPayment reconciles a checkout session's terminal state into the
// matching pending application. It never creates an application: a session
// without a prior SavePendingSession call is a not-found. The write is a
// field-level overwrite, so verifying the same session again changes
// nothing.
func (s *applicationServiceImpl) VerifyPayment(ctx context.Context, sessionID string) (*models.Application, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session_id is required", apperrors.ErrValidationFailed)
	}

	session, err := s.paymentClient.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("sessionID", sessionID).Msg("Checkout session retrieval failed")
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("checkout session %s: %v", sessionID, err))
	}

	scholarshipID, err := strconv.ParseInt(session.Metadata[metaScholarshipID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: session %s carries no scholarship reference", apperrors.ErrApplicationNotFound, sessionID)
	}
	email := session.Metadata[metaUserEmail]
	if email == "" {
		return nil, fmt.Errorf("%w: session %s carries no user reference", apperrors.ErrApplicationNotFound, sessionID)
	}

	paymentStatus := models.PaymentUnpaid
	if session.PaymentStatus == payments.PaymentStatusPaid {
		paymentStatus = models.PaymentPaid
	}
	transactionID := session.PaymentIntent
	if transactionID == "" {
		transactionID = session.ID
	}

	record := models.PaymentRecord{
		PaymentStatus: paymentStatus,
		TransactionID: transactionID,
		AmountPaid:    float64(session.AmountTotal) / 100,
		CompletedAt:   time.Now(),
	}

	if err := s.applicationRepo.RecordPayment(ctx, scholarshipID, email, record); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error recording payment: %w", err)
	}

	s.logger.Info().
		Str("sessionID", sessionID).
		Int64("scholarshipID", scholarshipID).
		Str("email", email).
		Str("paymentStatus", string(paymentStatus)).
		Msg("Payment reconciled")

	application, err := s.applicationRepo.GetByScholarshipAndEmail(ctx, scholarshipID, email)
	if err != nil {
		return nil, fmt.Errorf("error reloading application: %w", err)
	}
	return application, nil
}

// History retrieves a user's applications, newest first.
func (s *applicationServiceImpl) History(ctx context.Context, email string) ([]*models.Application, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	applications, err := s.applicationRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	return applications, nil
}

// PaidApplications retrieves every paid application for the dashboard.
func (s *applicationServiceImpl) PaidApplications(ctx context.Context) ([]*models.Application, error) {
	applications, err := s.applicationRepo.ListPaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing paid applications: %w", err)
	}
	return applications, nil
}

// FeedbackByEmail retrieves a user's applications that carry feedback.
func (s *applicationServiceImpl) FeedbackByEmail(ctx context.Context, email string) ([]*models.Application, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	applications, err := s.applicationRepo.ListFeedbackByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	return applications, nil
}

// SetFeedback attaches moderator feedback to an application.
func (s *applicationServiceImpl) SetFeedback(ctx context.Context, id int64, feedback string) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid application ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(feedback) == "" {
		return fmt.Errorf("%w: feedback is required", apperrors.ErrValidationFailed)
	}

	err := s.applicationRepo.SetFeedback(ctx, id, feedback)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error setting feedback: %w", err)
	}
	return nil
}

// DeletePending removes the caller's own application for a scholarship while
// it is still pending. Submitted applications, and applications belonging to
// anyone else, surface as not-found.
func (s *applicationServiceImpl) DeletePending(ctx context.Context, ident *identity.Identity, scholarshipID int64) error {
	if scholarshipID <= 0 {
		return fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	existing, err := s.applicationRepo.GetByScholarshipAndEmail(ctx, scholarshipID, ident.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error loading application: %w", err)
	}
	if existing.ApplicationStatus != models.ApplicationPending {
		return apperrors.ErrApplicationNotDeletable
	}

	if err := s.applicationRepo.DeletePending(ctx, scholarshipID, ident.Email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Lost a race with the payment reconciler.
			return apperrors.ErrApplicationNotDeletable
		}
		return fmt.Errorf("error deleting application: %w", err)
	}

	s.logger.Info().Int64("scholarshipID", scholarshipID).Str("email", ident.Email).Msg("Pending application deleted")
	return nil
}
